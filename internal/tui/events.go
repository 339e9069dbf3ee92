package tui

import (
	"github.com/opencode-ai/showcase/internal/showcase"
)

// scrollTickMsg drives one frame of document scroll animation.
type scrollTickMsg struct{}

// tourStatus is what the host shows about the current run.
type tourStatus struct {
	shown     int
	ended     bool
	completed bool
}

func (s *tourStatus) reset() {
	*s = tourStatus{}
}

// statusListener records run status for the view and forwards to next.
type statusListener struct {
	status *tourStatus
	next   showcase.Listener
}

func (l statusListener) StepShown(index int, step showcase.Step) {
	l.status.shown++
	if l.next != nil {
		l.next.StepShown(index, step)
	}
}

func (l statusListener) TourEnded(completed bool) {
	l.status.ended = true
	l.status.completed = completed
	if l.next != nil {
		l.next.TourEnded(completed)
	}
}
