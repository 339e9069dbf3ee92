package showcase

import (
	"github.com/rs/zerolog"

	"github.com/opencode-ai/showcase/internal/logging"
)

// NotStarted is the current index of a sequencer that shows no step.
const NotStarted = -1

// State describes where a sequencer is in its tour.
type State string

const (
	StateNotStarted State = "not_started"
	StateScrolling  State = "scrolling"
	StateShowing    State = "showing"
	StateFinished   State = "finished"
)

// Listener observes tour progress.
type Listener interface {
	StepShown(index int, step Step)
	// TourEnded reports teardown. completed is true when every step was shown
	// and the last one was touched.
	TourEnded(completed bool)
}

// Token identifies the step that was current when a callback was created.
type Token struct {
	run   uint64
	index int
}

// Index returns the step index the token was minted for.
func (t Token) Index() int {
	return t.index
}

// Sequencer shows tour steps one at a time over a surface.
//
// All methods must be called from the host's event loop; the sequencer does
// no locking of its own.
type Sequencer struct {
	surface       Surface
	scrollView    ScrollView
	scroller      Scroller
	radius        float64
	clickInCircle bool
	listener      Listener
	logger        zerolog.Logger

	steps        []Step
	currentIndex int
	active       Overlay
	run          uint64
	scrolling    bool
	finished     bool
}

func newSequencer(surface Surface) *Sequencer {
	return &Sequencer{
		surface:       surface,
		radius:        DefaultRadius,
		clickInCircle: true,
		currentIndex:  NotStarted,
		logger:        logging.Component("showcase"),
	}
}

// Start begins the tour. Calling it on a running tour advances to the next
// step; restarting a finished tour requires a new step list.
func (s *Sequencer) Start() {
	s.logger.Debug().Int("steps", len(s.steps)).Msg("tour starting")
	s.advance()
}

// Dismiss hides the active overlay and resets the tour. It is safe to call at
// any time and more than once.
func (s *Sequencer) Dismiss() {
	s.dismiss(false)
}

func (s *Sequencer) dismiss(completed bool) {
	started := s.currentIndex != NotStarted

	if s.active != nil {
		s.active.Hide()
		s.active = nil
	}
	s.currentIndex = NotStarted
	s.steps = nil
	s.scrolling = false
	s.run++

	if !started {
		return
	}
	s.finished = true
	s.logger.Debug().Bool("completed", completed).Msg("tour ended")
	if s.listener != nil {
		s.listener.TourEnded(completed)
	}
}

func (s *Sequencer) advance() {
	if !s.surface.Alive() {
		s.logger.Debug().Int("index", s.currentIndex).Msg("surface gone, not advancing")
		return
	}

	if s.currentIndex >= len(s.steps)-1 {
		s.dismiss(true)
		return
	}

	s.currentIndex++
	s.displayStep(s.steps[s.currentIndex])
}

func (s *Sequencer) displayStep(step Step) {
	if _, ok := step.scrollOffset(s.scrollView); !ok || s.scroller == nil {
		s.showStep(step)
		return
	}

	if s.active != nil {
		s.active.HideCaption()
	}

	token := s.token()
	s.scrolling = true
	s.logger.Debug().Int("index", token.index).Msg("scrolling to step")
	s.scroller.ScrollTo(step, func() {
		if !s.IsStillCurrent(token) {
			s.logger.Debug().Int("index", token.index).Msg("stale scroll completion ignored")
			return
		}
		s.scrolling = false
		s.showStep(step)
	})
}

func (s *Sequencer) showStep(step Step) {
	if !s.surface.Alive() {
		s.logger.Debug().Int("index", s.currentIndex).Msg("surface gone, not showing step")
		return
	}

	if s.active != nil {
		s.active.Hide()
		s.active = nil
	}

	token := s.token()
	s.active = s.surface.Reveal(OverlaySpec{
		Position:       step.Position,
		Radius:         s.radius,
		ClickInCircle:  s.clickInCircle,
		DismissOnTouch: false,
		Message:        step.Message,
		OnTouch: once(func() {
			if !s.IsStillCurrent(token) {
				s.logger.Debug().Int("index", token.index).Msg("stale touch ignored")
				return
			}
			s.advance()
		}),
	})

	if s.listener != nil {
		s.listener.StepShown(token.index, step)
	}
}

func (s *Sequencer) token() Token {
	return Token{run: s.run, index: s.currentIndex}
}

// IsStillCurrent reports whether token still names the step on screen.
func (s *Sequencer) IsStillCurrent(token Token) bool {
	return token.run == s.run && token.index == s.currentIndex
}

// State returns the sequencer's position in the tour.
func (s *Sequencer) State() State {
	switch {
	case s.finished:
		return StateFinished
	case s.currentIndex == NotStarted:
		return StateNotStarted
	case s.scrolling:
		return StateScrolling
	default:
		return StateShowing
	}
}

// CurrentIndex returns the index of the step being shown, or NotStarted.
func (s *Sequencer) CurrentIndex() int {
	return s.currentIndex
}

// Steps returns a copy of the step list.
func (s *Sequencer) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Len returns the number of steps.
func (s *Sequencer) Len() int {
	return len(s.steps)
}

// Surface returns the surface the tour draws over.
func (s *Sequencer) Surface() Surface {
	return s.surface
}

// AddStep appends a step. Only valid before Start.
func (s *Sequencer) AddStep(step Step) {
	s.steps = append(s.steps, step)
	s.finished = false
}

// SetSteps replaces the step list. Only valid before Start.
func (s *Sequencer) SetSteps(steps []Step) {
	s.steps = make([]Step, len(steps))
	copy(s.steps, steps)
	s.finished = false
}

// SetEnableClickInCircle sets whether touches inside the highlight reach the
// view below. True by default.
func (s *Sequencer) SetEnableClickInCircle(enable bool) {
	s.clickInCircle = enable
}
