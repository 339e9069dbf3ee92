package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/showcase/internal/logging"
	"github.com/opencode-ai/showcase/internal/showcase"
)

// ProgressStore tracks per-tour runs and completion.
type ProgressStore interface {
	RecordRun(ctx context.Context, tour string) error
	MarkCompleted(ctx context.Context, tour string) error
}

// Recorder persists tour progress as a showcase.Listener.
//
// Write failures are logged and otherwise ignored so a broken database never
// interrupts a running tour.
type Recorder struct {
	ctx      context.Context
	tour     string
	total    int
	repo     Repository
	progress ProgressStore
	shown    int
	logger   zerolog.Logger
}

var _ showcase.Listener = (*Recorder)(nil)

// NewRecorder creates a recorder for one run of tour. Either store may be nil.
func NewRecorder(ctx context.Context, tour string, total int, repo Repository, progress ProgressStore) *Recorder {
	return &Recorder{
		ctx:      ctx,
		tour:     tour,
		total:    total,
		repo:     repo,
		progress: progress,
		logger:   logging.Component("events").With().Str("tour", tour).Logger(),
	}
}

// Started records the beginning of a run. A restarted tour counts its shown
// steps from zero again.
func (r *Recorder) Started(surface string) {
	r.shown = 0
	if r.repo != nil {
		if err := LogTourStarted(r.ctx, r.repo, r.tour, r.total, surface); err != nil {
			r.logger.Warn().Err(err).Msg("failed to record tour start")
		}
	}
	if r.progress != nil {
		if err := r.progress.RecordRun(r.ctx, r.tour); err != nil {
			r.logger.Warn().Err(err).Msg("failed to record tour run")
		}
	}
}

// StepShown implements showcase.Listener.
func (r *Recorder) StepShown(index int, step showcase.Step) {
	r.shown++
	r.logger.Debug().Int("index", index).Msg("step shown")
	if r.repo == nil {
		return
	}
	if err := LogStepShown(r.ctx, r.repo, r.tour, index, r.total, step.Message); err != nil {
		r.logger.Warn().Err(err).Int("index", index).Msg("failed to record step")
	}
}

// TourEnded implements showcase.Listener.
func (r *Recorder) TourEnded(completed bool) {
	r.logger.Info().Bool("completed", completed).Int("shown", r.shown).Msg("tour ended")
	if r.repo != nil {
		if err := LogTourEnded(r.ctx, r.repo, r.tour, completed, r.shown); err != nil {
			r.logger.Warn().Err(err).Msg("failed to record tour end")
		}
	}
	if completed && r.progress != nil {
		if err := r.progress.MarkCompleted(r.ctx, r.tour); err != nil {
			r.logger.Warn().Err(err).Msg("failed to mark tour completed")
		}
	}
}

// Shown returns how many steps were revealed during the run.
func (r *Recorder) Shown() int {
	return r.shown
}
