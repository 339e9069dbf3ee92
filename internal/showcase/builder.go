package showcase

import "github.com/rs/zerolog"

// Builder accumulates sequencer configuration.
type Builder struct {
	surface       Surface
	scrollView    ScrollView
	scroller      Scroller
	steps         []Step
	radius        float64
	clickInCircle bool
	listener      Listener
	logger        *zerolog.Logger
}

// NewBuilder starts a builder for a tour over surface.
func NewBuilder(surface Surface) *Builder {
	return &Builder{
		surface:       surface,
		radius:        DefaultRadius,
		clickInCircle: true,
	}
}

// WithScrollView sets the container scroll-relevant steps live in. Without
// one every step is shown immediately.
func (b *Builder) WithScrollView(view ScrollView) *Builder {
	b.scrollView = view
	return b
}

// WithScroller replaces the default ViewScroller.
func (b *Builder) WithScroller(scroller Scroller) *Builder {
	b.scroller = scroller
	return b
}

// AddStep appends a step.
func (b *Builder) AddStep(step Step) *Builder {
	b.steps = append(b.steps, step)
	return b
}

// SetSteps replaces the step list.
func (b *Builder) SetSteps(steps []Step) *Builder {
	b.steps = append([]Step(nil), steps...)
	return b
}

// SetEnableClickInCircle sets whether touches inside the highlight reach the
// view below.
func (b *Builder) SetEnableClickInCircle(enable bool) *Builder {
	b.clickInCircle = enable
	return b
}

// WithRadius sets the highlight radius. Non-positive values keep the default.
func (b *Builder) WithRadius(radius float64) *Builder {
	if radius > 0 {
		b.radius = radius
	}
	return b
}

// WithListener registers a progress listener.
func (b *Builder) WithListener(listener Listener) *Builder {
	b.listener = listener
	return b
}

// WithLogger overrides the component logger.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

// Build creates the sequencer.
func (b *Builder) Build() *Sequencer {
	s := newSequencer(b.surface)
	s.scrollView = b.scrollView
	s.scroller = b.scroller
	if s.scroller == nil && b.scrollView != nil {
		s.scroller = NewViewScroller(b.scrollView)
	}
	s.radius = b.radius
	s.clickInCircle = b.clickInCircle
	s.listener = b.listener
	if b.logger != nil {
		s.logger = *b.logger
	}
	s.SetSteps(b.steps)
	return s
}
