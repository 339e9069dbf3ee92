package showcase

import "sync"

// ScrollView is a scrollable container that tour steps can live in.
type ScrollView interface {
	ScrollOffset() int
	VisibleHeight() int
	ContentHeight() int
	// AnimateTo moves the container to offset and calls done once it settles.
	AnimateTo(offset int, done func())
}

// Scroller brings a step's target into view.
//
// ScrollTo calls onComplete exactly once after the container settles. It is
// never called on failure.
type Scroller interface {
	ScrollTo(step Step, onComplete func())
}

// ViewScroller scrolls a ScrollView to the offset reported by a step's position.
type ViewScroller struct {
	view ScrollView
}

// NewViewScroller creates a scroller bound to view.
func NewViewScroller(view ScrollView) *ViewScroller {
	return &ViewScroller{view: view}
}

// ScrollTo implements Scroller.
func (s *ViewScroller) ScrollTo(step Step, onComplete func()) {
	done := once(onComplete)
	if s.view == nil {
		done()
		return
	}

	offset, ok := step.scrollOffset(s.view)
	if !ok {
		done()
		return
	}

	offset = clampOffset(offset, s.view.VisibleHeight(), s.view.ContentHeight())
	if offset == s.view.ScrollOffset() {
		done()
		return
	}
	s.view.AnimateTo(offset, done)
}

func clampOffset(offset, visible, content int) int {
	maxOffset := content - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// once wraps fn so that only the first call reaches it.
func once(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	var o sync.Once
	return func() {
		o.Do(fn)
	}
}
