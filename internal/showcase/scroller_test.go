package showcase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewScrollerCompletesImmediatelyWhenVisible(t *testing.T) {
	view := newFakeScrollView()
	view.offset = 20
	scroller := NewViewScroller(view)

	calls := 0
	scroller.ScrollTo(NewStep(line(20), ""), func() { calls++ })

	require.Equal(t, 1, calls)
	require.Empty(t, view.targets)
}

func TestViewScrollerClampsOffset(t *testing.T) {
	view := newFakeScrollView()
	scroller := NewViewScroller(view)

	scroller.ScrollTo(NewStep(line(500), ""), func() {})
	scroller.ScrollTo(NewStep(line(-5), ""), func() {})

	require.Equal(t, []int{90}, view.targets)
}

func TestViewScrollerCompletionFiresOnce(t *testing.T) {
	view := newFakeScrollView()
	scroller := NewViewScroller(view)

	calls := 0
	scroller.ScrollTo(NewStep(line(40), ""), func() { calls++ })
	require.Equal(t, 0, calls)

	done := view.pending[0]
	done()
	done()

	require.Equal(t, 1, calls)
}

func TestViewScrollerWithoutScrollPosition(t *testing.T) {
	view := newFakeScrollView()
	scroller := NewViewScroller(view)

	calls := 0
	scroller.ScrollTo(NewStep(fixed{}, ""), func() { calls++ })
	scroller.ScrollTo(NewStep(nil, ""), func() { calls++ })

	require.Equal(t, 2, calls)
	require.Empty(t, view.targets)
}

func TestClampOffsetShortContent(t *testing.T) {
	require.Equal(t, 0, clampOffset(12, 10, 4))
	require.Equal(t, 6, clampOffset(6, 10, 30))
}

func TestOnceNilFunc(t *testing.T) {
	require.NotPanics(t, func() { once(nil)() })
}
