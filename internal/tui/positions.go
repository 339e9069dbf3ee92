package tui

import (
	"github.com/opencode-ai/showcase/internal/showcase"
	"github.com/opencode-ai/showcase/internal/tours"
)

// locator resolves a position to a screen cell for the current layout.
type locator interface {
	screenCell(l layout, offset int) (row, col int)
}

// ScreenAnchor highlights a fixed cell of the screen. It never scrolls.
type ScreenAnchor struct {
	Row int
	Col int
}

// ScrollPosition implements showcase.Position.
func (ScreenAnchor) ScrollPosition(showcase.ScrollView) (int, bool) {
	return 0, false
}

func (a ScreenAnchor) screenCell(layout, int) (int, int) {
	return a.Row, a.Col
}

// ContentAnchor highlights a line of the document. Line is zero based. The
// document scrolls so the line sits in the middle of the pane.
type ContentAnchor struct {
	Line int
	Col  int
}

// ScrollPosition implements showcase.Position.
func (a ContentAnchor) ScrollPosition(view showcase.ScrollView) (int, bool) {
	if view == nil {
		return 0, false
	}
	return a.Line - view.VisibleHeight()/2, true
}

func (a ContentAnchor) screenCell(l layout, offset int) (int, int) {
	return l.docTop + a.Line - offset, a.Col
}

// StepsFromTour converts rendered tour steps into sequencer steps.
func StepsFromTour(steps []tours.TourStep) []showcase.Step {
	out := make([]showcase.Step, 0, len(steps))
	for _, step := range steps {
		var position showcase.Position
		switch step.Anchor {
		case tours.AnchorContent:
			position = ContentAnchor{Line: step.Line - 1, Col: step.Col}
		default:
			position = ScreenAnchor{Row: step.Row, Col: step.Col}
		}
		out = append(out, showcase.NewStep(position, step.Message))
	}
	return out
}
