// Package showcase sequences guided tours of highlighted UI regions.
package showcase

// Position locates a step's highlight target.
//
// ScrollPosition reports the container offset that brings the target into
// view. ok is false when the step is not scroll-relevant for view, which
// includes a nil view.
type Position interface {
	ScrollPosition(view ScrollView) (offset int, ok bool)
}

// Step is one unit of a tour: a target position plus its caption.
type Step struct {
	Position Position
	Message  string
}

// NewStep creates a step.
func NewStep(position Position, message string) Step {
	return Step{Position: position, Message: message}
}

// scrollOffset asks the step's position for an offset against view.
func (s Step) scrollOffset(view ScrollView) (int, bool) {
	if s.Position == nil {
		return 0, false
	}
	return s.Position.ScrollPosition(view)
}
