package showcase

// DefaultRadius is the highlight radius used when none is configured.
const DefaultRadius = 6.0

// OverlaySpec configures a single overlay instance.
type OverlaySpec struct {
	Position Position
	Radius   float64
	// ClickInCircle lets touches inside the highlight reach the view below.
	ClickInCircle bool
	// DismissOnTouch makes the overlay hide itself when touched.
	DismissOnTouch bool
	Message        string
	// OnTouch is called when the overlay is touched.
	OnTouch func()
}

// Overlay is a single highlight plus caption shown over a surface.
//
// An overlay is single use: once hidden it is discarded and never shown again.
type Overlay interface {
	// Hide removes the overlay entirely.
	Hide()
	// HideCaption drops the caption but keeps the dimmed highlight visible.
	HideCaption()
}
