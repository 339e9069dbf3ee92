// Package tours provides loading and rendering of guided tour definitions.
package tours

// Tour describes a guided tour over the terminal host.
type Tour struct {
	Name          string      `yaml:"name"`
	Description   string      `yaml:"description"`
	Surface       SurfaceKind `yaml:"surface,omitempty"`
	ClickInCircle *bool       `yaml:"click_in_circle,omitempty"`
	Document      string      `yaml:"document"`
	Steps         []TourStep  `yaml:"steps"`
	Variables     []TourVar   `yaml:"variables,omitempty"`
	Tags          []string    `yaml:"tags,omitempty"`
	Source        string      `yaml:"-"` // file path or "builtin"
}

// TourStep is a single highlight in a tour.
//
// Screen anchors use Row and Col on the fixed header. Content anchors point
// into the document, either by Line (1-based) or by the first line that
// contains Match.
type TourStep struct {
	Anchor  AnchorType `yaml:"anchor"`
	Row     int        `yaml:"row,omitempty"`
	Line    int        `yaml:"line,omitempty"`
	Match   string     `yaml:"match,omitempty"`
	Col     int        `yaml:"col,omitempty"`
	Message string     `yaml:"message,omitempty"`
}

// TourVar describes a variable used in step captions.
type TourVar struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	Required    bool   `yaml:"required"`
}

// AnchorType defines where a step's target lives.
type AnchorType string

const (
	AnchorScreen  AnchorType = "screen"
	AnchorContent AnchorType = "content"
)

// SurfaceKind selects the host surface a tour runs on.
type SurfaceKind string

const (
	SurfacePage    SurfaceKind = "page"
	SurfaceSection SurfaceKind = "section"
)
