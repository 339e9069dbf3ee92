package tui

import (
	"github.com/opencode-ai/showcase/internal/showcase"
)

type scope int

const (
	scopePage scope = iota
	scopeSection
)

// host owns the overlay currently drawn over the screen. The page and
// section adapters share it.
type host struct {
	active   *overlay
	quitting bool
	attached bool
}

func newHost() *host {
	return &host{attached: true}
}

func (h *host) present(spec showcase.OverlaySpec, sc scope) showcase.Overlay {
	o := &overlay{host: h, spec: spec, scope: sc}
	h.active = o
	return o
}

// visible returns the overlay that should be drawn, if any.
func (h *host) visible() *overlay {
	if h.active == nil || h.active.hidden {
		return nil
	}
	if h.active.scope == scopeSection && !h.attached {
		return nil
	}
	return h.active
}

// touch delivers a touch to the visible overlay. It reports whether an
// overlay took it.
func (h *host) touch() bool {
	o := h.visible()
	if o == nil {
		return false
	}
	o.touch()
	return true
}

// pageHost adapts the whole screen to showcase.Page.
type pageHost struct {
	*host
}

func (p pageHost) IsFinishing() bool {
	return p.quitting
}

func (p pageHost) Present(spec showcase.OverlaySpec) showcase.Overlay {
	return p.present(spec, scopePage)
}

// sectionHost adapts the document panel to showcase.Section.
type sectionHost struct {
	*host
}

func (s sectionHost) IsAttached() bool {
	return s.attached && !s.quitting
}

func (s sectionHost) Present(spec showcase.OverlaySpec) showcase.Overlay {
	return s.present(spec, scopeSection)
}

// overlay is one spotlight instance. Once hidden it is never drawn again.
type overlay struct {
	host          *host
	spec          showcase.OverlaySpec
	scope         scope
	hidden        bool
	captionHidden bool
}

var _ showcase.Overlay = (*overlay)(nil)

func (o *overlay) Hide() {
	if o.hidden {
		return
	}
	o.hidden = true
	if o.host.active == o {
		o.host.active = nil
	}
}

func (o *overlay) HideCaption() {
	o.captionHidden = true
}

func (o *overlay) touch() {
	if o.hidden {
		return
	}
	if o.spec.DismissOnTouch {
		o.Hide()
	}
	if o.spec.OnTouch != nil {
		o.spec.OnTouch()
	}
}
