package showcase

// Surface is the host screen or screen section a tour draws over.
type Surface interface {
	// Alive reports whether the surface can still display overlays.
	Alive() bool
	// Reveal builds an overlay from spec and shows it on the surface.
	Reveal(spec OverlaySpec) Overlay
}

// Page is a full-screen host.
type Page interface {
	IsFinishing() bool
	Present(spec OverlaySpec) Overlay
}

// Section is a host that occupies part of a page and can be detached from it.
type Section interface {
	IsAttached() bool
	Present(spec OverlaySpec) Overlay
}

// PageSurface returns a surface that is alive until the page starts finishing.
func PageSurface(page Page) Surface {
	return pageSurface{page: page}
}

// SectionSurface returns a surface that is alive while the section is attached.
func SectionSurface(section Section) Surface {
	return sectionSurface{section: section}
}

type pageSurface struct {
	page Page
}

func (s pageSurface) Alive() bool {
	return s.page != nil && !s.page.IsFinishing()
}

func (s pageSurface) Reveal(spec OverlaySpec) Overlay {
	return s.page.Present(spec)
}

type sectionSurface struct {
	section Section
}

func (s sectionSurface) Alive() bool {
	return s.section != nil && s.section.IsAttached()
}

func (s sectionSurface) Reveal(spec OverlaySpec) Overlay {
	return s.section.Present(spec)
}
