// Package tui implements the Showcase terminal host.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/showcase/internal/logging"
	"github.com/opencode-ai/showcase/internal/showcase"
	"github.com/opencode-ai/showcase/internal/tours"
	"github.com/opencode-ai/showcase/internal/tui/components"
	"github.com/opencode-ai/showcase/internal/tui/styles"
)

// Config wires a tour into the terminal host.
type Config struct {
	Theme string
	Mouse bool
	Tour  *tours.Tour
	// Steps are the tour's steps with captions already rendered.
	Steps []tours.TourStep
	// Section runs the tour over the document panel instead of the screen.
	Section            bool
	Radius             float64
	ClickInCircle      bool
	ScrollLinesPerTick int
	ScrollTick         time.Duration
	// Listener observes the run. If it also has a Started(surface string)
	// method, that is called each time the tour starts.
	Listener showcase.Listener
}

// Run launches the host and blocks until the user quits.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(m, opts...)
	_, err = program.Run()
	return err
}

const (
	minWidth   = 40
	minHeight  = 10
	headerRows = 4 // title, description, status, separator
)

type starter interface {
	Started(surface string)
}

type model struct {
	width  int
	height int
	styles styles.Styles
	keys   keyMap

	tour    *tours.Tour
	steps   []showcase.Step
	surface tours.SurfaceKind
	host    *host
	doc     *components.DocumentView
	seq     *showcase.Sequencer
	status  *tourStatus
	starter starter

	linesPerTick int
	tick         time.Duration
	ticking      bool
	started      bool
	lastClick    string
	logger       zerolog.Logger
}

func newModel(cfg Config) (model, error) {
	if cfg.Tour == nil {
		return model{}, errors.New("tour is required")
	}
	renderedSteps := cfg.Steps
	if renderedSteps == nil {
		renderedSteps = cfg.Tour.Steps
	}
	if len(renderedSteps) == 0 {
		return model{}, fmt.Errorf("tour %q has no steps", cfg.Tour.Name)
	}

	doc := components.NewDocumentView()
	doc.SetContent(cfg.Tour.Document)

	h := newHost()
	kind := cfg.Tour.Surface
	if cfg.Section {
		kind = tours.SurfaceSection
	}
	var surface showcase.Surface
	if kind == tours.SurfaceSection {
		surface = showcase.SectionSurface(sectionHost{h})
	} else {
		kind = tours.SurfacePage
		surface = showcase.PageSurface(pageHost{h})
	}

	clickInCircle := cfg.ClickInCircle
	if cfg.Tour.ClickInCircle != nil {
		clickInCircle = *cfg.Tour.ClickInCircle
	}

	status := &tourStatus{}
	steps := StepsFromTour(renderedSteps)
	seq := showcase.NewBuilder(surface).
		WithScrollView(doc).
		SetSteps(steps).
		SetEnableClickInCircle(clickInCircle).
		WithRadius(cfg.Radius).
		WithListener(statusListener{status: status, next: cfg.Listener}).
		Build()

	m := model{
		styles:       styles.BuildStyles(styles.ThemeByName(cfg.Theme)),
		keys:         newKeyMap(),
		tour:         cfg.Tour,
		steps:        steps,
		surface:      kind,
		host:         h,
		doc:          doc,
		seq:          seq,
		status:       status,
		linesPerTick: cfg.ScrollLinesPerTick,
		tick:         cfg.ScrollTick,
		logger:       logging.Component("tui"),
	}
	if s, ok := cfg.Listener.(starter); ok {
		m.starter = s
	}
	if m.linesPerTick <= 0 {
		m.linesPerTick = 2
	}
	if m.tick <= 0 {
		m.tick = 16 * time.Millisecond
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.doc.SetSize(m.width, m.layout().docHeight)
		if !m.started {
			m.started = true
			m.startTour()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.host.quitting = true
			m.doc.CancelAnimation()
			m.seq.Dismiss()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.host.touch()
		case key.Matches(msg, m.keys.Dismiss):
			m.doc.CancelAnimation()
			m.seq.Dismiss()
		case key.Matches(msg, m.keys.Restart):
			if m.status.ended {
				m.seq.SetSteps(m.steps)
				m.startTour()
			}
		case key.Matches(msg, m.keys.Detach):
			m.host.attached = !m.host.attached
			m.logger.Debug().Bool("attached", m.host.attached).Msg("document panel toggled")
		case key.Matches(msg, m.keys.UpDown):
			if msg.String() == "up" || msg.String() == "k" {
				m.doc.ScrollUp(1)
			} else {
				m.doc.ScrollDown(1)
			}
		case key.Matches(msg, m.keys.Page):
			if msg.String() == "pgup" {
				m.doc.ScrollUp(m.doc.VisibleHeight())
			} else {
				m.doc.ScrollDown(m.doc.VisibleHeight())
			}
		case key.Matches(msg, m.keys.Jump):
			if msg.String() == "home" || msg.String() == "g" {
				m.doc.ScrollToTop()
			} else {
				m.doc.ScrollToBottom()
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case scrollTickMsg:
		m.ticking = false
		if m.host.attached {
			m.doc.Step(m.linesPerTick)
		}
	}

	cmd := m.scheduleScroll()
	return m, cmd
}

func (m *model) startTour() {
	m.status.reset()
	if m.starter != nil {
		m.starter.Started(string(m.surface))
	}
	m.seq.Start()
}

// scheduleScroll requests the next animation frame while the document is
// moving. Only one frame is in flight at a time, and the animation pauses
// while the panel is detached so the step lands after it is reattached.
func (m *model) scheduleScroll() tea.Cmd {
	if !m.doc.Animating() || m.ticking || !m.host.attached {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return scrollTickMsg{}
	})
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.doc.ScrollUp(1)
		return
	case tea.MouseButtonWheelDown:
		m.doc.ScrollDown(1)
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	o := m.host.visible()
	if o == nil {
		m.clickThrough(msg.Y, msg.X)
		return
	}
	if o.spec.ClickInCircle {
		spot, top, _ := m.spotlightFor(o)
		if spot.Contains(msg.Y-top, msg.X) {
			m.clickThrough(msg.Y, msg.X)
		}
	}
	m.host.touch()
}

// clickThrough delivers a click to the view under the overlay.
func (m *model) clickThrough(row, col int) {
	l := m.layout()
	switch {
	case row < headerRows:
		m.lastClick = "clicked header"
	case row >= l.docTop && row < l.docTop+l.docHeight && m.host.attached:
		line := m.doc.Offset + row - l.docTop
		if line < m.doc.ContentHeight() && row-l.docTop < m.doc.VisibleHeight() {
			m.lastClick = fmt.Sprintf("clicked line %d", line+1)
		}
	}
	m.logger.Debug().Int("row", row).Int("col", col).Str("click", m.lastClick).Msg("click passed through")
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		return strings.Join(m.smallViewLines(), "\n")
	}

	plain, styled := m.screenRows()
	if o := m.host.visible(); o != nil {
		spot, top, bottom := m.spotlightFor(o)
		copy(styled[top:bottom], spot.Render(m.styles, plain[top:bottom], m.width))
	}
	return strings.Join(styled, "\n")
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

// screenRows returns every screen row twice: as plain text for overlays to
// draw over, and styled for display.
func (m model) screenRows() ([]string, []string) {
	l := m.layout()
	plain := make([]string, 0, m.height)
	styled := make([]string, 0, m.height)
	add := func(text string, style lipgloss.Style) {
		text = fitWidth(text, m.width)
		plain = append(plain, text)
		styled = append(styled, style.Render(text))
	}

	add(m.tour.Name, m.styles.Title)
	add(m.tour.Description, m.styles.Muted)

	statusPlain, statusStyled := m.statusLine()
	plain = append(plain, fitWidth(statusPlain, m.width))
	styled = append(styled, statusStyled)

	add(strings.Repeat("─", m.width), m.styles.Border)

	if m.host.attached {
		docPlain := m.doc.PlainLines()
		docStyled := strings.Split(m.doc.Render(m.styles), "\n")
		for i := 0; i < l.docHeight; i++ {
			p, s := "", ""
			if i < len(docPlain) {
				p = docPlain[i]
			}
			if i < len(docStyled) {
				s = docStyled[i]
			}
			plain = append(plain, fitWidth(p, m.width))
			styled = append(styled, s)
		}
	} else {
		placeholder := strings.Split(components.DetachedSection().Render(m.styles), "\n")
		for i := 0; i < l.docHeight; i++ {
			s := ""
			if i < len(placeholder) {
				s = placeholder[i]
			}
			plain = append(plain, fitWidth("", m.width))
			styled = append(styled, s)
		}
	}

	footer := renderHelp(m.styles, m.keys.ShortHelp())
	plain = append(plain, fitWidth("", m.width))
	styled = append(styled, footer)

	return plain, styled
}

func (m model) statusLine() (string, string) {
	state := m.seq.State()
	parts := []string{components.TourStateLabel(state)}
	styledParts := []string{components.RenderTourStateBadge(m.styles, state)}

	if index := m.seq.CurrentIndex(); index != showcase.NotStarted {
		step := fmt.Sprintf("step %d/%d", index+1, m.seq.Len())
		parts = append(parts, step)
		styledParts = append(styledParts, m.styles.Text.Render(step))
	}
	if m.status.ended {
		done := components.TourFinished(m.status.completed).RenderCompact(m.styles)
		parts = append(parts, components.TourFinished(m.status.completed).RenderCompact(styles.Styles{}))
		styledParts = append(styledParts, done)
	}
	if m.lastClick != "" {
		parts = append(parts, m.lastClick)
		styledParts = append(styledParts, m.styles.Info.Render(m.lastClick))
	}

	return strings.Join(parts, "  "), strings.Join(styledParts, "  ")
}

// spotlightFor places o in the region it covers, returning the spotlight in
// region coordinates and the region's first and past-the-end rows.
func (m model) spotlightFor(o *overlay) (components.Spotlight, int, int) {
	l := m.layout()
	top, bottom := 0, m.height
	if o.scope == scopeSection {
		top, bottom = l.docTop, l.docTop+l.docHeight
	}

	row, col := 0, 0
	if loc, ok := o.spec.Position.(locator); ok {
		row, col = loc.screenCell(l, m.doc.Offset)
	}

	return components.Spotlight{
		Row:         row - top,
		Col:         col,
		Radius:      o.spec.Radius,
		Caption:     o.spec.Message,
		ShowCaption: !o.captionHidden,
	}, top, bottom
}

type layout struct {
	docTop    int
	docHeight int
}

func (m model) layout() layout {
	docHeight := m.height - headerRows - 1
	if docHeight < 1 {
		docHeight = 1
	}
	return layout{docTop: headerRows, docHeight: docHeight}
}

func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
