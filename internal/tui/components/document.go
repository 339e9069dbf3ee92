// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

// DocumentView displays a scrollable document. It satisfies
// showcase.ScrollView so tours can scroll it between steps.
type DocumentView struct {
	Lines  []string
	Offset int
	Height int
	Width  int

	target    int
	animating bool
	done      func()
}

// NewDocumentView creates a new document view.
func NewDocumentView() *DocumentView {
	return &DocumentView{
		Lines:  make([]string, 0),
		Height: 20,
		Width:  60,
	}
}

// SetLines sets the document content.
func (v *DocumentView) SetLines(lines []string) {
	v.Lines = lines
	v.clampScroll()
}

// SetContent sets the document from a single string.
func (v *DocumentView) SetContent(content string) {
	if content == "" {
		v.Lines = nil
	} else {
		v.Lines = strings.Split(strings.TrimRight(content, "\n"), "\n")
	}
	v.clampScroll()
}

// SetSize resizes the view and keeps the offset in range.
func (v *DocumentView) SetSize(width, height int) {
	v.Width = width
	v.Height = height
	v.clampScroll()
	if v.animating {
		v.target = v.clamp(v.target)
	}
}

// ScrollUp scrolls the view up by n lines. Manual scrolling is ignored while
// an animation runs.
func (v *DocumentView) ScrollUp(n int) {
	if v.animating {
		return
	}
	v.Offset -= n
	v.clampScroll()
}

// ScrollDown scrolls the view down by n lines.
func (v *DocumentView) ScrollDown(n int) {
	if v.animating {
		return
	}
	v.Offset += n
	v.clampScroll()
}

// ScrollToTop scrolls to the top.
func (v *DocumentView) ScrollToTop() {
	if v.animating {
		return
	}
	v.Offset = 0
}

// ScrollToBottom scrolls to the bottom.
func (v *DocumentView) ScrollToBottom() {
	if v.animating {
		return
	}
	v.Offset = v.maxOffset()
}

// ScrollOffset reports the first visible line.
func (v *DocumentView) ScrollOffset() int {
	return v.Offset
}

// VisibleHeight reports how many document lines fit in the view.
func (v *DocumentView) VisibleHeight() int {
	if v.Height <= 1 {
		return 1
	}
	return v.Height - 1 // Reserve the scroll indicator row
}

// ContentHeight reports the number of document lines.
func (v *DocumentView) ContentHeight() int {
	return len(v.Lines)
}

// AnimateTo starts moving the view toward offset. done runs once the target
// is reached. A later call replaces the pending animation and its callback.
func (v *DocumentView) AnimateTo(offset int, done func()) {
	v.target = v.clamp(offset)
	v.done = done
	v.animating = true
	if v.target == v.Offset {
		v.finish()
	}
}

// Animating reports whether an animation is in progress.
func (v *DocumentView) Animating() bool {
	return v.animating
}

// Step advances a running animation by at most lines rows.
func (v *DocumentView) Step(lines int) {
	if !v.animating {
		return
	}
	if lines <= 0 {
		lines = 1
	}

	switch {
	case v.Offset < v.target:
		v.Offset += lines
		if v.Offset > v.target {
			v.Offset = v.target
		}
	case v.Offset > v.target:
		v.Offset -= lines
		if v.Offset < v.target {
			v.Offset = v.target
		}
	}

	if v.Offset == v.target {
		v.finish()
	}
}

// CancelAnimation stops a running animation without running its callback.
func (v *DocumentView) CancelAnimation() {
	v.animating = false
	v.done = nil
}

func (v *DocumentView) finish() {
	v.animating = false
	done := v.done
	v.done = nil
	if done != nil {
		done()
	}
}

func (v *DocumentView) maxOffset() int {
	maxOffset := len(v.Lines) - v.VisibleHeight()
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

func (v *DocumentView) clamp(offset int) int {
	if offset > v.maxOffset() {
		offset = v.maxOffset()
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (v *DocumentView) clampScroll() {
	v.Offset = v.clamp(v.Offset)
}

// PlainLines returns the visible rows, indicator included, as unstyled text
// padded to Width. Overlays render on top of these.
func (v *DocumentView) PlainLines() []string {
	visible := v.VisibleHeight()
	rows := make([]string, 0, visible+1)
	for i := 0; i < visible; i++ {
		line := ""
		if idx := v.Offset + i; idx < len(v.Lines) {
			line = v.Lines[idx]
		}
		rows = append(rows, fitWidth(line, v.Width))
	}
	if v.Height > 1 {
		rows = append(rows, fitWidth(v.scrollIndicator(), v.Width))
	}
	return rows
}

// Render renders the visible rows with light markdown highlighting.
func (v *DocumentView) Render(styleSet styles.Styles) string {
	if len(v.Lines) == 0 {
		return styleSet.Muted.Render("Nothing to show.")
	}

	plain := v.PlainLines()
	rendered := make([]string, 0, len(plain))
	for i, line := range plain {
		if v.Height > 1 && i == len(plain)-1 {
			rendered = append(rendered, styleSet.Muted.Render(line))
			continue
		}
		rendered = append(rendered, highlightLine(styleSet, line))
	}
	return strings.Join(rendered, "\n")
}

func (v *DocumentView) scrollIndicator() string {
	total := len(v.Lines)
	if total == 0 {
		return ""
	}

	visible := v.VisibleHeight()
	if total <= visible {
		return fmt.Sprintf("─── %d lines ───", total)
	}

	endLine := v.Offset + visible
	if endLine > total {
		endLine = total
	}
	percent := (v.Offset * 100) / (total - visible)
	return fmt.Sprintf("─── %d-%d of %d (%d%%) ───", v.Offset+1, endLine, total, percent)
}

// highlightLine applies basic markdown highlighting.
func highlightLine(styleSet styles.Styles, line string) string {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "```") {
		return styleSet.Accent.Render(line)
	}
	if headingPattern.MatchString(line) {
		return styleSet.Title.Render(line)
	}
	if promptMatch := promptPattern.FindStringIndex(line); promptMatch != nil {
		return styleSet.Success.Render(line[:promptMatch[1]]) + styleSet.Text.Render(line[promptMatch[1]:])
	}
	if notePattern.MatchString(trimmed) {
		return styleSet.Info.Render(line)
	}
	return styleSet.Text.Render(line)
}

// fitWidth pads or truncates s to exactly width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

var (
	headingPattern = regexp.MustCompile(`^#{1,6} `)
	promptPattern  = regexp.MustCompile(`^\s*[\$>»] `)
	notePattern    = regexp.MustCompile(`(?i)^(note|hint|tip):`)
)
