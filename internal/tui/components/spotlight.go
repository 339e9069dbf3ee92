package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

const maxCaptionWidth = 40

// Spotlight dims a region of the screen except for a circular cutout and
// draws a caption box next to it. Row and Col are relative to the region.
type Spotlight struct {
	Row         int
	Col         int
	Radius      float64
	Caption     string
	ShowCaption bool
}

type cellClass int

const (
	cellDim cellClass = iota
	cellSpot
	cellCaption
	cellCaptionBorder
)

// Contains reports whether a cell lies inside the cutout. Terminal cells are
// roughly twice as tall as wide, so Radius is measured in columns and the
// vertical extent is halved.
func (s Spotlight) Contains(row, col int) bool {
	dx := float64(col - s.Col)
	dy := float64(row-s.Row) * 2
	return dx*dx+dy*dy <= s.Radius*s.Radius
}

// Render styles lines as an overlay. lines must be plain text. The caption is
// only drawn while the target row lies inside the region.
func (s Spotlight) Render(styleSet styles.Styles, lines []string, width int) []string {
	height := len(lines)
	grid := make([][]rune, height)
	classes := make([][]cellClass, height)

	for y, line := range lines {
		class := make([]cellClass, width)
		for x := range class {
			if s.Contains(y, x) {
				class[x] = cellSpot
			}
		}
		grid[y] = layoutCells(line, width)
		classes[y] = class
	}

	if s.ShowCaption && strings.TrimSpace(s.Caption) != "" && s.Row >= 0 && s.Row < height {
		s.drawCaption(grid, classes, width)
		for _, row := range grid {
			repairWide(row)
		}
	}

	out := make([]string, height)
	for y := range grid {
		out[y] = renderRuns(styleSet, grid[y], classes[y])
	}
	return out
}

func (s Spotlight) drawCaption(grid [][]rune, classes [][]cellClass, width int) {
	inner := width - 4
	if inner > maxCaptionWidth {
		inner = maxCaptionWidth
	}
	if inner < 4 {
		return
	}

	var text []string
	textWidth := 0
	for _, line := range strings.Split(wordwrap.String(strings.TrimSpace(s.Caption), inner), "\n") {
		line = runewidth.Truncate(line, inner, "")
		if w := runewidth.StringWidth(line); w > textWidth {
			textWidth = w
		}
		text = append(text, line)
	}

	boxWidth := textWidth + 4
	boxHeight := len(text) + 2
	if boxHeight > len(grid) {
		return
	}

	reach := int(math.Ceil(s.Radius / 2))
	top := s.Row + reach + 1
	if top+boxHeight > len(grid) {
		top = s.Row - reach - boxHeight
	}
	if top+boxHeight > len(grid) {
		top = len(grid) - boxHeight
	}
	if top < 0 {
		top = 0
	}
	left := s.Col - boxWidth/2
	if left+boxWidth > width {
		left = width - boxWidth
	}
	if left < 0 {
		left = 0
	}

	put := func(y, x int, r rune, class cellClass) {
		grid[top+y][left+x] = r
		classes[top+y][left+x] = class
	}

	for x := 0; x < boxWidth; x++ {
		edge := '─'
		switch x {
		case 0:
			put(0, x, '╭', cellCaptionBorder)
			put(boxHeight-1, x, '╰', cellCaptionBorder)
			continue
		case boxWidth - 1:
			put(0, x, '╮', cellCaptionBorder)
			put(boxHeight-1, x, '╯', cellCaptionBorder)
			continue
		}
		put(0, x, edge, cellCaptionBorder)
		put(boxHeight-1, x, edge, cellCaptionBorder)
	}

	for i, line := range text {
		y := i + 1
		put(y, 0, '│', cellCaptionBorder)
		put(y, 1, ' ', cellCaption)
		for x, r := range layoutCells(line, textWidth) {
			put(y, x+2, r, cellCaption)
		}
		put(y, boxWidth-2, ' ', cellCaption)
		put(y, boxWidth-1, '│', cellCaptionBorder)
	}
}

// layoutCells places text on width terminal cells. A wide rune takes its
// cell and the next one, which holds 0.
func layoutCells(text string, width int) []rune {
	row := make([]rune, width)
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		row[x] = r
		x += w
	}
	for ; x < width; x++ {
		row[x] = ' '
	}
	return row
}

// repairWide blanks the halves of wide runes the caption box cut in two.
func repairWide(row []rune) {
	for x := range row {
		if row[x] == 0 && (x == 0 || runewidth.RuneWidth(row[x-1]) != 2) {
			row[x] = ' '
		}
		if runewidth.RuneWidth(row[x]) == 2 && (x+1 >= len(row) || row[x+1] != 0) {
			row[x] = ' '
		}
	}
}

func renderRuns(styleSet styles.Styles, row []rune, classes []cellClass) string {
	var b strings.Builder
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && classes[x] == classes[start] {
			continue
		}
		b.WriteString(styleFor(styleSet, classes[start]).Render(runText(row[start:x])))
		start = x
	}
	return b.String()
}

func runText(cells []rune) string {
	var b strings.Builder
	for _, r := range cells {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func styleFor(styleSet styles.Styles, class cellClass) lipgloss.Style {
	switch class {
	case cellSpot:
		return styleSet.Spotlight
	case cellCaption:
		return styleSet.Caption
	case cellCaptionBorder:
		return styleSet.CaptionBorder
	default:
		return styleSet.Dim
	}
}
