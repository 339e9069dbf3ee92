package components

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

func blankLines(rows, width int) []string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return lines
}

func TestSpotlightContains(t *testing.T) {
	spot := Spotlight{Row: 5, Col: 10, Radius: 6}

	tests := []struct {
		row, col int
		want     bool
	}{
		{5, 10, true},
		{5, 16, true},
		{5, 17, false},
		{8, 10, true},
		{9, 10, false},
		{7, 14, true},
	}
	for _, tt := range tests {
		if got := spot.Contains(tt.row, tt.col); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestSpotlightRenderKeepsText(t *testing.T) {
	lines := []string{"hello", "world"}
	spot := Spotlight{Row: 0, Col: 0, Radius: 2}

	out := spot.Render(styles.Styles{}, lines, 8)
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0] != "hello   " || out[1] != "world   " {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSpotlightCaptionBelowCircle(t *testing.T) {
	spot := Spotlight{Row: 2, Col: 20, Radius: 4, Caption: "Read me", ShowCaption: true}

	out := spot.Render(styles.Styles{}, blankLines(12, 40), 40)
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "│ Read me │") {
		t.Fatalf("expected caption box, got:\n%s", joined)
	}

	top := -1
	for i, row := range out {
		if strings.Contains(row, "╭") {
			top = i
			break
		}
	}
	if top != 5 {
		t.Fatalf("expected caption to start at row 5, got %d", top)
	}
}

func TestSpotlightCaptionFlipsAboveNearBottom(t *testing.T) {
	spot := Spotlight{Row: 10, Col: 5, Radius: 4, Caption: "Near the end", ShowCaption: true}

	out := spot.Render(styles.Styles{}, blankLines(12, 40), 40)
	for i, row := range out {
		if strings.Contains(row, "╰") {
			if i >= 10 {
				t.Fatalf("expected caption above the circle, bottom edge at %d", i)
			}
			if !strings.HasPrefix(row, "╰") {
				t.Fatalf("expected caption clamped to left edge, got %q", row)
			}
			return
		}
	}
	t.Fatal("caption not drawn")
}

func TestSpotlightHiddenCaption(t *testing.T) {
	spot := Spotlight{Row: 2, Col: 20, Radius: 4, Caption: "Hidden", ShowCaption: false}

	out := spot.Render(styles.Styles{}, blankLines(12, 40), 40)
	if strings.Contains(strings.Join(out, "\n"), "Hidden") {
		t.Fatal("caption should not render")
	}
}

func TestSpotlightWrapsLongCaption(t *testing.T) {
	caption := "This caption is long enough that it has to wrap onto several lines in a narrow box"
	spot := Spotlight{Row: 0, Col: 10, Radius: 2, Caption: caption, ShowCaption: true}

	out := spot.Render(styles.Styles{}, blankLines(12, 24), 24)
	rows := 0
	for _, row := range out {
		if strings.Contains(row, "│") {
			rows++
		}
		if len([]rune(row)) != 24 {
			t.Fatalf("row width changed: %q", row)
		}
	}
	if rows < 3 {
		t.Fatalf("expected wrapped caption, got %d text rows", rows)
	}
}

func TestSpotlightTargetOutsideRegionSkipsCaption(t *testing.T) {
	for _, row := range []int{-8, 12, 34} {
		spot := Spotlight{Row: row, Col: 20, Radius: 6, Caption: "Off screen", ShowCaption: true}

		out := spot.Render(styles.Styles{}, blankLines(12, 40), 40)
		if len(out) != 12 {
			t.Fatalf("row %d: expected 12 rows, got %d", row, len(out))
		}
		if strings.Contains(strings.Join(out, "\n"), "Off screen") {
			t.Fatalf("row %d: caption drawn for a target outside the region", row)
		}
	}
}

func TestSpotlightCaptionStaysInsideShortRegion(t *testing.T) {
	spot := Spotlight{Row: 3, Col: 20, Radius: 12, Caption: "Tight fit", ShowCaption: true}

	out := spot.Render(styles.Styles{}, blankLines(4, 40), 40)
	if len(out) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(out))
	}
	if !strings.Contains(strings.Join(out, "\n"), "Tight fit") {
		t.Fatalf("expected caption, got:\n%s", strings.Join(out, "\n"))
	}
}

func TestSpotlightRenderWideRunesKeepsWidth(t *testing.T) {
	lines := []string{"日本語のテキスト", "plain"}
	spot := Spotlight{Row: 0, Col: 0, Radius: 2}

	out := spot.Render(styles.Styles{}, lines, 10)
	for i, row := range out {
		if w := runewidth.StringWidth(row); w != 10 {
			t.Fatalf("row %d: expected width 10, got %d (%q)", i, w, row)
		}
	}
	if out[0] != "日本語のテ" {
		t.Fatalf("unexpected first row %q", out[0])
	}
}

func TestSpotlightCaptionOverWideRunes(t *testing.T) {
	lines := make([]string, 8)
	for i := range lines {
		lines[i] = strings.Repeat("字", 20)
	}
	spot := Spotlight{Row: 1, Col: 11, Radius: 2, Caption: "Box", ShowCaption: true}

	out := spot.Render(styles.Styles{}, lines, 40)
	for i, row := range out {
		if w := runewidth.StringWidth(row); w != 40 {
			t.Fatalf("row %d: expected width 40, got %d (%q)", i, w, row)
		}
	}
	if !strings.Contains(strings.Join(out, "\n"), "│ Box │") {
		t.Fatalf("expected caption, got:\n%s", strings.Join(out, "\n"))
	}
}
