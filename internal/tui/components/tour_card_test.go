package components

import (
	"strings"
	"testing"
	"time"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

func TestRenderTourCard(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("never run", func(t *testing.T) {
		out := RenderTourCard(styleSet, TourCard{Name: "welcome", Steps: 5, Source: "builtin"})
		for _, want := range []string{"welcome", "Steps: 5", "Never run", "builtin", "Surface: page"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in card, got:\n%s", want, out)
			}
		}
	})

	t.Run("completed", func(t *testing.T) {
		done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		out := RenderTourCard(styleSet, TourCard{Name: "panel", Runs: 3, CompletedAt: &done, Tags: []string{"intro"}})
		if !strings.Contains(out, "Completed") || !strings.Contains(out, "3 runs") {
			t.Errorf("expected completion line, got:\n%s", out)
		}
		if !strings.Contains(out, "Tags: intro") {
			t.Errorf("expected tags, got:\n%s", out)
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncate result %q", got)
	}
	if got := truncate("abc", 6); got != "abc" {
		t.Fatalf("unexpected truncate result %q", got)
	}
}
