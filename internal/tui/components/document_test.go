package components

import (
	"reflect"
	"strings"
	"testing"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", i%5)
	}
	return lines
}

func TestDocumentViewClampsOffset(t *testing.T) {
	view := NewDocumentView()
	view.Height = 6
	view.SetLines(numberedLines(10))

	view.ScrollDown(100)
	if view.Offset != 5 {
		t.Fatalf("expected offset 5, got %d", view.Offset)
	}
	view.ScrollUp(100)
	if view.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", view.Offset)
	}
	if view.VisibleHeight() != 5 || view.ContentHeight() != 10 {
		t.Fatalf("unexpected geometry %d/%d", view.VisibleHeight(), view.ContentHeight())
	}
}

func TestDocumentViewSetContentTrimsTrailingNewline(t *testing.T) {
	view := NewDocumentView()
	view.SetContent("a\nb\n")

	if !reflect.DeepEqual(view.Lines, []string{"a", "b"}) {
		t.Fatalf("unexpected lines %v", view.Lines)
	}
	view.SetContent("")
	if view.ContentHeight() != 0 {
		t.Fatalf("expected empty document, got %d lines", view.ContentHeight())
	}
}

func TestDocumentViewAnimation(t *testing.T) {
	view := NewDocumentView()
	view.Height = 6
	view.SetLines(numberedLines(30))

	calls := 0
	view.AnimateTo(7, func() { calls++ })
	if !view.Animating() {
		t.Fatal("expected animation to be running")
	}

	view.ScrollDown(10)
	if view.Offset != 0 {
		t.Fatalf("manual scroll during animation should be ignored, got %d", view.Offset)
	}

	view.Step(3)
	view.Step(3)
	if view.Offset != 6 || calls != 0 {
		t.Fatalf("expected offset 6 and no callback, got %d/%d", view.Offset, calls)
	}
	view.Step(3)
	if view.Offset != 7 || calls != 1 || view.Animating() {
		t.Fatalf("expected finished animation at 7, got offset %d calls %d", view.Offset, calls)
	}

	view.Step(3)
	if calls != 1 {
		t.Fatalf("callback fired again: %d", calls)
	}
}

func TestDocumentViewAnimateToCurrentOffsetCompletesImmediately(t *testing.T) {
	view := NewDocumentView()
	view.Height = 6
	view.SetLines(numberedLines(30))

	done := false
	view.AnimateTo(-4, func() { done = true })
	if !done || view.Animating() {
		t.Fatal("expected immediate completion for clamped target equal to offset")
	}
}

func TestDocumentViewAnimationReplacedAndCancelled(t *testing.T) {
	view := NewDocumentView()
	view.Height = 6
	view.SetLines(numberedLines(30))

	first, second := 0, 0
	view.AnimateTo(10, func() { first++ })
	view.Step(2)
	view.AnimateTo(0, func() { second++ })
	view.Step(5)

	if first != 0 || second != 1 {
		t.Fatalf("expected only the replacing callback, got %d/%d", first, second)
	}

	view.AnimateTo(20, func() { first++ })
	view.CancelAnimation()
	view.Step(50)
	if first != 0 || view.Animating() {
		t.Fatal("cancelled animation should not complete")
	}
}

func TestDocumentViewPlainLines(t *testing.T) {
	view := NewDocumentView()
	view.Width = 12
	view.Height = 4
	view.SetLines([]string{"alpha", "a much longer line", "gamma", "delta", "eps"})
	view.ScrollDown(1)

	rows := view.PlainLines()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0] != "a much longe" {
		t.Fatalf("expected truncated row, got %q", rows[0])
	}
	if rows[1] != "gamma       " {
		t.Fatalf("expected padded row, got %q", rows[1])
	}
	if !strings.HasPrefix(rows[3], "─── 2-4") {
		t.Fatalf("expected scroll indicator, got %q", rows[3])
	}
}

func TestDocumentViewJumpToEnds(t *testing.T) {
	view := NewDocumentView()
	view.Height = 6
	view.SetLines(numberedLines(30))

	view.ScrollToBottom()
	if view.Offset != 25 {
		t.Fatalf("expected offset 25, got %d", view.Offset)
	}
	view.ScrollToTop()
	if view.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", view.Offset)
	}

	view.AnimateTo(10, nil)
	view.ScrollToBottom()
	if view.Offset != 0 {
		t.Fatalf("jump during animation should be ignored, got offset %d", view.Offset)
	}
}
