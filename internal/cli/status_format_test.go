package cli

import (
	"testing"
	"time"

	"github.com/opencode-ai/showcase/internal/models"
)

func TestStatusLabelForTour(t *testing.T) {
	done := time.Now()

	tests := []struct {
		name     string
		progress *models.TourProgress
		label    string
		status   string
	}{
		{"nil", nil, "--", "never_run"},
		{"no runs", &models.TourProgress{Tour: "a"}, "--", "never_run"},
		{"started", &models.TourProgress{Tour: "a", Runs: 2}, "WAIT", "started"},
		{"completed", &models.TourProgress{Tour: "a", Runs: 1, CompletedAt: &done}, "OK", "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, status, _ := statusLabelForTour(tt.progress)
			if label != tt.label || status != tt.status {
				t.Errorf("statusLabelForTour() = %q/%q, want %q/%q", label, status, tt.label, tt.status)
			}
		})
	}
}

func TestFormatStatusLabel(t *testing.T) {
	if got := formatStatusLabel("OK", "never_run"); got != "OK never run" {
		t.Fatalf("formatStatusLabel() = %q", got)
	}
	if got := formatStatusLabel("OK", " "); got != "OK" {
		t.Fatalf("formatStatusLabel() = %q", got)
	}
}
