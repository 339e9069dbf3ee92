// Package cli provides status formatting helpers.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/showcase/internal/models"
)

const (
	colorRed     = "1"
	colorGreen   = "2"
	colorYellow  = "3"
	colorMagenta = "5"
	colorCyan    = "6"
)

func formatTourStatus(progress *models.TourProgress) string {
	label, status, color := statusLabelForTour(progress)
	return colorize(formatStatusLabel(label, status), color)
}

func statusLabelForTour(progress *models.TourProgress) (string, string, string) {
	switch {
	case progress == nil || progress.Runs == 0:
		return "--", "never_run", colorMagenta
	case progress.Completed():
		return "OK", "completed", colorGreen
	default:
		return "WAIT", "started", colorYellow
	}
}

func formatEventType(eventType models.EventType) string {
	switch eventType {
	case models.EventTypeTourCompleted:
		return colorize(string(eventType), colorGreen)
	case models.EventTypeTourDismissed:
		return colorize(string(eventType), colorYellow)
	case models.EventTypeError:
		return colorize(string(eventType), colorRed)
	default:
		return colorize(string(eventType), colorCyan)
	}
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}

// colorize renders value in an ANSI color. lipgloss drops the color when
// stdout is not a terminal.
func colorize(value, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(value)
}
