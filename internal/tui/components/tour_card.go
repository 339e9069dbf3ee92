package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

const (
	tourCardWidth        = 48
	maxDescriptionLength = 44
)

// TourCard contains data needed to render a tour summary card.
type TourCard struct {
	Name        string
	Description string
	Source      string
	Surface     string
	Steps       int
	Tags        []string

	// Runs is how many times the tour has been started.
	Runs        int
	CompletedAt *time.Time
}

// RenderTourCard renders a compact tour summary card.
func RenderTourCard(styleSet styles.Styles, card TourCard) string {
	header := styleSet.Accent.Render(defaultIfEmpty(card.Name, "Tour"))
	description := styleSet.Text.Render(truncate(defaultIfEmpty(card.Description, "No description"), maxDescriptionLength))
	meta := styleSet.Muted.Render(fmt.Sprintf("Surface: %s  Steps: %d", defaultIfEmpty(card.Surface, "page"), card.Steps))
	source := styleSet.Muted.Render(fmt.Sprintf("Source: %s", defaultIfEmpty(card.Source, "--")))

	progress := styleSet.Muted.Render("Never run")
	switch {
	case card.CompletedAt != nil:
		progress = styleSet.Success.Render(fmt.Sprintf("Completed %s (%d runs)", card.CompletedAt.Local().Format("2006-01-02 15:04"), card.Runs))
	case card.Runs > 0:
		progress = styleSet.Warning.Render(fmt.Sprintf("Started %d times, not completed", card.Runs))
	}

	lines := []string{header, description, meta, source, progress}
	if len(card.Tags) > 0 {
		lines = append(lines, styleSet.Info.Render("Tags: "+strings.Join(card.Tags, ", ")))
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styleSet.Theme.Tokens.Border)).
		Padding(0, 1).
		Width(tourCardWidth).
		MaxWidth(tourCardWidth)

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func truncate(value string, maxLen int) string {
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
