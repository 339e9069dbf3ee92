// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🧭").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "showcase run welcome").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	// Subtitle
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// Common empty states for reuse across views.

// EmptyTours returns an empty state for when no tours are found.
func EmptyTours() EmptyState {
	return EmptyState{
		Icon:     "🧭",
		Title:    "No tours found",
		Subtitle: "Tours are YAML files in .showcase/tours or the user config directory.",
		Suggestions: []Suggestion{
			{Command: "showcase tours validate <file>", Description: "check a tour file"},
			{Command: "showcase run welcome", Description: "run the built-in tour"},
		},
	}
}

// EmptyProgress returns an empty state for when no tour has been run.
func EmptyProgress() EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    "No tours run yet",
		Subtitle: "Progress is recorded each time a tour starts.",
		Suggestions: []Suggestion{
			{Command: "showcase tours list", Description: "see available tours"},
		},
	}
}

// DetachedSection returns the placeholder shown while the document panel is
// detached from the screen.
func DetachedSection() EmptyState {
	return EmptyState{
		Title:    "Document panel detached",
		Subtitle: "Press tab to attach it again.",
	}
}

// TourFinished returns the placeholder shown once a tour is over.
func TourFinished(completed bool) EmptyState {
	title := "Tour dismissed"
	if completed {
		title = "Tour complete"
	}
	return EmptyState{
		Icon:  "✅",
		Title: title,
		Suggestions: []Suggestion{
			{Command: "r", Description: "run it again"},
			{Command: "q", Description: "quit"},
		},
	}
}
