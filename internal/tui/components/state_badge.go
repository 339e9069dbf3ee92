package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/showcase/internal/showcase"
	"github.com/opencode-ai/showcase/internal/tui/styles"
)

// RenderTourStateBadge renders a sequencer state with icon and color.
func RenderTourStateBadge(styleSet styles.Styles, state showcase.State) string {
	icon, label, style := stateDescriptor(styleSet, state)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

// TourStateLabel returns the plain badge text for a state.
func TourStateLabel(state showcase.State) string {
	icon, label, _ := stateDescriptor(styles.Styles{}, state)
	return fmt.Sprintf("%s %s", icon, label)
}

func stateDescriptor(styleSet styles.Styles, state showcase.State) (string, string, lipgloss.Style) {
	switch state {
	case showcase.StateShowing:
		return ">", "Showing", styleSet.Accent
	case showcase.StateScrolling:
		return "~", "Scrolling", styleSet.Info
	case showcase.StateFinished:
		return "OK", "Finished", styleSet.Success
	case showcase.StateNotStarted:
		return "-", "Not started", styleSet.Muted
	default:
		return "-", normalizeStateLabel(state), styleSet.Muted
	}
}

func normalizeStateLabel(state showcase.State) string {
	value := strings.TrimSpace(strings.ReplaceAll(string(state), "_", " "))
	if value == "" {
		return "Unknown"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
