package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

type keyMap struct {
	Next    key.Binding
	Dismiss key.Binding
	Restart key.Binding
	Detach  key.Binding
	UpDown  key.Binding
	Page    key.Binding
	Jump    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "next")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Detach:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "detach panel")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Page:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Jump:    key.NewBinding(key.WithKeys("home", "end", "g", "G"), key.WithHelp("home/end", "top/bottom")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Dismiss, k.Restart, k.Detach, k.UpDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Dismiss, k.Restart}, {k.Detach, k.UpDown, k.Page, k.Jump, k.Quit}}
}

func renderHelp(styleSet styles.Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, styleSet.Focus.Render(help.Key)+" "+styleSet.Muted.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}
