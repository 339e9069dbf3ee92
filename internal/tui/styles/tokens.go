package styles

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Text      string
	TextMuted string
	Border    string
	Accent    string
	Focus     string
	Success   string
	Warning   string
	Error     string
	Info      string
	// Dim is the foreground of content covered by a tour overlay.
	Dim string
	// Spotlight is the background of the highlighted cutout.
	Spotlight string
	// Caption is the background of the step caption box.
	Caption string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	DefaultTheme.Name:      DefaultTheme,
	HighContrastTheme.Name: HighContrastTheme,
	LightTheme.Name:        LightTheme,
}

// ThemeByName returns the named theme, or the default theme.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}
