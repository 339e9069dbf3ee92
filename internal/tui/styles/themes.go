package styles

// DefaultTheme is tuned for dark terminals. The dimmed layer keeps enough
// contrast that covered text stays legible behind the spotlight.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Text:      "#E4E8EE",
		TextMuted: "#8A94A6",
		Border:    "#2B3545",
		Accent:    "#E0A458",
		Focus:     "#F2C572",
		Success:   "#6CC28A",
		Warning:   "#E0A458",
		Error:     "#E5656B",
		Info:      "#6FA8DC",
		Dim:       "#444C5A",
		Spotlight: "#243044",
		Caption:   "#37445E",
	},
}

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Text:      "#FFFFFF",
		TextMuted: "#C8C8C8",
		Border:    "#FFFFFF",
		Accent:    "#00B4FF",
		Focus:     "#FFE000",
		Success:   "#00FF66",
		Warning:   "#FFB000",
		Error:     "#FF3B3B",
		Info:      "#66D9FF",
		Dim:       "#5A5A5A",
		Spotlight: "#262600",
		Caption:   "#00406E",
	},
}

// LightTheme is for terminals with a light background.
var LightTheme = Theme{
	Name: "light",
	Tokens: ThemeTokens{
		Text:      "#1E2430",
		TextMuted: "#5E6878",
		Border:    "#C3CAD6",
		Accent:    "#B5651D",
		Focus:     "#9C4A00",
		Success:   "#2E7D32",
		Warning:   "#B5651D",
		Error:     "#C62828",
		Info:      "#1565C0",
		Dim:       "#B8BEC8",
		Spotlight: "#FFF3D6",
		Caption:   "#E3EAF5",
	},
}
