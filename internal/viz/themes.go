package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme for terminal output.
type Theme struct {
	Name     string
	Title    lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Selected lipgloss.Color
	Warning  lipgloss.Color
}

var (
	ThemeSolar = Theme{
		Name:     "solar",
		Title:    lipgloss.Color("#ffcc33"),
		Accent:   lipgloss.Color("#ff8800"),
		Text:     lipgloss.Color("#f5f0e6"),
		Muted:    lipgloss.Color("#7a7266"),
		Border:   lipgloss.Color("#4a3f2f"),
		Selected: lipgloss.Color("#66ccff"),
		Warning:  lipgloss.Color("#ff5544"),
	}

	ThemeRetro = Theme{
		Name:     "retro",
		Title:    lipgloss.Color("#00ff00"),
		Accent:   lipgloss.Color("#88ff88"),
		Text:     lipgloss.Color("#00dd00"),
		Muted:    lipgloss.Color("#005500"),
		Border:   lipgloss.Color("#003300"),
		Selected: lipgloss.Color("#ccffcc"),
		Warning:  lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Title:    lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#dddddd"),
		Muted:    lipgloss.Color("#888888"),
		Border:   lipgloss.Color("#444444"),
		Selected: lipgloss.Color("#ffffff"),
		Warning:  lipgloss.Color("#ffaa00"),
	}

	ThemeNebula = Theme{
		Name:     "nebula",
		Title:    lipgloss.Color("#ff9ff3"),
		Accent:   lipgloss.Color("#00d2d3"),
		Text:     lipgloss.Color("#f0e6ff"),
		Muted:    lipgloss.Color("#6c5b7b"),
		Border:   lipgloss.Color("#3b2f4a"),
		Selected: lipgloss.Color("#feca57"),
		Warning:  lipgloss.Color("#ff4757"),
	}

	// Themes lists every built-in theme; the first is the default.
	Themes = []Theme{
		ThemeSolar,
		ThemeRetro,
		ThemeMinimal,
		ThemeNebula,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
