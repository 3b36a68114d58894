// Package styles provides centralized Lipgloss styling for the rainbow UI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// UI element colors
	ColorBorder  = lipgloss.Color("240") // Gray - all borders
	ColorAccent  = lipgloss.Color("6")   // Cyan - titles, highlights
	ColorMuted   = lipgloss.Color("8")   // Dark gray - secondary text
	ColorText    = lipgloss.Color("7")
	ColorSuccess = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorError   = lipgloss.Color("9")

	// Selection colors
	ColorSelectedFg = lipgloss.Color("229") // Light yellow text
	ColorSelectedBg = lipgloss.Color("57")  // Purple background
)

// Theme holds the colors that differ between dark and light terminals.
type Theme struct {
	Name        string
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Accent      lipgloss.Color
	Border      lipgloss.Color
	SyntaxStyle string
}

var (
	DarkTheme = Theme{
		Name:        "dark",
		Text:        lipgloss.Color("7"),
		Muted:       lipgloss.Color("8"),
		Accent:      lipgloss.Color("6"),
		Border:      lipgloss.Color("240"),
		SyntaxStyle: "rainbow",
	}
	LightTheme = Theme{
		Name:        "light",
		Text:        lipgloss.Color("0"),
		Muted:       lipgloss.Color("244"),
		Accent:      lipgloss.Color("25"),
		Border:      lipgloss.Color("250"),
		SyntaxStyle: "rainbow-light",
	}
)

// ThemeNamed returns the theme called name, defaulting to DarkTheme.
func ThemeNamed(name string) Theme {
	if name == LightTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// Apply switches the package colors and rebuilds dependent styles.
func Apply(t Theme) {
	ColorText = t.Text
	ColorMuted = t.Muted
	ColorAccent = t.Accent
	ColorBorder = t.Border
	rebuild()
}
