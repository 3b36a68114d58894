package styles

import "github.com/charmbracelet/lipgloss"

// Common border styles
var (
	BorderNormal  = lipgloss.NormalBorder()
	BorderRounded = lipgloss.RoundedBorder()
)

// Panel styles
var (
	// MenuPanelStyle wraps the bird picker
	MenuPanelStyle lipgloss.Style

	// ChartPanelStyle wraps the bar chart
	ChartPanelStyle lipgloss.Style

	// ChartTitleStyle is for the selected bird's name
	ChartTitleStyle lipgloss.Style

	// ChartSubtitleStyle is for the scientific name
	ChartSubtitleStyle lipgloss.Style
)

// Status bar styles
var (
	// StatusBarStyle wraps the status bar
	StatusBarStyle lipgloss.Style

	// StatusTitleStyle is for the dataset name
	StatusTitleStyle lipgloss.Style
)

// Message styles
var (
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Help overlay styles
var (
	// HelpStyle is for the one-line hint under the chart
	HelpStyle lipgloss.Style

	// HelpDialogStyle is for the help dialog box
	HelpDialogStyle lipgloss.Style

	// HelpKeyStyle is for keyboard shortcuts
	HelpKeyStyle lipgloss.Style

	// HelpDescStyle is for shortcut descriptions
	HelpDescStyle lipgloss.Style
)

// Common UI styles
var (
	TitleStyle  lipgloss.Style
	AccentStyle lipgloss.Style
	MutedStyle  lipgloss.Style

	// HeaderStyle is for section headers
	HeaderStyle lipgloss.Style

	// SelectedStyle is for the highlighted menu entry
	SelectedStyle lipgloss.Style

	// ErrorDialogStyle frames load failures
	ErrorDialogStyle lipgloss.Style
)

func init() {
	rebuild()
}

func rebuild() {
	MenuPanelStyle = lipgloss.NewStyle().
		Border(BorderRounded).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ChartPanelStyle = lipgloss.NewStyle().
		Border(BorderNormal).
		BorderForeground(ColorBorder)
	ChartTitleStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	ChartSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)
	StatusTitleStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	HelpDialogStyle = lipgloss.NewStyle().
		Border(BorderRounded).
		BorderForeground(ColorAccent).
		Padding(1, 2)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Width(16)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorText)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		MarginTop(1)
	SelectedStyle = lipgloss.NewStyle().
		Foreground(ColorSelectedFg).
		Background(ColorSelectedBg)
	ErrorDialogStyle = lipgloss.NewStyle().
		Border(BorderRounded).
		BorderForeground(ColorError).
		Padding(1, 2)
}
