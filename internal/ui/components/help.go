package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/rainbow/internal/ui"
	"github.com/willibrandon/rainbow/internal/ui/styles"
)

// HelpText represents the help component
type HelpText struct {
	keys   ui.KeyMap
	width  int
	height int
}

// NewHelp creates a help component listing keys.
func NewHelp(keys ui.KeyMap) *HelpText {
	return &HelpText{keys: keys}
}

// SetSize sets the size of the help component
func (h *HelpText) SetSize(width, height int) {
	h.width = width
	h.height = height
}

var helpSections = []string{"General", "Menu", "Menu", "Chart"}

// View renders the help screen
func (h *HelpText) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	last := ""
	for i, group := range h.keys.FullHelp() {
		if section := helpSections[min(i, len(helpSections)-1)]; section != last {
			b.WriteString(styles.HeaderStyle.Render(section))
			b.WriteString("\n")
			last = section
		}
		for _, binding := range group {
			b.WriteString(h.formatShortcut(binding))
		}
	}

	dialog := styles.HelpDialogStyle.Render(strings.TrimRight(b.String(), "\n"))
	if h.width > 0 {
		dialog = lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}

// formatShortcut formats a keyboard shortcut with its description
func (h *HelpText) formatShortcut(b key.Binding) string {
	help := b.Help()
	return styles.HelpKeyStyle.Render(help.Key) + styles.HelpDescStyle.Render(help.Desc) + "\n"
}

// ShortHelp returns a brief help text for the bottom of the screen
func (h *HelpText) ShortHelp() string {
	parts := make([]string, 0, len(h.keys.ShortHelp()))
	for _, b := range h.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return styles.HelpStyle.Render(strings.Join(parts, " • "))
}
