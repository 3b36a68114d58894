package components

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/rainbow/internal/logger"
)

var (
	debugPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	debugTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	debugWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	debugErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	debugInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// DebugPanel is the overlay listing the warnings and errors captured while
// loading the dataset and browsing birds, newest last.
type DebugPanel struct {
	viewport viewport.Model
	dataset  string
	width    int
	height   int
	visible  bool
}

func NewDebugPanel() *DebugPanel {
	return &DebugPanel{viewport: viewport.New(56, 6)}
}

// panelSize is 80% by 60% of the terminal, never smaller than 60x10.
func (d *DebugPanel) panelSize() (int, int) {
	return max(d.width*80/100, 60), max(d.height*60/100, 10)
}

func (d *DebugPanel) SetSize(width, height int) {
	d.width = width
	d.height = height

	w, h := d.panelSize()
	d.viewport = viewport.New(w-4, h-4) // border and padding
	if d.visible {
		d.refresh()
	}
}

// SetDataset names the data file the captured entries relate to.
func (d *DebugPanel) SetDataset(path string) {
	d.dataset = path
}

func (d *DebugPanel) Toggle() {
	d.visible = !d.visible
	if d.visible {
		d.refresh()
	}
}

func (d *DebugPanel) Hide()           { d.visible = false }
func (d *DebugPanel) IsVisible() bool { return d.visible }

// refresh rebuilds the viewport from the logger's captured entries and
// scrolls to the newest one.
func (d *DebugPanel) refresh() {
	var lines []string
	for _, e := range logger.Entries() {
		style := debugInfoStyle
		switch {
		case e.Level >= slog.LevelError:
			style = debugErrorStyle
		case e.Level >= slog.LevelWarn:
			style = debugWarnStyle
		}
		lines = append(lines, style.Render(e.Format()))
	}
	if len(lines) == 0 {
		empty := "Nothing to report"
		if d.dataset != "" {
			empty += " for " + filepath.Base(d.dataset)
		}
		lines = append(lines, debugInfoStyle.Render(empty))
	}

	d.viewport.SetContent(strings.Join(lines, "\n"))
	d.viewport.GotoBottom()
}

// Update handles keys while the panel is open; closed, it ignores everything.
func (d *DebugPanel) Update(msg tea.Msg) (*DebugPanel, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "D", "q":
			d.Hide()
			return d, nil
		case "c":
			logger.ClearCounts()
			d.refresh()
			return d, nil
		case "r":
			d.refresh()
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *DebugPanel) View() string {
	if !d.visible {
		return ""
	}

	warnCount, errCount := logger.Counts()
	header := debugTitleStyle.Render("Log") +
		debugInfoStyle.Render(fmt.Sprintf(" (%d warnings, %d errors)", warnCount, errCount))
	if d.dataset != "" {
		header += debugInfoStyle.Render("  data " + d.dataset)
	}
	if logger.Path != "" {
		header += debugInfoStyle.Render("  file " + logger.Path)
	}
	help := debugInfoStyle.Render(" [D/Esc] close  [c] clear counts  [r] refresh  [j/k] scroll")

	w, _ := d.panelSize()
	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Repeat("─", w-4),
		d.viewport.View(),
		strings.Repeat("─", w-4),
		help,
	)

	return lipgloss.Place(d.width, d.height,
		lipgloss.Center, lipgloss.Center,
		debugPanelStyle.Width(w).Render(content),
	)
}
