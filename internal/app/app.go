package app

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-wordwrap"

	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/config"
	"github.com/willibrandon/rainbow/internal/logger"
	"github.com/willibrandon/rainbow/internal/ui"
	"github.com/willibrandon/rainbow/internal/ui/components"
	"github.com/willibrandon/rainbow/internal/ui/styles"
)

// menuWidth is the picker's width in cells, border included.
const menuWidth = 36

// Options are per-run overrides of the configured selection.
type Options struct {
	// Row is the initial row index.
	Row int
	// Bird, when set, selects the first row with this display name.
	Bird string
	// ExportDir receives PNG exports.
	ExportDir string
}

// Model represents the main Bubbletea application model
type Model struct {
	config    *config.Config
	opts      Options
	chartOpts chart.Options

	// Set once the dataset has loaded
	state   *State
	loadErr error

	width  int
	height int

	keys ui.KeyMap

	menu       *components.Menu
	barChart   *components.BarChart
	help       *components.HelpText
	statusBar  *components.StatusBar
	debugPanel *components.DebugPanel
	clipboard  *ui.ClipboardWriter

	helpVisible bool
	quitting    bool
	ready       bool
	flashSeq    int
}

// New creates a new application model
func New(cfg *config.Config, opts Options) (*Model, error) {
	chartOpts, err := cfg.ChartOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid chart configuration: %w", err)
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	styles.Apply(styles.ThemeNamed(cfg.UI.Theme))

	keys := ui.DefaultKeyMap()
	statusBar := components.NewStatusBar()
	statusBar.SetLoading(cfg.Dataset.Path)

	chartConfig := components.DefaultBarChartConfig()
	chartConfig.Chart = chartOpts

	return &Model{
		config:     cfg,
		opts:       opts,
		chartOpts:  chartOpts,
		keys:       keys,
		barChart:   components.NewBarChart(chartConfig),
		help:       components.NewHelp(keys),
		statusBar:  statusBar,
		debugPanel: components.NewDebugPanel(),
		clipboard:  ui.NewClipboardWriter(),
	}, nil
}

// Init starts loading the dataset. Everything that depends on it is built
// when DatasetLoadedMsg arrives.
func (m Model) Init() tea.Cmd {
	logger.Info("loading dataset", "path", m.config.Dataset.Path)
	return loadDataset(m.config.Dataset.Path, m.config.LoadOptions())
}

// State returns the application state, or nil before the dataset loads.
func (m Model) State() *State { return m.state }

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case DatasetLoadedMsg:
		table := msg.Table
		selected := ResolveDefaultRow(table, m.opts.Row, m.opts.Bird)
		m.state = NewState(table, selected)

		m.menu = components.NewMenu(table, m.config.SortKey())
		m.menu.Select(selected)
		m.layout()

		row := m.state.SelectedRow()
		m.barChart.SetRow(row)
		m.statusBar.SetDataset(table.Source(), table.Bytes(), table.Len(), msg.Elapsed)
		m.debugPanel.SetDataset(table.Source())
		m.statusBar.SetSelection(row.Index, row.DisplayName())

		logger.Info("dataset loaded",
			"path", table.Source(),
			"rows", table.Len(),
			"size", humanize.Bytes(uint64(table.Bytes())),
			"elapsed", msg.Elapsed,
			"selected", selected,
		)
		return m, nil

	case DatasetFailedMsg:
		m.loadErr = msg.Err
		m.statusBar.SetDataset(msg.Path, 0, 0, 0)
		m.debugPanel.SetDataset(msg.Path)
		m.statusBar.Flash("load failed", true)
		logger.Error("dataset load failed", "path", msg.Path, "error", msg.Err)
		return m, nil

	case ui.SelectionChangedMsg:
		if m.state == nil || !m.state.Select(msg.Row) {
			return m, nil
		}
		row := m.state.SelectedRow()
		m.barChart.SetRow(row)
		m.statusBar.SetSelection(row.Index, row.DisplayName())
		logger.Debug("selection changed", "row", row.Index, "bird", row.DisplayName())
		return m, nil

	case ui.CopyResultMsg:
		if msg.Error != nil {
			logger.Warn("copy failed", "row", msg.Row, "error", msg.Error)
			return m.flash("copy failed: "+msg.Error.Error(), true)
		}
		return m.flash(fmt.Sprintf("copied row %d", msg.Row), false)

	case ui.ExportResultMsg:
		if msg.Error != nil {
			logger.Error("export failed", "path", msg.Path, "error", msg.Error)
			return m.flash("export failed: "+msg.Error.Error(), true)
		}
		return m.flash(fmt.Sprintf("saved %s (%s)", filepath.Base(msg.Path), humanize.Bytes(uint64(msg.Bytes))), false)

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.statusBar.ClearFlash()
		}
		return m, nil
	}

	// Anything else (list spinner and filter ticks) belongs to the menu
	if m.menu != nil {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) flash(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.flashSeq++
	m.statusBar.Flash(text, isErr)
	return m, expireFlash(m.flashSeq)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.debugPanel.IsVisible() {
		var cmd tea.Cmd
		m.debugPanel, cmd = m.debugPanel.Update(msg)
		return m, cmd
	}

	if m.helpVisible {
		if key.Matches(msg, m.keys.Help, m.keys.CloseDialog, m.keys.Quit) {
			m.helpVisible = false
		}
		return m, nil
	}

	// While filtering, keys are text for the menu
	if m.menu != nil && m.menu.Filtering() {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		return m, nil
	case key.Matches(msg, m.keys.Debug):
		m.debugPanel.Toggle()
		return m, nil
	}

	if m.state == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Copy):
		return m, copyRow(m.clipboard, m.state.SelectedRow())
	case key.Matches(msg, m.keys.Export):
		return m, exportPNG(m.chartOpts, m.state.SelectedRow(),
			m.config.Canvas.Width, m.config.Canvas.Height, m.opts.ExportDir)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// layout sizes components from the window, keeping the configured margins.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	w := m.width - 2*m.config.UI.MarginX
	h := m.height - 2*m.config.UI.MarginY

	// header, status bar and hint line
	body := max(h-3, 4)

	m.help.SetSize(m.width, m.height)
	m.debugPanel.SetSize(m.width, m.height)
	m.statusBar.SetSize(w)
	m.barChart.SetSize(w-menuWidth-1, body)
	if m.menu != nil {
		m.menu.SetSize(menuWidth-4, body-2) // border and padding
	}
}

// View renders the application UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	if m.debugPanel.IsVisible() {
		return m.debugPanel.View()
	}
	if m.helpVisible {
		return m.help.View()
	}

	header := styles.TitleStyle.Render("rainbow") +
		styles.MutedStyle.Render(" · seasonal bird abundance")

	var body string
	switch {
	case m.loadErr != nil:
		text := FormatLoadError(m.loadErr, m.config.Dataset.Path)
		body = styles.ErrorDialogStyle.Render(wordwrap.WrapString(text, uint(max(m.width-8, 20))))
	case m.state == nil:
		body = styles.MutedStyle.Render("Loading " + m.config.Dataset.Path + "...")
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.menu.View(), " ", m.barChart.View())
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.statusBar.View(),
		m.help.ShortHelp(),
	)
	return lipgloss.NewStyle().
		Margin(m.config.UI.MarginY, m.config.UI.MarginX).
		Render(view)
}
