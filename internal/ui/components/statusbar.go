package components

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/willibrandon/rainbow/internal/logger"
	"github.com/willibrandon/rainbow/internal/ui/styles"
)

// StatusBar represents the status bar component
type StatusBar struct {
	width int

	source   string
	bytes    int64
	rows     int
	loadTime time.Duration
	loaded   bool
	loading  bool

	selectedRow  int
	selectedName string

	// flash is a transient message such as "copied"
	flash      string
	flashIsErr bool
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	return &StatusBar{selectedRow: -1}
}

// SetSize sets the width of the status bar
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetLoading marks the dataset as being read from source.
func (s *StatusBar) SetLoading(source string) {
	s.source = source
	s.loading = true
	s.loaded = false
}

// SetDataset records the loaded table's vitals.
func (s *StatusBar) SetDataset(source string, bytes int64, rows int, took time.Duration) {
	s.source = source
	s.bytes = bytes
	s.rows = rows
	s.loadTime = took
	s.loaded = true
	s.loading = false
}

// SetSelection sets the highlighted bird.
func (s *StatusBar) SetSelection(row int, name string) {
	s.selectedRow = row
	s.selectedName = name
}

// Flash shows msg until the next call to Flash or ClearFlash.
func (s *StatusBar) Flash(msg string, isErr bool) {
	s.flash = msg
	s.flashIsErr = isErr
}

// ClearFlash removes the transient message.
func (s *StatusBar) ClearFlash() {
	s.flash = ""
}

// View renders the status bar
func (s *StatusBar) View() string {
	var sections []string

	name := filepath.Base(s.source)
	if s.source == "" {
		name = "no dataset"
	}
	switch {
	case s.loading:
		sections = append(sections, styles.WarningStyle.Render("● Loading")+" "+name)
	case s.loaded:
		sections = append(sections,
			styles.SuccessStyle.Render("●")+" "+styles.StatusTitleStyle.Render(name),
			fmt.Sprintf("%d birds", s.rows),
			humanize.Bytes(uint64(s.bytes)),
			"loaded in "+s.loadTime.Round(time.Millisecond).String(),
		)
	default:
		sections = append(sections, styles.ErrorStyle.Render("●")+" "+name)
	}

	if s.selectedRow >= 0 {
		sections = append(sections, fmt.Sprintf("row %d %s", s.selectedRow, s.selectedName))
	}

	// Warning/error counts are only shown in debug mode
	if logger.DebugEnabled() {
		warnCount, errCount := logger.Counts()
		var parts []string
		if warnCount > 0 {
			parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("⚠ %d", warnCount)))
		}
		if errCount > 0 {
			parts = append(parts, styles.ErrorStyle.Render(fmt.Sprintf("✕ %d", errCount)))
		}
		if len(parts) > 0 {
			sections = append(sections, strings.Join(parts, " "))
		}
	}

	if s.flash != "" {
		style := styles.SuccessStyle
		if s.flashIsErr {
			style = styles.ErrorStyle
		}
		sections = append(sections, style.Render(s.flash))
	}

	statusLine := strings.Join(sections, " | ")
	if s.width > 0 {
		statusLine = truncateStyled(statusLine, s.width-2)
		return styles.StatusBarStyle.Width(s.width).Render(statusLine)
	}
	return styles.StatusBarStyle.Render(statusLine)
}
