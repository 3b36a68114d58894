package components

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/rainbow/internal/logger"
)

func TestDebugPanel_HiddenByDefault(t *testing.T) {
	d := NewDebugPanel()
	d.SetSize(100, 40)
	if d.IsVisible() || d.View() != "" {
		t.Errorf("New panel should render nothing until toggled")
	}
}

func TestDebugPanel_ShowsCapturedWarnings(t *testing.T) {
	logger.InitWriter(logger.LevelInfo, io.Discard)
	logger.Warn("bird not found, using default row", "bird", "Dodo")

	d := NewDebugPanel()
	d.SetSize(100, 40)
	d.SetDataset("/data/ninesprings.tsv")
	d.Toggle()

	got := d.View()
	for _, want := range []string{"1 warnings", "bird not found", "bird=Dodo", "data /data/ninesprings.tsv"} {
		if !strings.Contains(got, want) {
			t.Errorf("Panel should contain %q, got: %s", want, got)
		}
	}
}

func TestDebugPanel_EmptyNamesDataset(t *testing.T) {
	logger.InitWriter(logger.LevelInfo, io.Discard)

	d := NewDebugPanel()
	d.SetSize(100, 40)
	d.SetDataset("/data/ninesprings.tsv")
	d.Toggle()

	if got := d.View(); !strings.Contains(got, "Nothing to report for ninesprings.tsv") {
		t.Errorf("Empty panel should name the data file, got: %s", got)
	}
}

func TestDebugPanel_KeysCloseAndClear(t *testing.T) {
	logger.InitWriter(logger.LevelInfo, io.Discard)
	logger.Error("dataset load failed")

	d := NewDebugPanel()
	d.SetSize(100, 40)
	d.Toggle()

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if _, errs := logger.Counts(); errs != 0 {
		t.Errorf("c should clear counts, still %d errors", errs)
	}
	if !strings.Contains(d.View(), "dataset load failed") {
		t.Errorf("Clearing counts should keep entries")
	}

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.IsVisible() {
		t.Errorf("Esc should close the panel")
	}
}
