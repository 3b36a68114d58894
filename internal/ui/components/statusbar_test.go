package components

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/willibrandon/rainbow/internal/logger"
	"github.com/willibrandon/rainbow/internal/ui"
)

func TestStatusBar_Loading(t *testing.T) {
	s := NewStatusBar()
	s.SetLoading("/data/ninesprings.tsv")

	if got := s.View(); !strings.Contains(got, "Loading") || !strings.Contains(got, "ninesprings.tsv") {
		t.Errorf("Loading status should name the file, got: %s", got)
	}
}

func TestStatusBar_Loaded(t *testing.T) {
	s := NewStatusBar()
	s.SetDataset("/data/ninesprings.tsv", 7143, 20, 12*time.Millisecond)
	s.SetSelection(14, "Red-winged Blackbird")

	got := s.View()
	for _, want := range []string{"20 birds", "7.1 kB", "12ms", "row 14 Red-winged Blackbird"} {
		if !strings.Contains(got, want) {
			t.Errorf("Status bar should contain %q, got: %s", want, got)
		}
	}
}

func TestStatusBar_Flash(t *testing.T) {
	s := NewStatusBar()
	s.Flash("copied row 3", false)
	if !strings.Contains(s.View(), "copied row 3") {
		t.Errorf("Flash message missing")
	}

	s.ClearFlash()
	if strings.Contains(s.View(), "copied") {
		t.Errorf("Flash should be cleared")
	}
}

func TestStatusBar_DebugCounts(t *testing.T) {
	logger.InitWriter(logger.LevelDebug, io.Discard)
	logger.Warn("slow")

	s := NewStatusBar()
	if !strings.Contains(s.View(), "⚠ 1") {
		t.Errorf("Debug mode should show warning count, got: %s", s.View())
	}
}

func TestStatusBar_Width(t *testing.T) {
	s := NewStatusBar()
	s.SetDataset("/data/ninesprings.tsv", 7143, 20, time.Millisecond)
	s.SetSize(30)

	for _, line := range strings.Split(s.View(), "\n") {
		if w := len([]rune(line)); w > 30 {
			t.Errorf("Line wider than 30 cells: %q", line)
		}
	}
}

func TestHelp_ListsBindings(t *testing.T) {
	h := NewHelp(ui.DefaultKeyMap())

	view := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "copy row", "save png", "debug panel"} {
		if !strings.Contains(view, want) {
			t.Errorf("Help should contain %q", want)
		}
	}
	if !strings.Contains(h.ShortHelp(), "q quit") {
		t.Errorf("Short help should mention quit, got: %s", h.ShortHelp())
	}
}
