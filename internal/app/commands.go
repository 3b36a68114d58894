package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/logger"
	"github.com/willibrandon/rainbow/internal/ui"
)

const flashDuration = 3 * time.Second

// loadDataset creates a command that reads the table at path
func loadDataset(path string, opts birds.LoadOptions) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		table, err := birds.LoadFile(context.Background(), path, opts)
		if err != nil {
			return DatasetFailedMsg{Path: path, Err: err}
		}
		return DatasetLoadedMsg{Table: table, Elapsed: time.Since(start)}
	}
}

// copyRow creates a command that puts row on the clipboard as TSV
func copyRow(cw *ui.ClipboardWriter, row birds.Row) tea.Cmd {
	return func() tea.Msg {
		return ui.CopyResultMsg{Row: row.Index, Error: cw.Write(row.TSV())}
	}
}

// exportPNG creates a command that renders row to a PNG in dir
func exportPNG(opts chart.Options, row birds.Row, width, height int, dir string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, ExportFilename(row))
		raster := chart.NewRaster(width, height)
		chart.NewRenderer(opts).Render(raster, row)
		if err := raster.SavePNG(path); err != nil {
			return ui.ExportResultMsg{Path: path, Error: err}
		}
		var size int64
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}
		logger.Info("chart exported", "path", path, "row", row.Index, "bytes", size)
		return ui.ExportResultMsg{Path: path, Bytes: size}
	}
}

// ExportFilename returns a file name for row's chart, e.g. american-robin.png.
func ExportFilename(row birds.Row) string {
	name := strings.ToLower(strings.TrimSpace(row.DisplayName()))
	var b strings.Builder
	dash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = fmt.Sprintf("row-%d", row.Index)
	}
	return slug + ".png"
}

// expireFlash creates a command that clears flash seq after flashDuration
func expireFlash(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
