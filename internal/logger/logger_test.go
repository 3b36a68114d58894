package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(LevelInfo, &buf)

	Debug("hidden")
	Info("dataset loaded", "rows", 20)
	Warn("default row out of range", "row", 99)
	Error("render failed")

	warn, errs := Counts()
	assert.Equal(t, 1, warn)
	assert.Equal(t, 1, errs)

	entries := Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "default row out of range", entries[0].Message)
	assert.Equal(t, "row=99", entries[0].Attrs)
	assert.Equal(t, slog.LevelError, entries[1].Level)

	ClearCounts()
	warn, errs = Counts()
	assert.Zero(t, warn)
	assert.Zero(t, errs)
	assert.Len(t, Entries(), 2, "clearing counters keeps entries")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "debug record must be filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, Session, rec["session"])
	assert.Equal(t, float64(20), rec["rows"])
}

func TestRingOverwritesOldest(t *testing.T) {
	r := newRecentEntries(3)
	for i := 0; i < 5; i++ {
		r.push(Entry{Level: slog.LevelWarn, Message: string(rune('a' + i))})
	}

	got := r.snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Message)
	assert.Equal(t, "e", got[2].Message)

	warn, _ := r.counts()
	assert.Equal(t, 5, warn)
}

func TestEntryFormat(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)
	e := Entry{Time: ts, Level: slog.LevelWarn, Message: "slow load", Attrs: "ms=900"}
	assert.Equal(t, "09:30:15 WARN  slow load ms=900", e.Format())

	e = Entry{Time: ts, Level: slog.LevelError, Message: "boom"}
	assert.Equal(t, "09:30:15 ERROR boom", e.Format())
}
