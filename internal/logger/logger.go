package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is a captured WARN or ERROR record shown in the debug panel.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string
}

// recentEntries keeps the last N captured entries and running level counters.
type recentEntries struct {
	mu     sync.RWMutex
	ring   []Entry
	next   int
	filled int

	warns  int
	errors int
}

func newRecentEntries(capacity int) *recentEntries {
	return &recentEntries{ring: make([]Entry, capacity)}
}

func (r *recentEntries) push(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ring[r.next] = e
	r.next = (r.next + 1) % len(r.ring)
	if r.filled < len(r.ring) {
		r.filled++
	}

	switch {
	case e.Level >= slog.LevelError:
		r.errors++
	case e.Level >= slog.LevelWarn:
		r.warns++
	}
}

func (r *recentEntries) snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, r.filled)
	size := len(r.ring)
	for i := range out {
		out[i] = r.ring[(r.next-r.filled+i+size)%size]
	}
	return out
}

func (r *recentEntries) counts() (warn, err int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.warns, r.errors
}

func (r *recentEntries) resetCounts() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns, r.errors = 0, 0
}

// captureHandler forwards records to inner and copies WARN+ into the ring.
type captureHandler struct {
	inner  slog.Handler
	recent *recentEntries
	attrs  []slog.Attr
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		var attrs string
		r.Attrs(func(a slog.Attr) bool {
			if attrs != "" {
				attrs += " "
			}
			attrs += a.String()
			return true
		})
		h.recent.push(Entry{
			Time:    r.Time,
			Level:   r.Level,
			Message: r.Message,
			Attrs:   attrs,
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{
		inner:  h.inner.WithAttrs(attrs),
		recent: h.recent,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{
		inner:  h.inner.WithGroup(name),
		recent: h.recent,
		attrs:  h.attrs,
	}
}

var (
	// Log is the process-wide structured logger.
	Log *slog.Logger
	// Path is the file the logger writes to.
	Path string
	// Session identifies this process in the log file.
	Session string

	rotator *lumberjack.Logger
	recent  *recentEntries
	debug   bool
)

// Level selects the minimum severity written to the log file.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultPath returns ~/.config/rainbow/rainbow.log, creating the directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	dir := filepath.Join(home, ".config", "rainbow")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rainbow.log")
}

// Init installs the global logger. An empty path selects DefaultPath.
func Init(level Level, path string) {
	if path == "" {
		path = DefaultPath()
	}
	Path = path
	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	install(level, rotator)
}

// InitWriter installs the global logger on an arbitrary writer. Used by tests.
func InitWriter(level Level, w io.Writer) {
	Path = ""
	rotator = nil
	install(level, w)
}

func install(level Level, w io.Writer) {
	debug = level == LevelDebug
	recent = newRecentEntries(100)
	Session = uuid.NewString()

	handler := &captureHandler{
		inner:  slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slog()}),
		recent: recent,
	}
	Log = slog.New(handler).With("session", Session)
	slog.SetDefault(Log)
}

// Close flushes and closes the log file.
func Close() {
	if rotator != nil {
		_ = rotator.Close()
	}
}

func get() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a child logger carrying args.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}

// Counts returns warnings and errors logged since the last ClearCounts.
func Counts() (warn, err int) {
	if recent == nil {
		return 0, 0
	}
	return recent.counts()
}

func ClearCounts() {
	if recent != nil {
		recent.resetCounts()
	}
}

// Entries returns captured entries, oldest first.
func Entries() []Entry {
	if recent == nil {
		return nil
	}
	return recent.snapshot()
}

func DebugEnabled() bool {
	return debug
}

// Format renders the entry as a single debug panel line.
func (e Entry) Format() string {
	level := "INFO"
	switch {
	case e.Level >= slog.LevelError:
		level = "ERROR"
	case e.Level >= slog.LevelWarn:
		level = "WARN"
	case e.Level < slog.LevelInfo:
		level = "DEBUG"
	}
	line := fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), level, e.Message)
	if e.Attrs != "" {
		line += " " + e.Attrs
	}
	return line
}
