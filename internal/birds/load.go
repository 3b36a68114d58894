package birds

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	// ErrNoHeader is returned when a header row is expected but the input is empty.
	ErrNoHeader = errors.New("missing header row")
	// ErrEmptyTable is returned when the input has no data rows.
	ErrEmptyTable = errors.New("table has no rows")
)

// ParseError reports a value cell that is not a number.
type ParseError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: invalid abundance value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadOptions controls how a table is parsed.
type LoadOptions struct {
	// Header skips the first record as column titles.
	Header bool
}

// DefaultLoadOptions matches the published dataset layout.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Header: true}
}

// Load parses a tab separated table from r.
// Rows may have differing lengths. Empty value cells read as zero.
func Load(r io.Reader, opts LoadOptions) (*Table, error) {
	cr := &countingReader{r: r}
	reader := csv.NewReader(cr)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	t := &Table{}
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		if first && opts.Header {
			first = false
			t.header = record
			continue
		}
		first = false

		line, _ := reader.FieldPos(0)
		row, err := parseRow(record, len(t.rows), line)
		if err != nil {
			return nil, err
		}
		t.rows = append(t.rows, row)
	}

	if opts.Header && t.header == nil {
		return nil, ErrNoHeader
	}
	if len(t.rows) == 0 {
		return nil, ErrEmptyTable
	}
	t.bytes = cr.n
	return t, nil
}

func parseRow(record []string, index, line int) (Row, error) {
	row := Row{Index: index, Name: record[0]}
	if len(record) > 1 {
		row.Values = make([]float64, len(record)-1)
	}
	for i, cell := range record[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Row{}, &ParseError{Line: line, Column: i + 2, Value: cell, Err: err}
		}
		row.Values[i] = v
	}
	return row, nil
}

// LoadFile reads the table at path. Files ending in .gz, .zst or .lz4 are
// decompressed transparently.
func LoadFile(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		defer zr.Close()
		r = zr
	case ".lz4":
		r = lz4.NewReader(f)
	}

	t, err := Load(&ctxReader{ctx: ctx, r: r}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.source = path
	return t, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
