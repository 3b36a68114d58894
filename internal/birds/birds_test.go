package birds

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/ninesprings.tsv"

func loadFixture(t *testing.T) *Table {
	t.Helper()
	table, err := LoadFile(context.Background(), fixture, DefaultLoadOptions())
	require.NoError(t, err)
	return table
}

func TestLoadFixture(t *testing.T) {
	table := loadFixture(t)

	assert.Equal(t, 20, table.Len())
	assert.Len(t, table.Header(), 49)
	assert.Equal(t, fixture, table.Source())
	assert.Positive(t, table.Bytes())

	robin, ok := table.Row(9)
	require.True(t, ok)
	assert.Equal(t, "American Robin", robin.DisplayName())
	assert.Equal(t, 49, robin.Cells())
	assert.Equal(t, 9, robin.Index)

	def, ok := table.Row(DefaultRowIndex)
	require.True(t, ok)
	assert.Equal(t, "Red-winged Blackbird", def.DisplayName())
}

func TestLoadRagged(t *testing.T) {
	in := "name\ta\tb\tc\n" +
		"Mallard\t0.1\t0.2\n" +
		"Wild Turkey\t0.3\t\t0.5\t0.9\n"

	table, err := Load(strings.NewReader(in), DefaultLoadOptions())
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	r0, _ := table.Row(0)
	assert.Equal(t, []float64{0.1, 0.2}, r0.Values)
	r1, _ := table.Row(1)
	assert.Equal(t, []float64{0.3, 0, 0.5, 0.9}, r1.Values)
	assert.Equal(t, 0.5, r1.Value(3))
	assert.Zero(t, r1.Value(0), "cell 0 is the name")
	assert.Zero(t, r1.Value(99))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    LoadOptions
		wantErr error
	}{
		{name: "empty with header", input: "", opts: LoadOptions{Header: true}, wantErr: ErrNoHeader},
		{name: "header only", input: "name\tjan-1\n", opts: LoadOptions{Header: true}, wantErr: ErrEmptyTable},
		{name: "empty without header", input: "", opts: LoadOptions{}, wantErr: ErrEmptyTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsNonNumericCell(t *testing.T) {
	in := "name\tjan-1\tjan-2\nMallard\t0.1\tlots\n"

	_, err := Load(strings.NewReader(in), DefaultLoadOptions())
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 3, perr.Column)
	assert.Equal(t, "lots", perr.Value)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.tsv"), DefaultLoadOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFile(ctx, fixture, DefaultLoadOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFileCompressed(t *testing.T) {
	raw, err := os.ReadFile(fixture)
	require.NoError(t, err)

	writers := map[string]func(io.Writer) (io.WriteCloser, error){
		".gz": func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		".zst": func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		},
		".lz4": func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil },
	}

	for ext, newWriter := range writers {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ninesprings.tsv"+ext)
			f, err := os.Create(path)
			require.NoError(t, err)
			w, err := newWriter(f)
			require.NoError(t, err)
			_, err = w.Write(raw)
			require.NoError(t, err)
			require.NoError(t, w.Close())
			require.NoError(t, f.Close())

			table, err := LoadFile(context.Background(), path, DefaultLoadOptions())
			require.NoError(t, err)
			assert.Equal(t, 20, table.Len())
			assert.Equal(t, int64(len(raw)), table.Bytes())
		})
	}
}

func TestRowsAreCopies(t *testing.T) {
	table := loadFixture(t)

	r, _ := table.Row(0)
	original := r.Values[0]
	r.Values[0] = 42

	again, _ := table.Row(0)
	assert.Equal(t, original, again.Values[0])
}

func TestFind(t *testing.T) {
	table := loadFixture(t)

	r, ok := table.Find("blue jay")
	require.True(t, ok)
	assert.Equal(t, 15, r.Index)

	_, ok = table.Find("Dodo")
	assert.False(t, ok)
}

func TestResolveIndex(t *testing.T) {
	table := loadFixture(t)

	idx, ok := table.ResolveIndex(DefaultRowIndex)
	assert.True(t, ok)
	assert.Equal(t, DefaultRowIndex, idx)

	idx, ok = table.ResolveIndex(20)
	assert.False(t, ok)
	assert.Zero(t, idx)

	var empty *Table
	_, ok = empty.ResolveIndex(0)
	assert.False(t, ok)
}

func TestRowTSV(t *testing.T) {
	r := Row{Name: "Mallard<em>Anas platyrhynchos</em>", Values: []float64{0.25, 1, 0}}
	assert.Equal(t, "Mallard<em>Anas platyrhynchos</em>\t0.25\t1\t0", r.TSV())
}

func TestMonth(t *testing.T) {
	assert.Equal(t, 0, Month(1))
	assert.Equal(t, 0, Month(3))
	assert.Equal(t, 1, Month(4))
	assert.Equal(t, 11, Month(47))
}
