// Package birds loads and orders weekly bird-abundance tables.
package birds

import (
	"slices"
	"strings"
)

// DefaultRowIndex is the row shown before the user picks a bird.
const DefaultRowIndex = 14

// WeeksPerMonth groups value columns into month buckets.
const WeeksPerMonth = 4

// Row is one bird: its raw name and the abundance observations that follow it.
// Rows are read-only once a Table has been loaded.
type Row struct {
	// Index is the row's position in load order. Menus bind to it.
	Index int
	// Name is the raw first cell, markup included.
	Name string
	// Values holds cells 1..n as numbers.
	Values []float64
}

// Cells returns the number of cells in the row, counting the name.
func (r Row) Cells() int {
	return len(r.Values) + 1
}

// Value returns cell c, where cell 0 is the name and cell 1 is the first
// observation. Out-of-range cells read as zero.
func (r Row) Value(c int) float64 {
	if c < 1 || c > len(r.Values) {
		return 0
	}
	return r.Values[c-1]
}

// DisplayName returns the name with markup removed.
func (r Row) DisplayName() string {
	return CleanName(r.Name)
}

// TSV renders the row back into a tab separated line.
func (r Row) TSV() string {
	var b strings.Builder
	b.WriteString(r.Name)
	for _, v := range r.Values {
		b.WriteByte('\t')
		b.WriteString(formatValue(v))
	}
	return b.String()
}

// Table is an immutable, ordered set of rows.
type Table struct {
	header []string
	rows   []Row
	source string
	bytes  int64
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the row at index i.
func (t *Table) Row(i int) (Row, bool) {
	if t == nil || i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	r := t.rows[i]
	r.Values = slices.Clone(r.Values)
	return r, true
}

// Rows returns a copy of every row in load order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i], _ = t.Row(i)
	}
	return out
}

// Header returns the column titles, or nil for headerless tables.
func (t *Table) Header() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.header)
}

// Source is the path the table was read from, if any.
func (t *Table) Source() string { return t.source }

// Bytes is the number of bytes consumed from the source.
func (t *Table) Bytes() int64 { return t.bytes }

// Find returns the first row whose display name equals name, ignoring case.
func (t *Table) Find(name string) (Row, bool) {
	if t == nil {
		return Row{}, false
	}
	want := strings.TrimSpace(name)
	for i, r := range t.rows {
		if strings.EqualFold(r.DisplayName(), want) {
			return t.Row(i)
		}
	}
	return Row{}, false
}

// ResolveIndex returns idx when it addresses a row, otherwise 0.
// The second result reports whether idx was usable.
func (t *Table) ResolveIndex(idx int) (int, bool) {
	if idx >= 0 && idx < t.Len() {
		return idx, true
	}
	return 0, false
}

// Month returns the month bucket for value cell c.
func Month(c int) int {
	return c / WeeksPerMonth
}
