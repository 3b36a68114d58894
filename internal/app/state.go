package app

import (
	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/logger"
)

// State is the data the application works on: the loaded table, which is
// never modified, and the selected row. The controller owns it; the menu
// and chart only ever see rows copied out of it.
type State struct {
	table    *birds.Table
	selected int
}

// NewState wraps table with selected as the initial row.
func NewState(table *birds.Table, selected int) *State {
	idx, _ := table.ResolveIndex(selected)
	return &State{table: table, selected: idx}
}

// Table returns the loaded table.
func (s *State) Table() *birds.Table { return s.table }

// Selected returns the selected row index.
func (s *State) Selected() int { return s.selected }

// SelectedRow returns a copy of the selected row.
func (s *State) SelectedRow() birds.Row {
	row, _ := s.table.Row(s.selected)
	return row
}

// Select changes the selection. It reports false, leaving the selection
// alone, if idx is not a row or is already selected.
func (s *State) Select(idx int) bool {
	if idx == s.selected {
		return false
	}
	if _, ok := s.table.Row(idx); !ok {
		return false
	}
	s.selected = idx
	return true
}

// ResolveDefaultRow picks the initial row. A bird name, when given and
// found, wins over row. A row outside the table falls back to 0.
func ResolveDefaultRow(table *birds.Table, row int, bird string) int {
	if bird != "" {
		if r, ok := table.Find(bird); ok {
			return r.Index
		}
		logger.Warn("bird not found, using default row", "bird", bird, "row", row)
	}

	idx, ok := table.ResolveIndex(row)
	if !ok {
		logger.Warn("default row out of range, using first row", "row", row, "rows", table.Len())
	}
	return idx
}
