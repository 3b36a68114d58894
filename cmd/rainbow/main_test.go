package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/ui/components"
)

func fixtureRow(t *testing.T, idx int) (*birds.Table, birds.Row) {
	t.Helper()
	table, err := birds.LoadFile(context.Background(), "../../internal/birds/testdata/ninesprings.tsv", birds.DefaultLoadOptions())
	require.NoError(t, err)
	row, ok := table.Row(idx)
	require.True(t, ok)
	return table, row
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		m    int
		want string
	}{
		{0, "Jan"},
		{11, "Dec"},
		{12, "M13"},
	}
	for _, tt := range tests {
		if got := monthName(tt.m); got != tt.want {
			t.Errorf("monthName(%d) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestWeekCellsSkipsNameAndLastCell(t *testing.T) {
	row := birds.Row{Values: []float64{0.1, 0.2, 0.3, 0.4}}
	assert.Equal(t, []int{1, 2, 3}, weekCells(row))
	assert.Empty(t, weekCells(birds.Row{Values: []float64{0.5}}))
}

func TestBarsTableMatchesRenderer(t *testing.T) {
	_, row := fixtureRow(t, birds.DefaultRowIndex)
	bars := chart.NewRenderer(chart.DefaultOptions()).Bars(row, 1280, 720)

	data := barsTable(bars)
	require.Len(t, data, len(bars)+1)
	assert.Equal(t, "Week", data[0][0])
	for i, line := range data {
		assert.Len(t, line, len(data[0]), "row %d", i)
	}
	assert.Equal(t, "1", data[1][0])
	assert.Equal(t, "Jan", data[1][1])
}

func TestMonthTreeGroupsWeeks(t *testing.T) {
	_, row := fixtureRow(t, birds.DefaultRowIndex)
	out := monthTree(row)

	assert.True(t, strings.HasPrefix(out, "Red-winged Blackbird (row 14)"))
	assert.Equal(t, len(weekCells(row)), strings.Count(out, "week "))
	assert.Equal(t, 1, strings.Count(out, "Jan"))
	assert.Equal(t, 1, strings.Count(out, "Dec"))
}

func TestSmoothedFollowsInput(t *testing.T) {
	out := smoothed([]float64{1, 1, 1, 1})
	require.Len(t, out, 4)
	for _, v := range out {
		assert.InDelta(t, 1.0, v, 1e-9)
	}

	out = smoothed([]float64{0.5, 1})
	assert.Greater(t, out[1], 0.5)
	assert.Less(t, out[1], 1.0)
}

func TestPlotRowCaption(t *testing.T) {
	_, row := fixtureRow(t, 3)
	assert.Contains(t, plotRow(row, 60, 6, false), "Wild Turkey")
	assert.Contains(t, plotRow(row, 60, 6, true), "smoothed")
}

func TestPrintOptionsMarksSelection(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	table, row := fixtureRow(t, birds.DefaultRowIndex)
	var buf bytes.Buffer
	printOptions(&buf, components.MenuOptions(table, birds.SortRaw), row.Index)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, table.Len())

	var marked []string
	for _, l := range lines {
		if strings.HasPrefix(l, "▸") {
			marked = append(marked, l)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], " 14 Red-winged Blackbird")
}
