package birds

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRowsIgnoresCase(t *testing.T) {
	zebra := Row{Index: 0, Name: "zebra finch"}
	albatross := Row{Index: 1, Name: "Albatross"}

	assert.Negative(t, CompareRows(albatross, zebra))
	assert.Positive(t, CompareRows(zebra, albatross))
}

func TestCompareRowsTieBreaksOnIndex(t *testing.T) {
	a := Row{Index: 3, Name: "Mallard"}
	b := Row{Index: 7, Name: "MALLARD"}

	assert.Negative(t, CompareRows(a, b))
	assert.Positive(t, CompareRows(b, a))
	assert.Zero(t, CompareRows(a, a))
}

func TestSortKeysDiffer(t *testing.T) {
	// Raw names compare markup too: "<b>" sorts before letters.
	rows := []Row{
		{Index: 0, Name: "Albatross"},
		{Index: 1, Name: "<b>Zebra Finch</b>"},
	}

	assert.Equal(t, []int{1, 0}, SortForMenu(rows, SortRaw))
	assert.Equal(t, []int{0, 1}, SortForMenu(rows, SortDisplay))
}

func TestSortForMenuKeepsBindings(t *testing.T) {
	table := loadFixture(t)
	rows := table.Rows()

	order := SortForMenu(rows, SortRaw)
	require.Len(t, order, table.Len())

	first, _ := table.Row(order[0])
	last, _ := table.Row(order[len(order)-1])
	assert.Equal(t, "American Robin", first.DisplayName())
	assert.Equal(t, "Yellow Warbler", last.DisplayName())

	for i, r := range rows {
		assert.Equal(t, i, r.Index, "sorting must not reorder the table")
	}

	seen := map[int]bool{}
	for _, idx := range order {
		seen[idx] = true
	}
	assert.Len(t, seen, table.Len())
}

func TestSortForMenuAgreesWithCompare(t *testing.T) {
	rows := []Row{
		{Index: 0, Name: "<b>Zebra Finch</b>"},
		{Index: 1, Name: "robin"},
		{Index: 2, Name: "Robin"},
		{Index: 3, Name: "<i>Avocet</i>"},
		{Index: 4, Name: "Bittern"},
	}
	for _, key := range []SortKey{SortRaw, SortDisplay} {
		t.Run(string(key), func(t *testing.T) {
			order := SortForMenu(rows, key)
			require.Len(t, order, len(rows))
			for i := 1; i < len(order); i++ {
				prev, next := rows[order[i-1]], rows[order[i]]
				assert.Negative(t, key.Compare(prev, next), "%q before %q", prev.Name, next.Name)
			}
		})
	}

	// Same lower-cased name falls back to row order
	order := SortForMenu(rows, SortDisplay)
	assert.Less(t, slices.Index(order, 1), slices.Index(order, 2))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortRaw, k)

	k, err = ParseSortKey("Display")
	require.NoError(t, err)
	assert.Equal(t, SortDisplay, k)

	_, err = ParseSortKey("length")
	assert.Error(t, err)
}
