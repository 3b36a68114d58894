package birds

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SortKey selects which form of the name orders the menu.
type SortKey string

const (
	// SortRaw orders by the raw name, markup included.
	SortRaw SortKey = "raw"
	// SortDisplay orders by the cleaned display name.
	SortDisplay SortKey = "display"
)

// ParseSortKey validates a configured sort key. Empty selects SortRaw.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortRaw:
		return SortRaw, nil
	case SortDisplay:
		return SortDisplay, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want %q or %q)", s, SortRaw, SortDisplay)
	}
}

func (k SortKey) key(c cases.Caser, r Row) string {
	name := r.Name
	if k == SortDisplay {
		name = CleanName(name)
	}
	return c.String(name)
}

// Compare orders a and b by lower-cased name, then by row index.
func (k SortKey) Compare(a, b Row) int {
	c := cases.Lower(language.Und)
	if n := strings.Compare(k.key(c, a), k.key(c, b)); n != 0 {
		return n
	}
	return a.Index - b.Index
}

// CompareRows orders rows by their lower-cased raw names.
func CompareRows(a, b Row) int {
	return SortRaw.Compare(a, b)
}

// SortForMenu returns the row indexes of rows in menu order.
// rows itself is left untouched.
func SortForMenu(rows []Row, key SortKey) []int {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, key.Compare)

	order := make([]int, len(sorted))
	for i, r := range sorted {
		order[i] = r.Index
	}
	return order
}
