package birds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"emphasis", "American Robin<em class='sci'>Turdus migratorius</em>", "American Robin"},
		{"no tags", "Mallard", "Mallard"},
		{"only tags", "<em></em>", ""},
		{"several", "<b>Wild</b> <i>Turkey</i>", "Wild Turkey"},
		{"empty", "", ""},
		{"lone angle", "a < b", "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.in))
		})
	}
}

func TestScientificName(t *testing.T) {
	assert.Equal(t, "Turdus migratorius", ScientificName("American Robin<em class='sci'>Turdus migratorius</em>"))
	assert.Equal(t, "", ScientificName("Mallard"))
}
