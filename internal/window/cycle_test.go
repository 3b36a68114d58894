package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclerWraps(t *testing.T) {
	c := NewCycler([]int{9, 3, 14, 0}, 14)
	assert.Equal(t, 14, c.Selected())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 9, c.Next(), "wraps to the start")
	assert.Equal(t, 0, c.Prev(), "wraps to the end")
	assert.Equal(t, 14, c.Prev())
}

func TestCyclerUnknownSelection(t *testing.T) {
	c := NewCycler([]int{5, 6}, 42)
	assert.Equal(t, 5, c.Selected())
}

func TestCyclerEmpty(t *testing.T) {
	c := NewCycler(nil, 0)
	assert.Equal(t, -1, c.Selected())
	assert.Equal(t, -1, c.Next())
	assert.Equal(t, -1, c.Prev())
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		w, h, mx, my int
		wantW, wantH int
	}{
		{1312, 736, 32, 16, 1280, 720},
		{1000, 800, 32, 16, 968, 784},
		{800, 600, 0, 0, 800, 600},
		{20, 10, 32, 16, 1, 1},
	}
	for _, tt := range tests {
		w, h := CanvasSize(tt.w, tt.h, tt.mx, tt.my)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("CanvasSize(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tt.w, tt.h, tt.mx, tt.my, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestCanvasOffsetSplitsMargins(t *testing.T) {
	x, y := CanvasOffset(32, 16)
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 8.0, y)

	// Offset plus canvas plus offset fills the window
	w, h := CanvasSize(1000, 800, 32, 16)
	assert.Equal(t, 1000.0, 2*x+float64(w))
	assert.Equal(t, 800.0, 2*y+float64(h))
}
