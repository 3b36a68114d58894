// Package window shows the chart in a desktop window.
package window

// Cycler steps through rows in menu order, wrapping at either end.
type Cycler struct {
	order []int
	pos   int
}

// NewCycler starts at selected, or at the first entry if selected is not
// in order.
func NewCycler(order []int, selected int) *Cycler {
	c := &Cycler{order: order}
	for i, row := range order {
		if row == selected {
			c.pos = i
			break
		}
	}
	return c
}

// Selected returns the current row index, or -1 when there are no rows.
func (c *Cycler) Selected() int {
	if len(c.order) == 0 {
		return -1
	}
	return c.order[c.pos]
}

// Next moves to the following row and returns it.
func (c *Cycler) Next() int { return c.step(1) }

// Prev moves to the preceding row and returns it.
func (c *Cycler) Prev() int { return c.step(-1) }

func (c *Cycler) step(d int) int {
	if len(c.order) == 0 {
		return -1
	}
	c.pos = (c.pos + d + len(c.order)) % len(c.order)
	return c.order[c.pos]
}

// CanvasSize returns the drawing area for a window of w by h: the window
// less marginX across and marginY down, never smaller than one pixel.
func CanvasSize(w, h, marginX, marginY int) (int, int) {
	return max(w-marginX, 1), max(h-marginY, 1)
}

// CanvasOffset places the canvas with its margins split evenly on both sides.
func CanvasOffset(marginX, marginY int) (float64, float64) {
	return float64(marginX) / 2, float64(marginY) / 2
}
