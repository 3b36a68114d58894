package chart

import (
	"fmt"
	"image/color"

	"github.com/willibrandon/rainbow/internal/palette"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpBackground OpKind = iota
	OpFill
	OpRect
)

func (k OpKind) String() string {
	switch k {
	case OpBackground:
		return "background"
	case OpFill:
		return "fill"
	case OpRect:
		return "rect"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one call made against a Recorder.
type Op struct {
	Kind       OpKind
	Background color.RGBA
	Fill       palette.HSB
	X, Y, W, H float64
}

// Recorder is a Surface that remembers every call instead of drawing.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Background(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpBackground, Background: c})
}

func (r *Recorder) Fill(c palette.HSB) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Fill: c})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
