package palette

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference(m float64) float64 {
	deg := math.Floor(m / 12 * 180)
	s := math.Sin(deg * math.Pi / 180)
	return 360 - (180 + s*180)
}

func TestMonthHueMatchesReference(t *testing.T) {
	for _, m := range []float64{0, 3, 6, 9, 11.9} {
		assert.InDelta(t, reference(m), MonthHue(m), 1e-6, "month %v", m)
	}
}

func TestMonthHueAnchors(t *testing.T) {
	assert.Equal(t, 180.0, MonthHue(0))
	assert.InDelta(t, 0, MonthHue(6), 1e-9)
	assert.InDelta(t, 52.720779, MonthHue(3), 1e-6)
	assert.InDelta(t, MonthHue(3), MonthHue(9), 1e-9)
}

func TestMonthHueStaysInLowerHalf(t *testing.T) {
	for m := 0.0; m < 12; m += 0.01 {
		h := MonthHue(m)
		require.GreaterOrEqual(t, h, 0.0, "month %v", m)
		require.LessOrEqual(t, h, 180.0, "month %v", m)
	}
}

func TestMonthHueFloorsDegrees(t *testing.T) {
	// 0.05 months is 0.75 degrees, floored to 0.
	assert.Equal(t, 180.0, MonthHue(0.05))
}

func TestMap(t *testing.T) {
	assert.Equal(t, 50.0, Map(0.5, 0, 1, 0, 100))
	assert.Equal(t, 270.0, Map(0.5, 0, 1, 180, 360))
	assert.Equal(t, 150.0, Map(1.5, 0, 1, 0, 100), "Map does not clamp")
}

func TestHSBClampsOnConversion(t *testing.T) {
	assert.Equal(t, "#ff0000", HSB{H: 0, S: 100, B: 100}.Hex())
	assert.Equal(t, "#ff0000", HSB{H: 0, S: 150, B: 100}.Hex())
	assert.Equal(t, "#ff0000", HSB{H: 360, S: 100, B: 100}.Hex())
	assert.Equal(t, "#ffffff", HSB{H: 180, S: 0, B: 100}.Hex())
	assert.Equal(t, "#000000", HSB{H: 90, S: 50, B: -5}.Hex())

	over := HSB{H: 0, S: 150, B: 100}
	assert.Equal(t, 150.0, over.S, "components are stored unclamped")
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, over.RGBA8())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gray", "#808080"},
		{"Grey", "#808080"},
		{"#0af", "#00aaff"},
		{"#102030", "#102030"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, HexOf(c))
		})
	}

	_, err := ParseColor("chartreuse-ish")
	assert.Error(t, err)
}
