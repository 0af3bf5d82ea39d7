package craters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratersim/internal/core"
)

func surface(n int) *core.RGBGrid {
	g := core.NewRGBGrid(n, n)
	g.Fill(185)
	return g
}

func TestOutlineSamplesStayInRimBand(t *testing.T) {
	for _, radius := range []float64{5, 12.5, 20, 49.9} {
		c := Crater{X: 50, Y: 50, Radius: radius}
		minR := math.Inf(1)
		forEachSample(c, false, func(r float64, _, _ int) {
			minR = math.Min(minR, r)
			require.GreaterOrEqual(t, r, radius-RimWidth)
			require.Less(t, r, radius)
		})
		assert.Equal(t, radius-RimWidth, minR)
	}
}

func TestOutlineLeavesInteriorUntouched(t *testing.T) {
	g := surface(100)
	DrawCrater(g, Crater{X: 50, Y: 50, Radius: 20}, 50, false, false)

	touched := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cell := g.At(x, y)
			if cell != [core.Channels]uint8{185, 185, 185} {
				touched++
			}
			// Truncation can move a sample by less than one cell per axis.
			if math.Hypot(float64(x-50), float64(y-50)) < 20-RimWidth-math.Sqrt2 {
				require.Equal(t, [core.Channels]uint8{185, 185, 185}, cell, "interior cell (%d,%d) was drawn", x, y)
			}
		}
	}
	assert.Positive(t, touched)
	assert.Equal(t, [core.Channels]uint8{50, 50, 50}, g.At(68, 50))
}

func TestOccluderMarksMarkerChannel(t *testing.T) {
	g := surface(100)
	DrawCrater(g, Crater{X: 50, Y: 50, Radius: 20}, 50, true, false)
	assert.Equal(t, [core.Channels]uint8{255, 50, 50}, g.At(68, 50))
}

func TestFilledCraterShadesRim(t *testing.T) {
	g := surface(100)
	DrawCrater(g, Crater{X: 50, Y: 50, Radius: 20}, 50, false, true)
	assert.Equal(t, [core.Channels]uint8{50, 50, 50}, g.At(50, 50), "interior keeps the crater colour")
	assert.Equal(t, [core.Channels]uint8{0, 0, 0}, g.At(69, 50), "outer band is shadowed")

	g = surface(100)
	DrawCrater(g, Crater{X: 50, Y: 50, Radius: 20}, 50, true, true)
	assert.Equal(t, [core.Channels]uint8{255, 50, 50}, g.At(50, 50))
	assert.Equal(t, [core.Channels]uint8{0, 0, 0}, g.At(69, 50))
}

func TestDrawCraterClipsToGrid(t *testing.T) {
	g := surface(20)
	require.NotPanics(t, func() {
		DrawCrater(g, Crater{X: -10, Y: -10, Radius: 30}, 50, false, true)
		DrawCrater(g, Crater{X: 25, Y: 25, Radius: 12}, 50, true, false)
	})
	assert.Equal(t, [core.Channels]uint8{50, 50, 50}, g.At(0, 0))
}

func TestLaterCraterOverwrites(t *testing.T) {
	g := surface(100)
	DrawCrater(g, Crater{X: 50, Y: 50, Radius: 10}, 50, false, true)
	DrawCrater(g, Crater{X: 50, Y: 50, Radius: 30}, 90, true, true)
	assert.Equal(t, [core.Channels]uint8{255, 90, 90}, g.At(50, 50))
}

func TestRimStep(t *testing.T) {
	assert.InDelta(t, math.Acos(0.9), RimStep(10), 1e-12)
	assert.Less(t, RimStep(40), RimStep(10), "larger craters sweep more densely")
	assert.Equal(t, 1.0, RimStep(0.4))
	assert.Equal(t, 1.0, RimStep(0))
}
