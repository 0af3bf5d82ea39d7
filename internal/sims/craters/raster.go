package craters

import (
	"math"

	"cratersim/internal/core"
)

// RimWidth is the width, in grid units, of the band drawn in outline mode and
// shaded in filled mode.
const RimWidth = 4

// markerChannel carries the occluder highlight; the other channels are the
// "side" channels.
const markerChannel = 0

// RimStep returns the angular increment used when sweeping a crater of the
// given radius. The increment is added to a degree counter, so larger craters
// get denser sweeps. Degenerate radii fall back to one degree.
func RimStep(radius float64) float64 {
	step := math.Acos(1 - 1/radius)
	if math.IsNaN(step) || step <= 0 {
		return 1
	}
	return step
}

// forEachSample visits every (r, cell) pair the rasterizer samples for c,
// including samples that fall outside the grid.
func forEachSample(c Crater, filled bool, fn func(r float64, px, py int)) {
	start := 0.0
	if !filled {
		start = c.Radius - RimWidth
	}
	step := RimStep(c.Radius)
	for t := 0.0; t < 360; t += step {
		sin, cos := math.Sincos(t * math.Pi / 180)
		for r := start; r < c.Radius; r++ {
			if r < 0 {
				continue
			}
			fn(r, int(c.X+r*cos), int(c.Y+r*sin))
		}
	}
}

// DrawCrater rasterizes c onto grid. In outline mode only the outer RimWidth
// band is drawn; in filled mode the interior is painted and the outer band is
// darkened. marksOccluder highlights the marker channel for craters that
// buried at least one visible crater. Samples off the grid are dropped.
func DrawCrater(grid *core.RGBGrid, c Crater, value uint8, marksOccluder, filled bool) {
	forEachSample(c, filled, func(r float64, px, py int) {
		if !grid.In(px, py) {
			return
		}
		var cell [core.Channels]uint8
		for ch := range cell {
			cell[ch] = value
		}
		if marksOccluder {
			cell[markerChannel] = 255
		}
		if filled && r > c.Radius-RimWidth {
			cell = [core.Channels]uint8{}
		}
		grid.Set(px, py, cell)
	})
}
