package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratersim/internal/core"
	"cratersim/internal/sims/craters"
)

func TestTerrainImage(t *testing.T) {
	g := core.NewRGBGrid(3, 2)
	g.Fill(185)
	g.Set(2, 1, [core.Channels]uint8{255, 50, 40})

	img := TerrainImage(g)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{185, 185, 185, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 50, 40, 255}, img.RGBAAt(2, 1))
}

func TestAxisFrac(t *testing.T) {
	lin := axis{min: 0, max: 10}
	assert.InDelta(t, 0.25, lin.frac(2.5), 1e-12)

	logInv := axis{min: 10, max: 1000, log: true, invert: true}
	assert.InDelta(t, 1, logInv.frac(10), 1e-12)
	assert.InDelta(t, 0.5, logInv.frac(100), 1e-12)
	assert.InDelta(t, 0, logInv.frac(1000), 1e-12)

	assert.Equal(t, 0.5, axis{min: 3, max: 3}.frac(3))

	area := rect{x0: 10, y0: 20, x1: 110, y1: 220}
	x, y := area.point(lin, lin, 5, 10)
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 20.0, y, "y grows upwards")
}

func TestScoreColorEnds(t *testing.T) {
	lo := ScoreColor(-1)
	hi := ScoreColor(2)
	assert.InDelta(t, 26, int(lo.R), 1)
	assert.InDelta(t, 150, int(lo.G), 1)
	assert.InDelta(t, 215, int(hi.R), 1)
	assert.InDelta(t, 25, int(hi.G), 1)
	assert.Equal(t, uint8(255), ScoreColor(0.5).A)
}

func TestFigureRender(t *testing.T) {
	cfg := craters.DefaultConfig()
	cfg.TerrainLength = 64
	cfg.StepCount = 30
	w, err := craters.NewWithConfig(cfg)
	require.NoError(t, err)
	_, err = w.Run(nil)
	require.NoError(t, err)

	fig := NewFigure(800, 600)
	img := fig.Render(w.Frame())
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 600, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))

	found := map[color.RGBA]bool{}
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			found[img.RGBAAt(x, y)] = true
		}
	}
	assert.True(t, found[allColor], "histogram bars for all craters")
	assert.True(t, found[visibleColor], "histogram bars for visible craters")
	assert.True(t, found[color.RGBA{185, 185, 185, 255}], "terrain surface")

	again := fig.Render(w.Frame())
	assert.Equal(t, img.Pix, again.Pix, "rendering is deterministic")
}

func TestFigureRenderEmptyFrame(t *testing.T) {
	cfg := craters.DefaultConfig()
	cfg.TerrainLength = 16
	w, err := craters.NewWithConfig(cfg)
	require.NoError(t, err)
	assert.NotPanics(t, func() { NewFigure(100, 100).Render(w.Frame()) })
}
