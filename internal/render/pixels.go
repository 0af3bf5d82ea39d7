package render

import (
	"image"

	"cratersim/internal/core"
)

// fillRGBA converts three-channel cell data into opaque RGBA pixels in buf.
func fillRGBA(buf []byte, cells []uint8) {
	n := len(cells) / core.Channels
	for i := 0; i < n; i++ {
		src := i * core.Channels
		dst := i * 4
		buf[dst+0] = cells[src+0]
		buf[dst+1] = cells[src+1]
		buf[dst+2] = cells[src+2]
		buf[dst+3] = 0xff
	}
}

// TerrainImage copies the grid into a new RGBA image.
func TerrainImage(g *core.RGBGrid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillRGBA(img.Pix, g.Cells())
	return img
}
