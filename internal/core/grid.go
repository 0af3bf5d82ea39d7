package core

// Channels is the number of colour channels stored per grid cell.
const Channels = 3

// RGBGrid stores a 2D grid of three-channel cell values in row-major order.
type RGBGrid struct {
	W, H int
	data []uint8
}

// NewRGBGrid allocates a grid with the given dimensions.
func NewRGBGrid(w, h int) *RGBGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &RGBGrid{W: w, H: h, data: make([]uint8, w*h*Channels)}
}

// Cells exposes the backing slice so callers can read/write values directly.
// Each cell occupies Channels consecutive bytes.
func (g *RGBGrid) Cells() []uint8 { return g.data }

// Index returns the offset of the first channel of cell (x, y).
func (g *RGBGrid) Index(x, y int) int { return (y*g.W + x) * Channels }

// In reports whether (x, y) lies on the grid.
func (g *RGBGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (g *RGBGrid) Set(x, y int, c [Channels]uint8) {
	if !g.In(x, y) {
		return
	}
	i := g.Index(x, y)
	g.data[i+0] = c[0]
	g.data[i+1] = c[1]
	g.data[i+2] = c[2]
}

// At returns the cell value at (x, y), or zero for out-of-range coordinates.
func (g *RGBGrid) At(x, y int) [Channels]uint8 {
	if !g.In(x, y) {
		return [Channels]uint8{}
	}
	i := g.Index(x, y)
	return [Channels]uint8{g.data[i], g.data[i+1], g.data[i+2]}
}

// Fill sets every channel of every cell to v.
func (g *RGBGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *RGBGrid) Clone() *RGBGrid {
	return &RGBGrid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}
