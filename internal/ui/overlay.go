//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cratersim/internal/core"
	"cratersim/internal/sims/craters"
)

type craterProvider interface {
	VisibleCraters() []craters.Crater
}

// Overlay marks the craters that are still visible on top of the terrain.
// Key 1 toggles centre markers, key 2 toggles rim circles.
type Overlay struct {
	sim         core.Sim
	scale       int
	showCentres bool
	showRims    bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCentres = !o.showCentres
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showRims = !o.showRims
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showCentres && !o.showRims {
		return
	}
	provider, ok := o.sim.(craterProvider)
	if !ok {
		return
	}
	scale := float64(max(o.scale, 1))
	for _, c := range provider.VisibleCraters() {
		cx, cy := c.X*scale, c.Y*scale
		if o.showRims {
			o.drawCircle(screen, cx, cy, c.Radius*scale, rimColor)
		}
		if o.showCentres {
			o.drawPoint(screen, cx, cy, 3, centreColor)
		}
	}
}

func (o *Overlay) drawCircle(screen *ebiten.Image, cx, cy, r float64, col color.RGBA) {
	segments := max(12, int(r/2))
	px, py := cx+r, cy
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		o.drawLine(screen, px, py, x, y, 1, col)
		px, py = x, y
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	screen.DrawImage(o.pixel, op)
}

var (
	rimColor    = color.RGBA{R: 64, G: 164, B: 223, A: 255}
	centreColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}
)
