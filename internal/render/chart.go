package render

import (
	"image/color"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

var (
	allColor     = color.RGBA{31, 119, 180, 255}
	visibleColor = color.RGBA{255, 127, 14, 255}
	axisColor    = color.RGBA{40, 40, 40, 255}
	gridColor    = color.RGBA{225, 225, 225, 255}
)

type rect struct{ x0, y0, x1, y1 float64 }

func (r rect) w() float64 { return r.x1 - r.x0 }
func (r rect) h() float64 { return r.y1 - r.y0 }

// axis maps data values onto [0,1] along one dimension.
type axis struct {
	min, max float64
	log      bool
	invert   bool
}

func (a axis) frac(v float64) float64 {
	lo, hi := a.min, a.max
	if a.log {
		lo, hi, v = math.Log10(lo), math.Log10(hi), math.Log10(v)
	}
	f := 0.5
	if hi != lo {
		f = (v - lo) / (hi - lo)
	}
	if a.invert {
		f = 1 - f
	}
	return f
}

// point converts data coordinates to pixel coordinates inside r. Y grows up.
func (r rect) point(xa, ya axis, x, y float64) (float64, float64) {
	return r.x0 + xa.frac(x)*r.w(), r.y1 - ya.frac(y)*r.h()
}

type line struct {
	label string
	col   color.RGBA
	xs    []float64
	ys    []float64
}

func drawFrame(gc *draw2dimg.GraphicContext, area rect) {
	gc.SetStrokeColor(gridColor)
	gc.SetLineWidth(1)
	for i := 1; i < 4; i++ {
		y := area.y0 + area.h()*float64(i)/4
		gc.BeginPath()
		gc.MoveTo(area.x0, y)
		gc.LineTo(area.x1, y)
		gc.Stroke()
	}
	gc.SetStrokeColor(axisColor)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, area.x0, area.y0, area.x1, area.y1)
	gc.Stroke()
}

func drawLines(gc *draw2dimg.GraphicContext, area rect, xa, ya axis, lines []line) {
	gc.SetLineWidth(1.5)
	for _, l := range lines {
		n := min(len(l.xs), len(l.ys))
		if n < 2 {
			continue
		}
		gc.SetStrokeColor(l.col)
		gc.BeginPath()
		x, y := area.point(xa, ya, l.xs[0], l.ys[0])
		gc.MoveTo(x, y)
		for i := 1; i < n; i++ {
			x, y = area.point(xa, ya, l.xs[i], l.ys[i])
			gc.LineTo(x, y)
		}
		gc.Stroke()
	}
}

// drawBars draws one bar per bin. inset narrows bars so overlaid series stay
// distinguishable.
func drawBars(gc *draw2dimg.GraphicContext, area rect, xa, ya axis, edges []float64, counts []int, col color.RGBA, inset float64) {
	gc.SetFillColor(col)
	for i, c := range counts {
		if c == 0 || i+1 >= len(edges) {
			continue
		}
		x0, y0 := area.point(xa, ya, edges[i], float64(c))
		x1, y1 := area.point(xa, ya, edges[i+1], 0)
		pad := (x1 - x0) * inset
		gc.BeginPath()
		draw2dkit.Rectangle(gc, x0+pad, y0, x1-pad, y1)
		gc.Fill()
	}
}

func maxInt(vs ...[]int) int {
	m := 0
	for _, s := range vs {
		for _, v := range s {
			if v > m {
				m = v
			}
		}
	}
	return m
}

func floats(vs []int) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}
