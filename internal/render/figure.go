package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"cratersim/internal/sims/craters"
)

const (
	titleHeight  = 22
	marginLeft   = 46
	marginRight  = 12
	marginBottom = 34
	gaugeHeight  = 10
)

// Figure renders a frame as a 2x2 panel figure: terrain, cumulative counts,
// counts over time and the size distribution.
type Figure struct {
	W, H int
	face font.Face
}

// NewFigure returns a renderer producing w x h images.
func NewFigure(w, h int) *Figure {
	if w < 200 {
		w = 200
	}
	if h < 200 {
		h = 200
	}
	return &Figure{W: w, H: h, face: basicfont.Face7x13}
}

// Render draws fr into a new image.
func (f *Figure) Render(fr craters.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	gc := draw2dimg.NewGraphicContext(img)

	pw, ph := float64(f.W/2), float64(f.H/2)
	panel := func(col, row int) rect {
		return rect{x0: float64(col) * pw, y0: float64(row) * ph, x1: float64(col+1) * pw, y1: float64(row+1) * ph}
	}

	f.terrainPanel(img, panel(0, 0), fr)
	f.cumulativePanel(img, gc, panel(1, 0), fr.Bins)
	f.timePanel(img, gc, panel(0, 1), &fr.Series)
	f.distributionPanel(img, gc, panel(1, 1), fr.Bins)
	return img
}

func plotArea(p rect) rect {
	return rect{x0: p.x0 + marginLeft, y0: p.y0 + titleHeight + 8, x1: p.x1 - marginRight, y1: p.y1 - marginBottom}
}

func (f *Figure) text(dst *image.RGBA, x, y float64, s string, c color.Color) {
	d := font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: f.face, Dot: fixed.P(int(x), int(y))}
	d.DrawString(s)
}

func (f *Figure) textWidth(s string) float64 {
	return float64(font.MeasureString(f.face, s).Round())
}

func (f *Figure) centred(dst *image.RGBA, cx, y float64, s string) {
	f.text(dst, cx-f.textWidth(s)/2, y, s, axisColor)
}

// labels draws the title, axis labels and the extreme tick values.
func (f *Figure) labels(dst *image.RGBA, p, area rect, title, xlabel, ylabel, xlo, xhi, yhi string) {
	f.centred(dst, (p.x0+p.x1)/2, p.y0+titleHeight-6, title)
	f.centred(dst, (area.x0+area.x1)/2, p.y1-6, xlabel)
	f.text(dst, p.x0+4, area.y0-2, ylabel, axisColor)
	f.text(dst, area.x0, area.y1+14, xlo, axisColor)
	f.text(dst, area.x1-f.textWidth(xhi), area.y1+14, xhi, axisColor)
	f.text(dst, area.x0-f.textWidth(yhi)-4, area.y0+10, yhi, axisColor)
	f.text(dst, area.x0-f.textWidth("0")-4, area.y1, "0", axisColor)
}

func (f *Figure) legend(dst *image.RGBA, gc *draw2dimg.GraphicContext, area rect, lines []line) {
	y := area.y0 + 14
	for _, l := range lines {
		x := area.x1 - f.textWidth(l.label) - 26
		gc.SetStrokeColor(l.col)
		gc.SetLineWidth(3)
		gc.BeginPath()
		gc.MoveTo(x, y-4)
		gc.LineTo(x+16, y-4)
		gc.Stroke()
		f.text(dst, x+20, y, l.label, axisColor)
		y += 14
	}
}

func (f *Figure) terrainPanel(dst *image.RGBA, p rect, fr craters.Frame) {
	f.centred(dst, (p.x0+p.x1)/2, p.y0+titleHeight-6, "Cratered Terrain")

	area := plotArea(p)
	area.y1 -= gaugeHeight + 4
	side := min(area.w(), area.h())
	x0 := area.x0 + (area.w()-side)/2
	target := image.Rect(int(x0), int(area.y0), int(x0+side), int(area.y0+side))
	src := TerrainImage(fr.Grid)
	draw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), draw.Src, nil)

	gauge := image.Rect(target.Min.X, target.Max.Y+6, target.Max.X, target.Max.Y+6+gaugeHeight)
	draw.Draw(dst, gauge, image.NewUniform(gridColor), image.Point{}, draw.Src)
	filled := gauge
	filled.Max.X = gauge.Min.X + int(float64(gauge.Dx())*fr.Score)
	draw.Draw(dst, filled, image.NewUniform(ScoreColor(fr.Score)), image.Point{}, draw.Src)

	status := fmt.Sprintf("step %d  saturation %.2f", fr.Step, fr.Score)
	if fr.SaturationPoint != craters.NoSaturation {
		status += fmt.Sprintf("  (saturated at %d)", fr.SaturationPoint)
	}
	f.text(dst, float64(gauge.Min.X), float64(gauge.Max.Y)+14, status, axisColor)
}

func (f *Figure) cumulativePanel(dst *image.RGBA, gc *draw2dimg.GraphicContext, p rect, bins craters.BinTable) {
	area := plotArea(p)
	drawFrame(gc, area)
	xlo, xhi := "", ""
	ymax := max(maxInt(bins.All), 1)
	if len(bins.Thresholds) >= 2 {
		xs := bins.Thresholds[1:]
		xa := axis{min: xs[0], max: xs[len(xs)-1], log: true, invert: true}
		ya := axis{min: 0, max: float64(ymax)}
		lines := []line{
			{label: "All Craters", col: allColor, xs: xs, ys: floats(bins.All[1:])},
			{label: "Visible Craters", col: visibleColor, xs: xs, ys: floats(bins.Visible[1:])},
		}
		drawLines(gc, area, xa, ya, lines)
		f.legend(dst, gc, area, lines)
		xlo, xhi = formatRadius(xs[len(xs)-1]), formatRadius(xs[0])
	}
	f.labels(dst, p, area, "Cumulative Crater Counts", "Crater Radii (km, log)", "Cumulative Count", xlo, xhi, strconv.Itoa(ymax))
}

func (f *Figure) timePanel(dst *image.RGBA, gc *draw2dimg.GraphicContext, p rect, s *craters.Series) {
	area := plotArea(p)
	drawFrame(gc, area)
	last := 1
	if n := len(s.Steps); n > 0 && s.Steps[n-1] > 0 {
		last = s.Steps[n-1]
	}
	ymax := max(maxInt(s.Total), 1)
	xa := axis{min: 0, max: float64(last)}
	ya := axis{min: 0, max: float64(ymax)}
	steps := floats(s.Steps)
	lines := []line{
		{label: "All Craters", col: allColor, xs: steps, ys: floats(s.Total)},
		{label: "Visible Craters", col: visibleColor, xs: steps, ys: floats(s.Visible)},
	}
	drawLines(gc, area, xa, ya, lines)
	f.legend(dst, gc, area, lines)
	f.labels(dst, p, area, "Crater Count as a Function of Time", "Time (10^3 years)", "Crater Count", "0", strconv.Itoa(last), strconv.Itoa(ymax))
}

func (f *Figure) distributionPanel(dst *image.RGBA, gc *draw2dimg.GraphicContext, p rect, bins craters.BinTable) {
	area := plotArea(p)
	drawFrame(gc, area)
	xlo, xhi := "", ""
	ymax := max(maxInt(bins.AllHist, bins.VisibleHist), 1)
	if edges := bins.Thresholds; len(edges) >= 2 {
		xa := axis{min: edges[0], max: edges[len(edges)-1]}
		ya := axis{min: 0, max: float64(ymax)}
		drawBars(gc, area, xa, ya, edges, bins.AllHist, allColor, 0.05)
		drawBars(gc, area, xa, ya, edges, bins.VisibleHist, visibleColor, 0.25)
		f.legend(dst, gc, area, []line{
			{label: "All Craters", col: allColor},
			{label: "Visible Craters", col: visibleColor},
		})
		xlo, xhi = formatRadius(edges[0]), formatRadius(edges[len(edges)-1])
	}
	f.labels(dst, p, area, "Crater Size Distribution", "Crater Radii (km)", "Crater Count", xlo, xhi, strconv.Itoa(ymax))
}

func formatRadius(r float64) string {
	return strconv.FormatFloat(r, 'g', 4, 64)
}
