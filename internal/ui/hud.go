//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cratersim/internal/core"
	"cratersim/internal/render"
)

// HUD renders the status and parameter panel to the right of the terrain.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	status   core.Status
	snapshot core.ParameterSnapshot
	title    string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached status and parameters from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if p, ok := h.sim.(core.StatusProvider); ok {
		h.status = p.Status()
	}
	if p, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = p.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += sectionGap

	y = h.drawLines(StatusLines(h.status), y)
	h.drawGauge(y-lineHeight+4, h.status.Score)
	y += sectionGap
	y = h.drawLines(ParameterLines(h.snapshot), y)
	y += sectionGap
	for _, k := range KeyHelp {
		text.Draw(h.panel, k, face, panelPadding, y, dimColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines(lines []Line, y int) int {
	face := basicfont.Face7x13
	for _, l := range lines {
		if l.Header {
			y += 4
			text.Draw(h.panel, l.Text, face, panelPadding, y, headerColor)
			y += lineHeight
			continue
		}
		text.Draw(h.panel, l.Text, face, panelPadding, y, labelColor)
		if l.Value != "" {
			w := text.BoundString(face, l.Value).Dx()
			text.Draw(h.panel, l.Value, face, h.width-panelPadding-w, y, labelColor)
		}
		y += lineHeight
	}
	return y
}

// drawGauge paints a bar under the status block filled to score.
func (h *HUD) drawGauge(y int, score float64) {
	if h.pixel == nil {
		return
	}
	full := h.width - 2*panelPadding
	h.fillRect(panelPadding, y, full, gaugeHeight, color.RGBA{R: 40, G: 42, B: 50, A: 255})
	filled := int(float64(full) * min(max(score, 0), 1))
	if filled > 0 {
		h.fillRect(panelPadding, y, filled, gaugeHeight, render.ScoreColor(score))
	}
}

func (h *HUD) fillRect(x, y, w, ht int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	h.panel.DrawImage(h.pixel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Craters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	headerColor = color.RGBA{R: 150, G: 170, B: 220, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	sectionGap     = 12
	gaugeHeight    = 4
)
