// Package tui is a terminal viewer for simulations. Terrain is drawn with
// half-block glyphs, two pixel rows per terminal row, and downsampled to fit.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"cratersim/internal/core"
	"cratersim/internal/render"
	"cratersim/internal/ui"
)

const halfBlock = '▀'

// Viewer drives a simulation on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	timer  *core.FixedStep

	seed   int64
	paused bool
}

// New builds a viewer. Steps are paced at the simulation's frame rate.
func New(screen tcell.Screen, sim core.Sim, seed int64) *Viewer {
	rate := 15.0
	if p, ok := sim.(core.ParameterProvider); ok {
		rate = p.Parameters().Float("frame_rate", rate)
	}
	return &Viewer{screen: screen, sim: sim, timer: core.NewFixedStep(rate), seed: seed}
}

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run processes input and redraws until quit or ctx is cancelled. The
// caller owns the screen and must Fini it.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Tick()
		}
	}
}

// Tick advances the simulation when a step is due and redraws.
func (v *Viewer) Tick() {
	if !v.paused && v.timer.ShouldStep() {
		v.sim.Step()
	}
	v.Draw()
}

// HandleEvent applies a key or resize event. It returns false on quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n', 'N':
				v.sim.Step()
			case 'r', 'R':
				v.sim.Reset(v.seed)
			case 's', 'S':
				v.seed = time.Now().UnixNano()
				v.sim.Reset(v.seed)
			}
		}
		v.Draw()
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	}
	return true
}

// Draw renders the terrain and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	size := v.sim.Size()
	cells := v.sim.Pixels()
	if rows > 1 && len(cells) == size.W*size.H*core.Channels {
		scale := blockScale(size, cols, rows-1)
		for cy := 0; cy < rows-1; cy++ {
			top := 2 * cy * scale
			if top >= size.H {
				break
			}
			bottom := top + scale
			for cx := 0; cx < cols; cx++ {
				x := cx * scale
				if x >= size.W {
					break
				}
				style := tcell.StyleDefault.Foreground(darkest(cells, size, x, top, scale))
				if bottom < size.H {
					style = style.Background(darkest(cells, size, x, bottom, scale))
				}
				v.screen.SetContent(cx, cy, halfBlock, nil, style)
			}
		}
	}
	v.drawStatus(cols, rows-1)
	v.screen.Show()
}

func (v *Viewer) drawStatus(cols, row int) {
	var st core.Status
	if p, ok := v.sim.(core.StatusProvider); ok {
		st = p.Status()
	}
	line := ui.StatusText(v.sim.Name(), st)
	if v.paused {
		line += "  [paused]"
	}
	c := render.ScoreColor(st.Score)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for i, r := range []rune(line) {
		if i >= cols {
			break
		}
		v.screen.SetContent(i, row, r, nil, style)
	}
}

// blockScale is the pixel block edge that fits size into cols x rows
// half-block cells.
func blockScale(size core.Size, cols, rows int) int {
	s := 1
	if cols > 0 {
		s = max(s, (size.W+cols-1)/cols)
	}
	if rows > 0 {
		s = max(s, (size.H+2*rows-1)/(2*rows))
	}
	return s
}

// darkest returns the lowest-luminance pixel in the scale x scale block at
// (x, y) so thin rims survive downsampling.
func darkest(cells []uint8, size core.Size, x, y, scale int) tcell.Color {
	best := -1
	var col [core.Channels]uint8
	for py := y; py < min(y+scale, size.H); py++ {
		for px := x; px < min(x+scale, size.W); px++ {
			i := (py*size.W + px) * core.Channels
			lum := int(cells[i]) + int(cells[i+1]) + int(cells[i+2])
			if best < 0 || lum < best {
				best = lum
				col = [core.Channels]uint8{cells[i], cells[i+1], cells[i+2]}
			}
		}
	}
	return tcell.NewRGBColor(int32(col[0]), int32(col[1]), int32(col[2]))
}
