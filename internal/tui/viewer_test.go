package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratersim/internal/core"
	"cratersim/internal/sims/craters"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newWorld(t *testing.T) *craters.World {
	t.Helper()
	cfg := craters.DefaultConfig()
	cfg.TerrainLength = 40
	cfg.MinCraterRadius = 2
	cfg.MaxCraterRadius = 8
	cfg.StepCount = 20
	w, err := craters.NewWithConfig(cfg)
	require.NoError(t, err)
	return w
}

func rowText(s tcell.SimulationScreen, row, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestBlockScale(t *testing.T) {
	assert.Equal(t, 1, blockScale(core.Size{W: 40, H: 40}, 80, 24))
	assert.Equal(t, 11, blockScale(core.Size{W: 500, H: 500}, 80, 24))
	assert.Equal(t, 2, blockScale(core.Size{W: 100, H: 10}, 50, 24))
}

func TestDrawBareSurface(t *testing.T) {
	screen := newScreen(t, 40, 21)
	w := newWorld(t)
	v := New(screen, w, 0)
	v.Draw()

	surface := tcell.NewRGBColor(185, 185, 185)
	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, halfBlock, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, surface, fg)
	assert.Equal(t, surface, bg)

	assert.True(t, strings.HasPrefix(rowText(screen, 20, 40), "craters  step -1"))
}

func TestDarkestKeepsRims(t *testing.T) {
	g := core.NewRGBGrid(4, 4)
	g.Fill(185)
	g.Set(3, 3, [core.Channels]uint8{50, 50, 50})
	got := darkest(g.Cells(), core.Size{W: 4, H: 4}, 2, 2, 2)
	assert.Equal(t, tcell.NewRGBColor(50, 50, 50), got)
}

func TestHandleKeys(t *testing.T) {
	screen := newScreen(t, 40, 21)
	w := newWorld(t)
	v := New(screen, w, 0)

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	assert.Equal(t, 1, w.StepsTaken())

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, v.Paused())
	v.Tick()
	assert.Equal(t, 1, w.StepsTaken())

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Equal(t, 0, w.StepsTaken())

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestTickStepsWhenDue(t *testing.T) {
	screen := newScreen(t, 40, 21)
	w := newWorld(t)
	v := New(screen, w, 0)
	// The first tick is always due.
	v.Tick()
	assert.Equal(t, 1, w.StepsTaken())
	assert.True(t, strings.HasPrefix(rowText(screen, 20, 40), "craters  step 0"))
}
