package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBGridSetAt(t *testing.T) {
	g := NewRGBGrid(4, 3)
	g.Fill(185)
	require.Len(t, g.Cells(), 4*3*Channels)
	assert.Equal(t, [Channels]uint8{185, 185, 185}, g.At(3, 2))

	g.Set(1, 2, [Channels]uint8{255, 50, 50})
	assert.Equal(t, [Channels]uint8{255, 50, 50}, g.At(1, 2))
	assert.Equal(t, uint8(255), g.Cells()[g.Index(1, 2)])

	// Out of range writes are dropped and reads return zero.
	g.Set(-1, 0, [Channels]uint8{1, 2, 3})
	g.Set(4, 0, [Channels]uint8{1, 2, 3})
	assert.Equal(t, [Channels]uint8{}, g.At(0, 3))
	for _, v := range g.Cells() {
		assert.NotEqual(t, uint8(1), v)
	}
}

func TestRGBGridCloneIsDeep(t *testing.T) {
	g := NewRGBGrid(2, 2)
	c := g.Clone()
	g.Set(0, 0, [Channels]uint8{9, 9, 9})
	assert.Equal(t, [Channels]uint8{}, c.At(0, 0))
}

func TestNewRGBGridClampsDimensions(t *testing.T) {
	g := NewRGBGrid(0, -5)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)
}
