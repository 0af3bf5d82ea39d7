package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uniform(0, 500), b.Uniform(0, 500), "draw %d", i)
	}
}

func TestLogUniformBounds(t *testing.T) {
	rng := NewRNG(11)
	below, above := 0, 0
	mid := math.Sqrt(5 * 50)
	for i := 0; i < 4000; i++ {
		v := rng.LogUniform(5, 50)
		require.GreaterOrEqual(t, v, 5.0)
		require.Less(t, v, 50.0)
		if v < mid {
			below++
		} else {
			above++
		}
	}
	// The geometric midpoint splits a log-uniform draw roughly in half.
	assert.InDelta(t, 0.5, float64(below)/float64(below+above), 0.05)
}
