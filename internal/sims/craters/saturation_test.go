package craters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlope(t *testing.T) {
	tests := []struct {
		name   string
		series []int
		f      float64
		want   float64
	}{
		{"empty", nil, 1, 0},
		{"single", []int{1}, 1, 0},
		{"half of three", []int{1, 2, 3}, 0.5, 0},
		{"full of two", []int{1, 2}, 1, 1},
		{"half of four", []int{1, 2, 3, 5}, 0.5, 2},
		{"full of five", []int{1, 2, 2, 3, 3}, 1, 0.5},
		{"ninety of ten", []int{1, 2, 3, 4, 5, 6, 6, 6, 6, 6}, 0.9, 0.5},
		{"declining", []int{5, 4, 3, 2, 1}, 1, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Slope(tc.series, tc.f), 1e-12)
		})
	}
}

func TestSaturationScoreClamps(t *testing.T) {
	assert.Equal(t, 1.0, SaturationScore(-0.5))
	assert.Equal(t, 0.0, SaturationScore(1.5))
	assert.InDelta(t, 0.75, SaturationScore(0.25), 1e-12)
}

func TestSeriesRecord(t *testing.T) {
	var s Series
	assert.Equal(t, 1.0, s.Record(0, 1, 1, 0), "no history means no slope")
	assert.InDelta(t, 0.75, s.Record(1, 2, 2, 0), 1e-12)
	assert.InDelta(t, 0.25, s.Record(2, 3, 3, 0), 1e-12)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, s.Total)
	assert.Equal(t, []float64{0, 0, 0}, s.Slope50)
	assert.Equal(t, []float64{0, 1, 1}, s.Slope100)

	c := s.Clone()
	s.Visible[0] = 99
	assert.Equal(t, 1, c.Visible[0])
}

func TestDetectorLatchesOnceAfterWarmup(t *testing.T) {
	d := NewDetector(10, 0.8)
	for step := 0; step <= 10; step++ {
		require.False(t, d.Observe(step, 1), "step %d is warm-up", step)
	}
	_, ok := d.Point()
	require.False(t, ok)

	assert.False(t, d.Observe(11, 0.8), "threshold is exclusive")
	assert.True(t, d.Observe(12, 0.81))
	assert.False(t, d.Observe(13, 1))

	point, ok := d.Point()
	assert.True(t, ok)
	assert.Equal(t, 12, point)
}

func TestZeroDetectorIsUnlatched(t *testing.T) {
	var d Detector
	point, ok := d.Point()
	assert.False(t, ok)
	assert.Equal(t, NoSaturation, point)
}
