package craters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prng "cratersim/pkg/core"
)

func TestRecomputeBinsThresholds(t *testing.T) {
	table := RecomputeBins(nil, nil, 5, 50, 4)
	assert.Equal(t, []float64{5, 9, 13, 17, 21, 25, 29, 33, 37, 41, 45, 49}, table.Thresholds)
	assert.Equal(t, make([]int, 12), table.All)
	assert.Equal(t, make([]int, 11), table.AllHist)

	// A threshold equal to the maximum is excluded.
	table = RecomputeBins(nil, nil, 5, 13, 4)
	assert.Equal(t, []float64{5, 9}, table.Thresholds)
}

func TestRecomputeBinsCounts(t *testing.T) {
	all := []Crater{{Radius: 5}, {Radius: 6}, {Radius: 9}, {Radius: 12}, {Radius: 13}, {Radius: 20}}
	visible := []Crater{{Radius: 6}, {Radius: 13}, {Radius: 20}}
	table := RecomputeBins(all, visible, 5, 18, 4)

	require.Equal(t, []float64{5, 9, 13, 17}, table.Thresholds)
	assert.Equal(t, []int{1, 3, 5, 5}, table.All)
	assert.Equal(t, []int{0, 1, 2, 2}, table.Visible)
	// [5,9) [9,13) [13,17]; radius 20 is out of range.
	assert.Equal(t, []int{2, 2, 1}, table.AllHist)
	assert.Equal(t, []int{1, 0, 1}, table.VisibleHist)
}

func TestHistogramLastBinIsClosed(t *testing.T) {
	table := RecomputeBins([]Crater{{Radius: 13}}, nil, 5, 14, 4)
	require.Equal(t, []float64{5, 9, 13}, table.Thresholds)
	assert.Equal(t, []int{0, 1}, table.AllHist)
}

func TestCumulativeCountsNonDecreasing(t *testing.T) {
	rng := prng.NewRNG(9)
	var all, visible []Crater
	for i := 0; i < 300; i++ {
		c := Crater{Radius: rng.LogUniform(5, 50)}
		all = append(all, c)
		if i%3 == 0 {
			visible = append(visible, c)
		}
	}
	table := RecomputeBins(all, visible, 5, 50, 4)
	for i := 1; i < len(table.Thresholds); i++ {
		assert.GreaterOrEqual(t, table.All[i], table.All[i-1])
		assert.GreaterOrEqual(t, table.Visible[i], table.Visible[i-1])
		assert.GreaterOrEqual(t, table.All[i], table.Visible[i])
	}
}

func TestRecomputeBinsRejectsNonPositiveStep(t *testing.T) {
	assert.Empty(t, RecomputeBins(nil, nil, 5, 50, 0).Thresholds)
	assert.Empty(t, RecomputeBins(nil, nil, 5, 50, -1).Thresholds)
}
