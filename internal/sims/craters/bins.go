package craters

// BinTable holds radius statistics for one step. Thresholds start at the
// minimum radius and advance by the bin step, stopping strictly before the
// maximum radius; the final partial bin is never included.
type BinTable struct {
	Thresholds []float64

	// All and Visible count craters with radius <= the matching threshold.
	All     []int
	Visible []int

	// AllHist and VisibleHist count radii per bin, using Thresholds as edges.
	// Bins are half-open except the last, which includes its upper edge. They
	// have one entry fewer than Thresholds.
	AllHist     []int
	VisibleHist []int
}

// RecomputeBins builds a BinTable from scratch.
func RecomputeBins(all, visible []Crater, minRadius, maxRadius, binStep float64) BinTable {
	var t BinTable
	if !(binStep > 0) {
		return t
	}
	for size := minRadius; size < maxRadius; size += binStep {
		t.Thresholds = append(t.Thresholds, size)
		t.All = append(t.All, countAtMost(all, size))
		t.Visible = append(t.Visible, countAtMost(visible, size))
	}
	t.AllHist = histogram(all, t.Thresholds)
	t.VisibleHist = histogram(visible, t.Thresholds)
	return t
}

func countAtMost(cs []Crater, threshold float64) int {
	n := 0
	for _, c := range cs {
		if c.Radius <= threshold {
			n++
		}
	}
	return n
}

func histogram(cs []Crater, edges []float64) []int {
	if len(edges) < 2 {
		return []int{}
	}
	counts := make([]int, len(edges)-1)
	first, last := edges[0], edges[len(edges)-1]
	for _, c := range cs {
		r := c.Radius
		if r < first || r > last {
			continue
		}
		if r == last {
			counts[len(counts)-1]++
			continue
		}
		// Edges are few, a linear scan is enough.
		for i := 0; i < len(counts); i++ {
			if r < edges[i+1] {
				counts[i]++
				break
			}
		}
	}
	return counts
}

// Clone returns a deep copy of the table.
func (t BinTable) Clone() BinTable {
	return BinTable{
		Thresholds:  append([]float64(nil), t.Thresholds...),
		All:         append([]int(nil), t.All...),
		Visible:     append([]int(nil), t.Visible...),
		AllHist:     append([]int(nil), t.AllHist...),
		VisibleHist: append([]int(nil), t.VisibleHist...),
	}
}
