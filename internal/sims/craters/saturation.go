package craters

import "math"

// NoSaturation is reported when a run never latched a saturation point.
const NoSaturation = -1

// SlopeWindows are the fractions of history over which slopes are measured.
var SlopeWindows = [4]float64{0.5, 0.75, 0.90, 1.0}

// Slope returns the average per-step change across the most recent fraction f
// of series. Too little history yields 0.
func Slope(series []int, f float64) float64 {
	interval := int(math.Floor(float64(len(series))*f)) - 1
	if interval <= 0 {
		return 0
	}
	last := len(series) - 1
	if interval > last {
		interval = last
	}
	return float64(series[last]-series[last-interval]) / float64(interval)
}

// SaturationScore maps a mean slope to [0,1]; 1 means the visible population
// has stopped growing.
func SaturationScore(meanSlope float64) float64 {
	return math.Min(1, math.Max(0, 1-meanSlope))
}

// Series is the per-step time series of a run.
type Series struct {
	Steps   []int
	Total   []int
	Visible []int
	Removed []int

	Slope50   []float64
	Slope75   []float64
	Slope90   []float64
	Slope100  []float64
	MeanSlope []float64
	Score     []float64
}

// Record appends one step and returns its saturation score.
func (s *Series) Record(step, total, visible, removed int) float64 {
	s.Steps = append(s.Steps, step)
	s.Total = append(s.Total, total)
	s.Visible = append(s.Visible, visible)
	s.Removed = append(s.Removed, removed)

	var slopes [len(SlopeWindows)]float64
	mean := 0.0
	for i, f := range SlopeWindows {
		slopes[i] = Slope(s.Visible, f)
		mean += slopes[i]
	}
	mean /= float64(len(SlopeWindows))
	score := SaturationScore(mean)

	s.Slope50 = append(s.Slope50, slopes[0])
	s.Slope75 = append(s.Slope75, slopes[1])
	s.Slope90 = append(s.Slope90, slopes[2])
	s.Slope100 = append(s.Slope100, slopes[3])
	s.MeanSlope = append(s.MeanSlope, mean)
	s.Score = append(s.Score, score)
	return score
}

// Len reports the number of recorded steps.
func (s *Series) Len() int { return len(s.Steps) }

// Clone returns a deep copy of the series.
func (s *Series) Clone() Series {
	return Series{
		Steps:     append([]int(nil), s.Steps...),
		Total:     append([]int(nil), s.Total...),
		Visible:   append([]int(nil), s.Visible...),
		Removed:   append([]int(nil), s.Removed...),
		Slope50:   append([]float64(nil), s.Slope50...),
		Slope75:   append([]float64(nil), s.Slope75...),
		Slope90:   append([]float64(nil), s.Slope90...),
		Slope100:  append([]float64(nil), s.Slope100...),
		MeanSlope: append([]float64(nil), s.MeanSlope...),
		Score:     append([]float64(nil), s.Score...),
	}
}

// Detector latches the first step after the warm-up whose score exceeds the
// threshold. Once latched the point never changes.
type Detector struct {
	Warmup    int
	Threshold float64

	point   int
	latched bool
}

// NewDetector returns an unlatched detector.
func NewDetector(warmup int, threshold float64) Detector {
	return Detector{Warmup: warmup, Threshold: threshold}
}

// Observe feeds one step's score and reports whether this call latched.
func (d *Detector) Observe(step int, score float64) bool {
	if d.latched || step <= d.Warmup || !(score > d.Threshold) {
		return false
	}
	d.point = step
	d.latched = true
	return true
}

// Point returns the latched step, if any.
func (d *Detector) Point() (int, bool) {
	if !d.latched {
		return NoSaturation, false
	}
	return d.point, true
}
