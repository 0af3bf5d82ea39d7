package craters

import "math"

// Crater is a single impact. Craters are values and never change once placed.
type Crater struct {
	X, Y   float64
	Radius float64
}

// Distance returns the Euclidean distance between two crater centres.
func Distance(a, b Crater) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Visible reports whether existing stays visible after candidate lands.
// Only a strictly larger candidate can bury an existing crater, and only when
// the centres are within occlusionFactor*candidate.Radius (inclusive).
func Visible(existing, candidate Crater, occlusionFactor float64) bool {
	if candidate.Radius <= existing.Radius {
		return true
	}
	return Distance(existing, candidate) > occlusionFactor*candidate.Radius
}

// Registry holds the full crater history and the currently visible subset.
type Registry struct {
	// All is append-only and in chronological order.
	All []Crater
	// Visible is a subset of All. Order is preserved across removals.
	Visible []Crater
}

// Occlude removes every visible crater buried by candidate and returns how
// many were removed. The candidate itself is not added.
func (r *Registry) Occlude(candidate Crater, occlusionFactor float64) int {
	kept := r.Visible[:0]
	removed := 0
	for _, c := range r.Visible {
		if Visible(c, candidate, occlusionFactor) {
			kept = append(kept, c)
			continue
		}
		removed++
	}
	clear(r.Visible[len(kept):])
	r.Visible = kept
	return removed
}

// Add records a new crater in both populations.
func (r *Registry) Add(c Crater) {
	r.All = append(r.All, c)
	r.Visible = append(r.Visible, c)
}

// Reset drops all craters.
func (r *Registry) Reset() {
	r.All = nil
	r.Visible = nil
}
