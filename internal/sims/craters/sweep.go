package craters

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SweepRun is the outcome of one run within a sweep.
type SweepRun struct {
	OcclusionFactor float64
	Seed            int64
	Report          Report
}

// SweepResult aggregates the runs sharing an occlusion factor.
type SweepResult struct {
	OcclusionFactor float64
	Runs            []SweepRun
	Saturated       int
	// MeanSaturationStep averages over saturated runs only; it is zero when
	// none saturated.
	MeanSaturationStep float64
	MeanVisible        float64
}

// Sweep runs base once per (factor, seed) pair on a bounded pool of workers
// and aggregates by factor, preserving the order of factors and seeds.
func Sweep(base Config, factors []float64, seeds []int64, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = 1
	}
	for _, f := range factors {
		cfg := base
		cfg.OcclusionFactor = f
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	runs := make([]SweepRun, len(factors)*len(seeds))
	var g errgroup.Group
	g.SetLimit(workers)
	for fi, factor := range factors {
		for si, seed := range seeds {
			idx := fi*len(seeds) + si
			g.Go(func() error {
				cfg := base
				cfg.OcclusionFactor = factor
				cfg.Seed = seed
				w, err := NewWithConfig(cfg)
				if err != nil {
					return err
				}
				rep, err := w.Run(nil)
				if err != nil {
					return fmt.Errorf("factor %g seed %d: %w", factor, seed, err)
				}
				runs[idx] = SweepRun{OcclusionFactor: factor, Seed: seed, Report: rep}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(factors))
	for fi, factor := range factors {
		res := SweepResult{OcclusionFactor: factor, Runs: runs[fi*len(seeds) : (fi+1)*len(seeds)]}
		var satSum, visSum float64
		for _, r := range res.Runs {
			visSum += float64(r.Report.Visible)
			if r.Report.Saturated() {
				res.Saturated++
				satSum += float64(r.Report.SaturationPoint)
			}
		}
		if n := len(res.Runs); n > 0 {
			res.MeanVisible = visSum / float64(n)
		}
		if res.Saturated > 0 {
			res.MeanSaturationStep = satSum / float64(res.Saturated)
		}
		results[fi] = res
	}
	return results, nil
}
