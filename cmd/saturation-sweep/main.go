// Command saturation-sweep runs the cratering simulation over a grid of
// occlusion factors and seeds and tabulates when each saturates.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"cratersim/internal/app"
	"cratersim/internal/sims/craters"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	var out floatList
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "saturation-sweep:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := craters.DefaultConfig()
	factors := floatList{0.3, 0.45, 0.6, 0.75, 0.9}
	fs := flag.NewFlagSet("saturation-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	fs.Var(&factors, "factors", "comma separated occlusion factors to sweep")
	runs := fs.Int("runs", 4, "seeds per factor, counting up from -seed")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger, err := app.NewLogger(stderr, *logLevel)
	if err != nil {
		return err
	}

	seeds := make([]int64, max(*runs, 1))
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}

	fmt.Fprintf(stdout, "Sweeping %d occlusion factors x %d seeds (%d workers, %d steps, terrain %d)\n",
		len(factors), len(seeds), *workers, cfg.StepCount, cfg.TerrainLength)
	start := time.Now()
	results, err := craters.Sweep(cfg, factors, seeds, *workers)
	if err != nil {
		return err
	}
	for _, res := range results {
		for _, r := range res.Runs {
			logger.Debug("run", "factor", r.OcclusionFactor, "seed", r.Seed, "visible", r.Report.Visible, "saturation", r.Report.SaturationPoint)
		}
	}

	fmt.Fprintf(stdout, "\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(stdout, "%8s  %9s  %10s  %8s\n", "factor", "saturated", "mean step", "visible")
	for _, res := range results {
		step := "-"
		if res.Saturated > 0 {
			step = fmt.Sprintf("%.1f", res.MeanSaturationStep)
		}
		fmt.Fprintf(stdout, "%8.3f  %4d/%-4d  %10s  %8.1f\n",
			res.OcclusionFactor, res.Saturated, len(res.Runs), step, res.MeanVisible)
	}
	return nil
}
