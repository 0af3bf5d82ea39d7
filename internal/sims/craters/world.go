package craters

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"cratersim/internal/core"
	prng "cratersim/pkg/core"
)

// World is the state of one cratering run. It is owned by its caller and is
// not safe for concurrent use.
type World struct {
	cfg  Config
	name string

	grid     *core.RGBGrid
	reg      Registry
	series   Series
	bins     BinTable
	detector Detector
	rng      *prng.RNG

	steps       int
	lastRemoved int

	logger *log.Logger
}

// NewWithConfig validates cfg and returns a World reset with cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		name:   "craters",
		grid:   core.NewRGBGrid(cfg.TerrainLength, cfg.TerrainLength),
		logger: log.New(io.Discard),
	}
	w.Reset(0)
	return w, nil
}

// SetLogger routes run events to l. A nil logger silences them.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.logger = l
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Pixels exposes the terrain grid bytes.
func (w *World) Pixels() []uint8 { return w.grid.Cells() }

// Grid exposes the terrain grid.
func (w *World) Grid() *core.RGBGrid { return w.grid }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Craters returns the full crater history.
func (w *World) Craters() []Crater { return w.reg.All }

// VisibleCraters returns the craters not yet buried.
func (w *World) VisibleCraters() []Crater { return w.reg.Visible }

// Series returns the time series recorded so far.
func (w *World) Series() *Series { return &w.series }

// Bins returns the bin table for the current step.
func (w *World) Bins() BinTable { return w.bins }

// StepsTaken reports how many steps have run since the last reset.
func (w *World) StepsTaken() int { return w.steps }

// Done reports whether the configured step count has been reached.
func (w *World) Done() bool { return w.steps >= w.cfg.StepCount }

// SaturationPoint returns the latched saturation step, if any.
func (w *World) SaturationPoint() (int, bool) { return w.detector.Point() }

// Reset restores the bare surface and clears all history. A zero seed uses
// the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = prng.NewRNG(seed)
	w.grid.Fill(w.cfg.SurfaceValue)
	w.reg.Reset()
	w.series = Series{}
	w.detector = NewDetector(w.cfg.WarmupSteps, w.cfg.SaturationThreshold)
	w.steps = 0
	w.lastRemoved = 0
	w.bins = RecomputeBins(nil, nil, w.cfg.MinCraterRadius, w.cfg.MaxCraterRadius, w.cfg.BinStep)
}

// Step places one random crater. It does nothing once the run is done.
func (w *World) Step() {
	if w.Done() {
		return
	}
	w.Place(w.nextCrater())
}

func (w *World) nextCrater() Crater {
	l := float64(w.cfg.TerrainLength)
	return Crater{
		X:      w.rng.Uniform(0, l),
		Y:      w.rng.Uniform(0, l),
		Radius: w.rng.LogUniform(w.cfg.MinCraterRadius, w.cfg.MaxCraterRadius),
	}
}

// Place runs one full step with the given crater as the impact: occlusion,
// rasterization, statistics and saturation detection. It returns the number
// of craters the impact buried.
func (w *World) Place(c Crater) int {
	step := w.steps
	removed := w.reg.Occlude(c, w.cfg.OcclusionFactor)
	w.reg.Add(c)
	DrawCrater(w.grid, c, w.cfg.CraterValue, removed > 0, !w.cfg.OutlineMode)

	score := w.series.Record(step, len(w.reg.All), len(w.reg.Visible), removed)
	w.bins = RecomputeBins(w.reg.All, w.reg.Visible, w.cfg.MinCraterRadius, w.cfg.MaxCraterRadius, w.cfg.BinStep)
	if w.detector.Observe(step, score) {
		w.logger.Info("saturation detected", "step", step, "score", score, "visible", len(w.reg.Visible))
	}
	if removed > 0 {
		w.logger.Debug("impact buried craters", "step", step, "radius", c.Radius, "removed", removed)
	}

	w.steps++
	w.lastRemoved = removed
	return removed
}

// Score returns the most recent saturation score, or 0 before the first step.
func (w *World) Score() float64 {
	if n := len(w.series.Score); n > 0 {
		return w.series.Score[n-1]
	}
	return 0
}

// Status summarises the latest step for viewers.
func (w *World) Status() core.Status {
	point, ok := w.detector.Point()
	return core.Status{
		Step:            w.steps - 1,
		Total:           len(w.reg.All),
		Visible:         len(w.reg.Visible),
		Score:           w.Score(),
		SaturationPoint: point,
		Saturated:       ok,
		Done:            w.Done(),
	}
}

// Frame is a self-contained snapshot of one step, safe to hand to another
// goroutine.
type Frame struct {
	Step            int
	Grid            *core.RGBGrid
	Bins            BinTable
	Series          Series
	Score           float64
	Removed         int
	SaturationPoint int
}

// Frame snapshots the current state.
func (w *World) Frame() Frame {
	point, _ := w.detector.Point()
	return Frame{
		Step:            w.steps - 1,
		Grid:            w.grid.Clone(),
		Bins:            w.bins.Clone(),
		Series:          w.series.Clone(),
		Score:           w.Score(),
		Removed:         w.lastRemoved,
		SaturationPoint: point,
	}
}

// FrameSink consumes per-step frames and names the artifact it produced.
type FrameSink interface {
	Emit(f Frame) (artifact string, err error)
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(f Frame) (string, error)

// Emit calls fn(f).
func (fn FrameSinkFunc) Emit(f Frame) (string, error) { return fn(f) }

// Report is the outcome of a completed run.
type Report struct {
	Steps           int
	Total           int
	Visible         int
	SaturationPoint int
	Frames          []string
}

// Saturated reports whether a saturation point was latched.
func (r Report) Saturated() bool { return r.SaturationPoint != NoSaturation }

// String renders the final text report.
func (r Report) String() string {
	if !r.Saturated() {
		return fmt.Sprintf("%d impacts, %d visible craters; saturation not detected", r.Total, r.Visible)
	}
	return fmt.Sprintf("%d impacts, %d visible craters; saturation point at step %d", r.Total, r.Visible, r.SaturationPoint)
}

// Run advances the world until the configured step count, emitting one frame
// per step to sink (which may be nil). A sink error aborts the run.
func (w *World) Run(sink FrameSink) (Report, error) {
	var frames []string
	for !w.Done() {
		w.Step()
		if sink == nil {
			continue
		}
		artifact, err := sink.Emit(w.Frame())
		if err != nil {
			return w.report(frames), fmt.Errorf("emit frame %d: %w", w.steps-1, err)
		}
		frames = append(frames, artifact)
	}
	rep := w.report(frames)
	w.logger.Info("run complete", "steps", rep.Steps, "visible", rep.Visible, "saturation", rep.SaturationPoint)
	return rep, nil
}

func (w *World) report(frames []string) Report {
	point, _ := w.detector.Point()
	return Report{
		Steps:           w.steps,
		Total:           len(w.reg.All),
		Visible:         len(w.reg.Visible),
		SaturationPoint: point,
		Frames:          frames,
	}
}

// KeyFrame is a representative frame chosen from a report.
type KeyFrame struct {
	Percent  int
	Step     int
	Artifact string
}

// KeyFramePercents are the checkpoints used by KeyFrames.
var KeyFramePercents = []int{25, 50, 75, 100}

// KeyFrames picks frames 25/50/75/100% of the way to the saturation point, or
// through the whole run when saturation was not detected.
func (r Report) KeyFrames() []KeyFrame {
	if r.Steps == 0 {
		return nil
	}
	target := r.Steps - 1
	if r.Saturated() && r.SaturationPoint < target {
		target = r.SaturationPoint
	}
	keys := make([]KeyFrame, 0, len(KeyFramePercents))
	for _, pct := range KeyFramePercents {
		step := target * pct / 100
		k := KeyFrame{Percent: pct, Step: step}
		if step < len(r.Frames) {
			k.Artifact = r.Frames[step]
		}
		keys = append(keys, k)
	}
	return keys
}

// Presets are the registered configurations, as overrides of DefaultConfig.
var Presets = map[string]map[string]string{
	"craters":         nil,
	"craters-shallow": {"occlusion_factor": "0.3"},
	"craters-filled":  {"outline_mode": "false"},
}

// PresetConfig returns the configuration for a named preset.
func PresetConfig(name string) (Config, error) {
	preset, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return FromMap(preset)
}

func init() {
	for name := range Presets {
		core.Register(name, func(overrides map[string]string) (core.Sim, error) {
			cfg, err := PresetConfig(name)
			if err != nil {
				return nil, err
			}
			if err := cfg.Apply(overrides); err != nil {
				return nil, err
			}
			w, err := NewWithConfig(cfg)
			if err != nil {
				return nil, err
			}
			w.name = name
			return w, nil
		})
	}
}
