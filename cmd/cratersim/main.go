// Command cratersim runs a cratering saturation simulation headlessly and
// writes its frames, key frames, animation and crater catalog.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"cratersim/internal/app"
	"cratersim/internal/core"
	"cratersim/internal/output"
	"cratersim/internal/render"
	"cratersim/internal/sims/craters"
)

type options struct {
	cfg       craters.Config
	sim       string
	overrides app.KVList

	out        string
	frames     bool
	terrain    bool
	width      int
	height     int
	workers    int
	gif        bool
	gifFrames  int
	keepFrames bool
	catalog    bool
	logLevel   string
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("cratersim", flag.ContinueOnError)
	o.cfg.Bind(fs)
	fs.StringVar(&o.sim, "sim", o.sim, "preset to start from")
	fs.Var(&o.overrides, "set", "option override in key=value form (repeatable)")
	fs.StringVar(&o.out, "out", o.out, "output directory")
	fs.BoolVar(&o.frames, "frames", o.frames, "write one image per step")
	fs.BoolVar(&o.terrain, "terrain-only", o.terrain, "write bare terrain images instead of the full figure")
	fs.IntVar(&o.width, "width", o.width, "figure width in pixels")
	fs.IntVar(&o.height, "height", o.height, "figure height in pixels")
	fs.IntVar(&o.workers, "workers", o.workers, "parallel image encoders")
	fs.BoolVar(&o.gif, "gif", o.gif, "assemble the frames into animation.gif")
	fs.IntVar(&o.gifFrames, "gif-frames", o.gifFrames, "maximum frames in the animation (0 keeps all)")
	fs.BoolVar(&o.keepFrames, "keep-frames", o.keepFrames, "keep per-step images after assembling outputs")
	fs.BoolVar(&o.catalog, "catalog", o.catalog, "write craters.geojson")
	fs.StringVar(&o.logLevel, "log-level", o.logLevel, "log level (debug, info, warn, error)")
	return fs
}

func defaultOptions(cfg craters.Config) options {
	return options{
		cfg:        cfg,
		sim:        "craters",
		out:        "output",
		frames:     true,
		width:      1000,
		height:     800,
		workers:    runtime.NumCPU(),
		gifFrames:  300,
		keepFrames: true,
		logLevel:   "info",
	}
}

// parseArgs resolves the preset first so that explicit flags override it.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	probe := defaultOptions(craters.DefaultConfig())
	pfs := newFlagSet(&probe)
	pfs.SetOutput(io.Discard)
	// Parse errors are reported by the second pass.
	_ = pfs.Parse(args)

	base, err := craters.PresetConfig(probe.sim)
	if err != nil {
		return options{}, err
	}
	o := defaultOptions(base)
	fs := newFlagSet(&o)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := o.cfg.Apply(o.overrides.Map()); err != nil {
		return options{}, err
	}
	if err := o.cfg.Validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "cratersim:", err)
		if errors.Is(err, craters.ErrInvalidConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	logger, err := app.NewLogger(stderr, o.logLevel)
	if err != nil {
		return err
	}

	world, err := craters.NewWithConfig(o.cfg)
	if err != nil {
		return err
	}
	world.SetLogger(logger)

	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return err
	}
	fs := osfs.New(o.out)
	logger.Info("starting run", "preset", o.sim, "steps", o.cfg.StepCount, "terrain", o.cfg.TerrainLength,
		"occlusion", o.cfg.OcclusionFactor, "seed", o.cfg.Seed, "out", o.out)

	rep, err := runWorld(world, fs, o, logger)
	if err != nil {
		return err
	}
	printParameters(stdout, world.Parameters())
	fmt.Fprintln(stdout, rep)

	if o.frames {
		if err := finishFrames(fs, rep, o, stdout, logger); err != nil {
			return err
		}
	}
	if o.catalog {
		if err := output.WriteCatalog(fs, "craters.geojson", world.Craters(), world.VisibleCraters()); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		logger.Info("catalog written", "file", fs.Join(o.out, "craters.geojson"), "craters", len(world.Craters()))
	}
	return nil
}

func runWorld(world *craters.World, fs billy.Filesystem, o options, logger *log.Logger) (craters.Report, error) {
	if !o.frames {
		return world.Run(nil)
	}
	renderFrame := output.FigureRenderer(render.NewFigure(o.width, o.height))
	if o.terrain {
		renderFrame = output.TerrainRenderer
	}
	w, err := output.NewWriter(fs, output.Options{
		Dir:     "images",
		Workers: o.workers,
		Render:  renderFrame,
		Logger:  logger,
	})
	if err != nil {
		return craters.Report{}, err
	}
	rep, runErr := world.Run(w)
	return rep, errors.Join(runErr, w.Close())
}

func finishFrames(fs billy.Filesystem, rep craters.Report, o options, stdout io.Writer, logger *log.Logger) error {
	keys, err := output.CopyKeyFrames(fs, "key", rep.KeyFrames())
	if err != nil {
		return err
	}
	for i, k := range rep.KeyFrames() {
		if i < len(keys) {
			fmt.Fprintf(stdout, "key frame %3d%%: step %d -> %s\n", k.Percent, k.Step, fs.Join(o.out, keys[i]))
		}
	}

	if o.gif && len(rep.Frames) > 0 {
		frames := output.Subsample(rep.Frames, o.gifFrames)
		if err := output.AssembleGIF(fs, frames, "animation.gif", o.cfg.FrameRate); err != nil {
			return err
		}
		logger.Info("animation written", "file", fs.Join(o.out, "animation.gif"), "frames", len(frames))
	}
	if !o.keepFrames {
		if err := output.RemoveFrames(fs, rep.Frames); err != nil {
			return fmt.Errorf("remove frames: %w", err)
		}
		logger.Debug("intermediate frames removed", "count", len(rep.Frames))
	}
	return nil
}

func printParameters(w io.Writer, s core.ParameterSnapshot) {
	for _, g := range s.Groups {
		fmt.Fprintf(w, "%s:\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %-22s %s\n", p.Label, p.Value)
		}
	}
}
