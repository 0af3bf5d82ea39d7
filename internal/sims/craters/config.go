package craters

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid crater config")

// Config controls a cratering run.
type Config struct {
	TerrainLength   int
	MinCraterRadius float64
	MaxCraterRadius float64
	SurfaceValue    uint8
	CraterValue     uint8

	// OcclusionFactor is the fraction of a new crater's radius within which
	// older, smaller craters are buried.
	OcclusionFactor float64

	StepCount   int
	BinStep     float64
	OutlineMode bool
	FrameRate   float64

	Seed int64

	// Steps up to and including WarmupSteps never latch saturation.
	WarmupSteps         int
	SaturationThreshold float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TerrainLength:       500,
		MinCraterRadius:     5,
		MaxCraterRadius:     50,
		SurfaceValue:        185,
		CraterValue:         50,
		OcclusionFactor:     0.6,
		StepCount:           200,
		BinStep:             4,
		OutlineMode:         true,
		FrameRate:           15,
		Seed:                1337,
		WarmupSteps:         10,
		SaturationThreshold: 0.8,
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	switch {
	case c.TerrainLength <= 0:
		return fmt.Errorf("%w: terrain length %d must be positive", ErrInvalidConfig, c.TerrainLength)
	case !(c.MinCraterRadius > 0):
		return fmt.Errorf("%w: min crater radius %g must be positive", ErrInvalidConfig, c.MinCraterRadius)
	case !(c.MinCraterRadius < c.MaxCraterRadius):
		return fmt.Errorf("%w: min crater radius %g must be below max %g", ErrInvalidConfig, c.MinCraterRadius, c.MaxCraterRadius)
	case !(c.OcclusionFactor > 0 && c.OcclusionFactor < 1):
		return fmt.Errorf("%w: occlusion factor %g must be in (0,1)", ErrInvalidConfig, c.OcclusionFactor)
	case c.StepCount < 0:
		return fmt.Errorf("%w: step count %d must not be negative", ErrInvalidConfig, c.StepCount)
	case !(c.BinStep > 0):
		return fmt.Errorf("%w: bin step %g must be positive", ErrInvalidConfig, c.BinStep)
	case !(c.FrameRate > 0):
		return fmt.Errorf("%w: frame rate %g must be positive", ErrInvalidConfig, c.FrameRate)
	case c.WarmupSteps < 0:
		return fmt.Errorf("%w: warmup steps %d must not be negative", ErrInvalidConfig, c.WarmupSteps)
	case !(c.SaturationThreshold > 0 && c.SaturationThreshold <= 1):
		return fmt.Errorf("%w: saturation threshold %g must be in (0,1]", ErrInvalidConfig, c.SaturationThreshold)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs),
// starting from DefaultConfig. Unknown keys are ignored; malformed values are
// reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	err := c.Apply(cfg)
	return c, err
}

// Apply overrides fields from a string map.
func (c *Config) Apply(cfg map[string]string) error {
	for key, value := range cfg {
		if err := c.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns a single option by key. Unknown keys are ignored.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "terrain_length":
		c.TerrainLength, err = strconv.Atoi(value)
	case "min_crater_radius":
		c.MinCraterRadius, err = strconv.ParseFloat(value, 64)
	case "max_crater_radius":
		c.MaxCraterRadius, err = strconv.ParseFloat(value, 64)
	case "surface_value":
		c.SurfaceValue, err = parseUint8(value)
	case "crater_value":
		c.CraterValue, err = parseUint8(value)
	case "occlusion_factor":
		c.OcclusionFactor, err = strconv.ParseFloat(value, 64)
	case "step_count":
		c.StepCount, err = strconv.Atoi(value)
	case "bin_step":
		c.BinStep, err = strconv.ParseFloat(value, 64)
	case "outline_mode":
		c.OutlineMode, err = strconv.ParseBool(value)
	case "frame_rate":
		c.FrameRate, err = strconv.ParseFloat(value, 64)
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "warmup_steps":
		c.WarmupSteps, err = strconv.Atoi(value)
	case "saturation_threshold":
		c.SaturationThreshold, err = strconv.ParseFloat(value, 64)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
	}
	return nil
}

func parseUint8(value string) (uint8, error) {
	v, err := strconv.ParseUint(value, 10, 8)
	return uint8(v), err
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TerrainLength, "terrain-length", c.TerrainLength, "side length of the square terrain grid")
	fs.Float64Var(&c.MinCraterRadius, "min-radius", c.MinCraterRadius, "minimum crater radius")
	fs.Float64Var(&c.MaxCraterRadius, "max-radius", c.MaxCraterRadius, "maximum crater radius")
	fs.Func("surface-value", fmt.Sprintf("initial surface colour value (default %d)", c.SurfaceValue), func(s string) (err error) {
		c.SurfaceValue, err = parseUint8(s)
		return err
	})
	fs.Func("crater-value", fmt.Sprintf("crater rim colour value (default %d)", c.CraterValue), func(s string) (err error) {
		c.CraterValue, err = parseUint8(s)
		return err
	})
	fs.Float64Var(&c.OcclusionFactor, "occlusion-factor", c.OcclusionFactor, "fraction of a new crater's radius that buries smaller craters")
	fs.IntVar(&c.StepCount, "steps", c.StepCount, "number of impacts to simulate")
	fs.Float64Var(&c.BinStep, "bin-step", c.BinStep, "radius histogram bin width")
	fs.BoolVar(&c.OutlineMode, "outline", c.OutlineMode, "draw crater rims only instead of filled craters")
	fs.Float64Var(&c.FrameRate, "fps", c.FrameRate, "frames per second for animations and live viewers")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.WarmupSteps, "warmup", c.WarmupSteps, "steps excluded from saturation detection")
	fs.Float64Var(&c.SaturationThreshold, "saturation-threshold", c.SaturationThreshold, "score above which saturation is latched")
}
