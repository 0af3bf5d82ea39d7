package craters

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*Config){
		"zero terrain":        func(c *Config) { c.TerrainLength = 0 },
		"negative terrain":    func(c *Config) { c.TerrainLength = -3 },
		"min equals max":      func(c *Config) { c.MinCraterRadius = 50 },
		"min above max":       func(c *Config) { c.MinCraterRadius = 60 },
		"zero min radius":     func(c *Config) { c.MinCraterRadius = 0 },
		"factor zero":         func(c *Config) { c.OcclusionFactor = 0 },
		"factor one":          func(c *Config) { c.OcclusionFactor = 1 },
		"negative steps":      func(c *Config) { c.StepCount = -1 },
		"zero bin step":       func(c *Config) { c.BinStep = 0 },
		"zero frame rate":     func(c *Config) { c.FrameRate = 0 },
		"negative warmup":     func(c *Config) { c.WarmupSteps = -1 },
		"threshold above one": func(c *Config) { c.SaturationThreshold = 1.2 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
			_, err := NewWithConfig(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"terrain_length":    "128",
		"min_crater_radius": "2.5",
		"surface_value":     "200",
		"occlusion_factor":  "0.3",
		"outline_mode":      "false",
		"seed":              "-4",
		"unknown":           "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.TerrainLength)
	assert.Equal(t, 2.5, cfg.MinCraterRadius)
	assert.Equal(t, uint8(200), cfg.SurfaceValue)
	assert.Equal(t, 0.3, cfg.OcclusionFactor)
	assert.False(t, cfg.OutlineMode)
	assert.Equal(t, int64(-4), cfg.Seed)
	assert.Equal(t, DefaultConfig().MaxCraterRadius, cfg.MaxCraterRadius)

	// Overrides must be visible in the returned value, not only in the error path.
	cfg, err = FromMap(map[string]string{"occlusion_factor": "0.45"})
	require.NoError(t, err)
	assert.Equal(t, 0.45, cfg.OcclusionFactor)

	_, err = FromMap(map[string]string{"surface_value": "300"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = FromMap(map[string]string{"step_count": "many"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-steps", "2500", "-occlusion-factor", "0.45", "-crater-value", "70", "-outline=false"}))
	assert.Equal(t, 2500, cfg.StepCount)
	assert.Equal(t, 0.45, cfg.OcclusionFactor)
	assert.Equal(t, uint8(70), cfg.CraterValue)
	assert.False(t, cfg.OutlineMode)
	assert.NoError(t, cfg.Validate())
}
