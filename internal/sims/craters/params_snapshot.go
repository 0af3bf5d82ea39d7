package craters

import (
	"strconv"

	"cratersim/internal/core"
)

// Parameters groups the run configuration for HUDs and reports.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Terrain",
			Params: []core.Parameter{
				intParam("terrain_length", "Terrain length", c.TerrainLength),
				intParam("surface_value", "Surface value", int(c.SurfaceValue)),
				intParam("crater_value", "Crater value", int(c.CraterValue)),
				boolParam("outline_mode", "Outline mode", c.OutlineMode),
			},
		},
		{
			Name: "Impacts",
			Params: []core.Parameter{
				floatParam("min_crater_radius", "Min radius", c.MinCraterRadius),
				floatParam("max_crater_radius", "Max radius", c.MaxCraterRadius),
				floatParam("occlusion_factor", "Occlusion factor", c.OcclusionFactor),
				intParam("step_count", "Steps", c.StepCount),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Statistics",
			Params: []core.Parameter{
				floatParam("bin_step", "Bin step", c.BinStep),
				intParam("warmup_steps", "Warm-up steps", c.WarmupSteps),
				floatParam("saturation_threshold", "Saturation threshold", c.SaturationThreshold),
				floatParam("frame_rate", "Frame rate", c.FrameRate),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
