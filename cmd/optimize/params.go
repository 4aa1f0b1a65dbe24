// Package main provides CMA-ES optimization of robot tuning parameters.
package main

import (
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Policy gains
			{Name: "gain", Path: "sensor.gain", Min: 0.1, Max: 1.5, Default: 0.5},
			{Name: "starve_gain", Path: "robot.starve_gain", Min: 0.1, Max: 1.5, Default: 0.4},
			{Name: "numerator", Path: "sensor.numerator", Min: 200, Max: 1200, Default: 1200},
			// Motion
			{Name: "max_speed", Path: "robot.max_speed", Min: 4, Max: 20, Default: 10},
			{Name: "arc_speed", Path: "robot.arc_speed", Min: 2, Max: 12, Default: 7},
			{Name: "arc_turn", Path: "robot.arc_turn", Min: 0, Max: 10, Default: 4},
			{Name: "arc_ticks", Path: "motion.arc_ticks", Min: 2, Max: 20, Default: 6},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Sensor.Gain = clamped[0]
	cfg.Robot.StarveGain = clamped[1]
	cfg.Sensor.Numerator = clamped[2]
	if cfg.Sensor.MaxNumerator < cfg.Sensor.Numerator {
		cfg.Sensor.MaxNumerator = cfg.Sensor.Numerator
	}
	cfg.Robot.MaxSpeed = clamped[3]
	cfg.Robot.ArcSpeed = clamped[4]
	cfg.Robot.ArcTurn = clamped[5]
	cfg.Motion.ArcTicks = int(clamped[6] + 0.5)
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Sensor.Gain,
		cfg.Robot.StarveGain,
		cfg.Sensor.Numerator,
		cfg.Robot.MaxSpeed,
		cfg.Robot.ArcSpeed,
		cfg.Robot.ArcTurn,
		float64(cfg.Motion.ArcTicks),
	}
}
