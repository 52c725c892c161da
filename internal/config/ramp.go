package config

import "math"

// Ramp calculates the speed factor of the bouncer demo from the number of
// bounces or ticks so far.
type Ramp struct {
	cfg RampConfig
}

// NewRamp creates a ramp from its config.
func NewRamp(cfg RampConfig) *Ramp {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &Ramp{cfg: cfg}
}

// IsEnabled returns whether the ramp changes over time.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Type != "none"
}

// Level returns the current ramp level (0.0 to 1.0).
func (r *Ramp) Level(bounces, ticks int) float64 {
	if !r.IsEnabled() {
		return r.cfg.InitialLevel
	}

	maxAt := float64(r.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch r.cfg.Type {
	case "bounces":
		progress = float64(bounces) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return r.cfg.InitialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	return r.cfg.InitialLevel + progress*(1.0-r.cfg.InitialLevel)
}

// Factor returns the multiplier applied to box velocities.
func (r *Ramp) Factor(bounces, ticks int) float64 {
	return 1.0 + r.Level(bounces, ticks)*r.cfg.Multiplier
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
