package config

import (
	_ "embed"
)

//go:embed defaults/playground.yaml
var defaultPlaygroundYAML []byte

//go:embed defaults/bouncer.yaml
var defaultBouncerYAML []byte

// DefaultPlaygroundConfig returns the default playground configuration.
func DefaultPlaygroundConfig() PlaygroundConfig {
	return PlaygroundConfig{
		Arena: ArenaConfig{MarginX: 1, MarginTop: 2, MarginBot: 1},
		Player: PlayerConfig{
			Width:          3,
			Height:         2,
			Speed:          0.5,
			BounceDistance: 1,
		},
		Blocks: []BlockConfig{
			{X: 0.20, Y: 0.25, W: 0.15, H: 0.15},
			{X: 0.60, Y: 0.20, W: 0.10, H: 0.40},
			{X: 0.35, Y: 0.70, W: 0.30, H: 0.10},
		},
		Telemetry: TelemetryConfig{RecordAnomalies: true},
	}
}

// DefaultBouncerConfig returns the default bouncer configuration.
func DefaultBouncerConfig() BouncerConfig {
	return BouncerConfig{
		Arena: ArenaConfig{MarginX: 1, MarginTop: 2, MarginBot: 1},
		Boxes: BoxesConfig{
			Count:    12,
			MinSize:  1,
			MaxSize:  3,
			MinSpeed: 6,
			MaxSpeed: 18,
		},
		Blocks: []BlockConfig{
			{X: 0.45, Y: 0.40, W: 0.10, H: 0.20},
		},
		Ramp: RampConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Type:         "bounces",
			MaxAt:        200,
			Multiplier:   1.0,
		},
		Telemetry: TelemetryConfig{RecordAnomalies: true},
	}
}
