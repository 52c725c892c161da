// Package config provides YAML-based demo configuration loading and
// speed presets for the bounce harness.
package config

import (
	"errors"
	"fmt"
)

// PlaygroundConfig contains all configuration for the playground demo.
type PlaygroundConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Blocks    []BlockConfig   `yaml:"blocks"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// BouncerConfig contains all configuration for the bouncer demo.
type BouncerConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Boxes     BoxesConfig     `yaml:"boxes"`
	Blocks    []BlockConfig   `yaml:"blocks"`
	Ramp      RampConfig      `yaml:"ramp"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ArenaConfig places the arena on the screen. Margins are in cells.
type ArenaConfig struct {
	MarginX   int `yaml:"margin_x"`
	MarginTop int `yaml:"margin_top"` // leaves room for the HUD
	MarginBot int `yaml:"margin_bottom"`
}

// PlayerConfig defines the player box. Sizes are in cells, speed is the
// fraction of the arena's smaller side covered per second.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	BounceDistance float64 `yaml:"bounce_distance"` // cells moved on a bounce
}

// BlockConfig is a static obstacle. X, Y, W and H are fractions of the
// arena size, so layouts scale with the terminal.
type BlockConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BoxesConfig defines the autonomous boxes of the bouncer demo.
type BoxesConfig struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"` // cells per second
	MaxSpeed float64 `yaml:"max_speed"`
}

// RampConfig defines how box speed grows while the demo runs.
type RampConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = base speed, 1.0 = full ramp
	Type         string  `yaml:"type"`          // "bounces", "time", or "none"
	MaxAt        int     `yaml:"max_at"`        // bounces/ticks at which the ramp peaks
	Multiplier   float64 `yaml:"multiplier"`    // added to the speed factor at full ramp
}

// TelemetryConfig controls what the collision checker reports.
type TelemetryConfig struct {
	RecordAnomalies bool `yaml:"record_anomalies"`
}

// Preset is a named speed level.
type Preset string

const (
	PresetSlow   Preset = "slow"
	PresetNormal Preset = "normal"
	PresetFast   Preset = "fast"
)

// ErrUnknownPreset is returned by ParsePreset for unknown names.
var ErrUnknownPreset = errors.New("config: unknown preset")

// ParsePreset parses a preset name. The empty string means PresetNormal.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "":
		return PresetNormal, nil
	case PresetSlow, PresetNormal, PresetFast:
		return p, nil
	}
	return "", fmt.Errorf("%w %q (want slow, normal or fast)", ErrUnknownPreset, s)
}

// SpeedFactor returns the speed multiplier for a preset.
func SpeedFactor(p Preset) float64 {
	switch p {
	case PresetSlow:
		return 0.5
	case PresetFast:
		return 1.75
	default:
		return 1.0
	}
}

// Validate checks that the playground config can be run.
func (c PlaygroundConfig) Validate() error {
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	}
	if c.Player.Speed < 0 || c.Player.BounceDistance < 0 {
		return errors.New("config: player speed and bounce_distance must not be negative")
	}
	return validateBlocks(c.Blocks)
}

// Validate checks that the bouncer config can be run.
func (c BouncerConfig) Validate() error {
	b := c.Boxes
	if b.Count < 0 {
		return fmt.Errorf("config: boxes.count must not be negative, got %d", b.Count)
	}
	if b.MinSize <= 0 || b.MaxSize < b.MinSize {
		return fmt.Errorf("config: invalid box size range [%g, %g]", b.MinSize, b.MaxSize)
	}
	if b.MinSpeed < 0 || b.MaxSpeed < b.MinSpeed {
		return fmt.Errorf("config: invalid box speed range [%g, %g]", b.MinSpeed, b.MaxSpeed)
	}
	return validateBlocks(c.Blocks)
}

func validateBlocks(blocks []BlockConfig) error {
	for i, bl := range blocks {
		if bl.W <= 0 || bl.H <= 0 {
			return fmt.Errorf("config: block %d has non-positive size", i)
		}
		if bl.X < 0 || bl.Y < 0 || bl.X+bl.W > 1 || bl.Y+bl.H > 1 {
			return fmt.Errorf("config: block %d lies outside the arena", i)
		}
	}
	return nil
}
