package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userHomeDir is replaced in tests.
var userHomeDir = os.UserHomeDir

// LoadPlayground loads playground configuration.
// Search order: customPath -> ~/.bounce/configs/playground.yaml -> ./configs/playground.yaml -> embedded default
func LoadPlayground(customPath string) (PlaygroundConfig, error) {
	return load("playground.yaml", customPath, defaultPlaygroundYAML, DefaultPlaygroundConfig)
}

// LoadBouncer loads bouncer configuration.
// Search order: customPath -> ~/.bounce/configs/bouncer.yaml -> ./configs/bouncer.yaml -> embedded default
func LoadBouncer(customPath string) (BouncerConfig, error) {
	return load("bouncer.yaml", customPath, defaultBouncerYAML, DefaultBouncerConfig)
}

// load decodes the first config found onto the hardcoded defaults, so
// files only need the keys they change. Only a broken custom path is an
// error; broken files elsewhere in the search order are skipped.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := userHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}

// ApplyPlaygroundPreset scales the player speed by the preset.
func ApplyPlaygroundPreset(cfg *PlaygroundConfig, preset Preset) {
	cfg.Player.Speed *= SpeedFactor(preset)
}

// ApplyBouncerPreset scales box speeds by the preset. Fast also turns on
// the ramp, slow turns it off.
func ApplyBouncerPreset(cfg *BouncerConfig, preset Preset) {
	f := SpeedFactor(preset)
	cfg.Boxes.MinSpeed *= f
	cfg.Boxes.MaxSpeed *= f

	switch preset {
	case PresetSlow:
		cfg.Ramp.Enabled = false
	case PresetFast:
		cfg.Ramp.Enabled = true
		cfg.Ramp.InitialLevel = 0.3
	}
}
