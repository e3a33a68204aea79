package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := decodeOver(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pong.yaml"); err == nil {
		if parsed, ok := decodeOver(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := decodeOver(defaultPongYAML); ok {
		return parsed, nil
	}
	return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeOver parses data over the defaults and keeps it only if it validates.
func decodeOver(data []byte) (PongConfig, bool) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// ApplyPongPreset scales launch velocity and paddle speed for a difficulty preset.
// It is applied once at load; the result stays fixed for the process run.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	k := SpeedForPreset(preset)
	cfg.Physics.LaunchVelocity.X *= k
	cfg.Physics.LaunchVelocity.Y *= k
	cfg.Physics.PaddleSpeed *= k
}

// Marshal renders the configuration as YAML.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
