package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It mirrors defaults/pong.yaml and is used when the embedded file cannot
// be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: Arena{
			Width:           20.0,
			Height:          10.0,
			WallThickness:   0.2,
			BallSize:        0.2,
			PaddleLength:    1.0,
			PaddleThickness: 0.3,
			GoalsToWin:      3,
		},
		Physics: Physics{
			LaunchVelocity: Vector{X: 3.0, Y: 3.0},
			PaddleSpeed:    5.0,
			MaxFrameStep:   1.0 / 15.0,
			ConfinePaddles: true,
		},
		Timers: Timers{
			Ready:         3.0,
			Goal:          3.0,
			Win:           3.0,
			BlinkInterval: 0.3,
		},
		Keys: DefaultKeyBindings(),
	}
}

// DefaultKeyBindings returns the classic two-player layout:
// A/Z for the left paddle, K/M for the right one.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		"LeftUp":    {"a", "w"},
		"LeftDown":  {"z", "s"},
		"RightUp":   {"k", "up"},
		"RightDown": {"m", "down"},
		"Start":     {" ", "enter"},
		"Quit":      {"esc"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
