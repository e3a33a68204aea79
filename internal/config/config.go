// Package config provides YAML-based configuration loading for the pong
// arena, physics, timers and key bindings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// PongConfig contains all configuration for a pong process run.
type PongConfig struct {
	Arena   Arena       `yaml:"arena"`
	Physics Physics     `yaml:"physics"`
	Timers  Timers      `yaml:"timers"`
	Keys    KeyBindings `yaml:"keys"`
}

// Arena defines the fixed geometry of the playing field.
type Arena struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	WallThickness   float64 `yaml:"wall_thickness"`
	BallSize        float64 `yaml:"ball_size"`
	PaddleLength    float64 `yaml:"paddle_length"`
	PaddleThickness float64 `yaml:"paddle_thickness"`
	GoalsToWin      int     `yaml:"goals_to_win"`
}

// Physics defines motion parameters.
type Physics struct {
	LaunchVelocity Vector  `yaml:"launch_velocity"`
	PaddleSpeed    float64 `yaml:"paddle_speed"`
	MaxFrameStep   float64 `yaml:"max_frame_step"` // Seconds; longer frames are clamped
	ConfinePaddles bool    `yaml:"confine_paddles"`
}

// Vector is a YAML-friendly 2D vector.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec2 converts to the simulation vector type.
func (v Vector) Vec2() core.Vec2 {
	return core.V(v.X, v.Y)
}

// Timers defines countdown durations in seconds.
type Timers struct {
	Ready         float64 `yaml:"ready"`
	Goal          float64 `yaml:"goal"`
	Win           float64 `yaml:"win"`
	BlinkInterval float64 `yaml:"blink_interval"`
}

// KeyBindings maps action names (LeftUp, LeftDown, RightUp, RightDown, Start,
// Quit) to terminal key names as reported by Bubble Tea.
type KeyBindings map[string][]string

// MaxStep returns the frame clamp as a duration.
func (p Physics) MaxStep() time.Duration {
	return seconds(p.MaxFrameStep)
}

// ReadyDuration returns the Ready countdown length.
func (t Timers) ReadyDuration() time.Duration { return seconds(t.Ready) }

// GoalDuration returns the Goal countdown length.
func (t Timers) GoalDuration() time.Duration { return seconds(t.Goal) }

// WinDuration returns the Win countdown length.
func (t Timers) WinDuration() time.Duration { return seconds(t.Win) }

// Blink returns the Win banner blink interval.
func (t Timers) Blink() time.Duration { return seconds(t.BlinkInterval) }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// HalfWidth returns half the arena width.
func (a Arena) HalfWidth() float64 { return a.Width / 2 }

// HalfHeight returns half the arena height.
func (a Arena) HalfHeight() float64 { return a.Height / 2 }

// Validate checks that the configuration describes a playable arena.
func (c PongConfig) Validate() error {
	a := c.Arena
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: arena size %gx%g", ErrInvalid, a.Width, a.Height)
	case a.WallThickness <= 0 || a.BallSize <= 0:
		return fmt.Errorf("%w: wall thickness and ball size must be positive", ErrInvalid)
	case a.PaddleLength <= 0 || a.PaddleThickness <= 0:
		return fmt.Errorf("%w: paddle dimensions must be positive", ErrInvalid)
	case a.PaddleLength >= a.Height-2*a.WallThickness:
		return fmt.Errorf("%w: paddle length %g does not fit between walls", ErrInvalid, a.PaddleLength)
	case a.GoalsToWin < 1:
		return fmt.Errorf("%w: goals_to_win must be at least 1", ErrInvalid)
	}

	p := c.Physics
	switch {
	case p.LaunchVelocity.Vec2().IsZero():
		return fmt.Errorf("%w: launch_velocity must be non-zero", ErrInvalid)
	case p.PaddleSpeed < 0:
		return fmt.Errorf("%w: paddle_speed must not be negative", ErrInvalid)
	case p.MaxFrameStep <= 0:
		return fmt.Errorf("%w: max_frame_step must be positive", ErrInvalid)
	}

	tm := c.Timers
	if tm.Ready <= 0 || tm.Goal <= 0 || tm.Win <= 0 || tm.BlinkInterval <= 0 {
		return fmt.Errorf("%w: timers must be positive", ErrInvalid)
	}

	for name := range c.Keys {
		if core.ParseAction(name) == core.ActionNone {
			return fmt.Errorf("%w: unknown action %q in keys", ErrInvalid, name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SpeedForPreset returns the speed multiplier for a difficulty preset.
func SpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", name)
	}
}
