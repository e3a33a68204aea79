package pong

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/flow"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Title screen text.
const (
	TitleBanner = "PONG"
	TitlePrompt = "Press SPACE to start, ESC to quit"
)

// Score is the per-side goal count of the current match.
type Score struct {
	Left  int `yaml:"left"`
	Right int `yaml:"right"`
}

// Of returns the goals of one side.
func (s Score) Of(side registry.Side) int {
	if side == registry.Left {
		return s.Left
	}
	return s.Right
}

// Add credits one goal to side.
func (s *Score) Add(side registry.Side) {
	if side == registry.Left {
		s.Left++
	} else {
		s.Right++
	}
}

// Total returns the number of goals scored in the match.
func (s Score) Total() int {
	return s.Left + s.Right
}

// String formats the score as "L-R".
func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Left, s.Right)
}

// BodyView is the render-facing part of a body.
type BodyView struct {
	ID          registry.ID   `yaml:"id"`
	Role        registry.Role `yaml:"role"`
	Position    core.Vec2     `yaml:"position"`
	HalfExtents core.Vec2     `yaml:"half_extents"`
}

// CountdownView describes the banner of a timed state.
type CountdownView struct {
	Active   bool    `yaml:"active"`
	Display  int     `yaml:"display"`  // Whole seconds left, rounded up
	Fraction float64 `yaml:"fraction"` // Remaining share of the duration
	Scale    float64 `yaml:"scale"`    // Banner scale, 1 is normal size
	Visible  bool    `yaml:"visible"`  // False during the off phase of a blink
}

// Frame is the snapshot published after every tick.
type Frame struct {
	Tick      uint64        `yaml:"tick"`
	State     flow.State    `yaml:"state"`
	Score     Score         `yaml:"score"`
	Bodies    []BodyView    `yaml:"bodies"`
	Countdown CountdownView `yaml:"countdown"`
	Banner    string        `yaml:"banner,omitempty"`
	Prompt    string        `yaml:"prompt,omitempty"`
	Winner    registry.Side `yaml:"winner"`
	HasWinner bool          `yaml:"has_winner"`
	Quit      bool          `yaml:"quit"`
}

// Body returns the first body with the given role.
func (f Frame) Body(role registry.Role) (BodyView, bool) {
	for _, b := range f.Bodies {
		if b.Role == role {
			return b, true
		}
	}
	return BodyView{}, false
}

// Sink receives every published frame.
type Sink interface {
	Publish(Frame)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Frame)

// Publish calls f(frame).
func (f SinkFunc) Publish(frame Frame) { f(frame) }

// MatchResult summarises a finished match.
type MatchResult struct {
	MatchID  uuid.UUID
	Score    Score
	Winner   registry.Side
	Ticks    uint64
	Duration time.Duration
}

// ResultRecorder stores finished matches.
type ResultRecorder interface {
	SaveMatchResult(MatchResult) error
}
