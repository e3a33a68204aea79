// Package physics advances bodies and resolves ball collisions.
package physics

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// DefaultMaxStep is the recommended frame clamp. A ball moving more than one
// diameter per clamped step can still tunnel through thin colliders.
const DefaultMaxStep = time.Second / 15

// ClampStep limits a frame's elapsed time to max. Negative input yields zero.
// A non-positive max disables clamping.
func ClampStep(dt, max time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// Integrate advances a dynamic body by dt seconds.
// Walls and goals are returned unchanged.
func Integrate(b registry.Body, dt float64) registry.Body {
	if b.Role.Static() {
		return b
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	return b
}

// Step integrates every ball and paddle in registry order.
func Step(reg *registry.Registry, dt time.Duration) {
	secs := dt.Seconds()
	for _, b := range reg.All() {
		if b.Role.Static() {
			continue
		}
		//nolint:errcheck // dynamic bodies from All() always update
		reg.Update(Integrate(b, secs))
	}
}

// Bounds is the vertical span a paddle center may occupy.
type Bounds struct {
	MinY, MaxY float64
}

// PaddleBounds returns the span that keeps a paddle of the given half
// length between walls whose inner faces sit at ±innerHalfHeight.
func PaddleBounds(innerHalfHeight, paddleHalfLength float64) Bounds {
	return Bounds{
		MinY: -innerHalfHeight + paddleHalfLength,
		MaxY: innerHalfHeight - paddleHalfLength,
	}
}

// ConfinePaddles clamps every paddle's center into bounds.
func ConfinePaddles(reg *registry.Registry, bounds Bounds) {
	for _, p := range reg.ByRole(registry.KindPaddle) {
		y := core.ClampF(p.Position.Y, bounds.MinY, bounds.MaxY)
		if y == p.Position.Y {
			continue
		}
		p.Position.Y = y
		//nolint:errcheck // paddles are dynamic
		reg.Update(p)
	}
}
