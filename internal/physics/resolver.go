package physics

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// GoalEvent reports that the ball entered a goal.
// Scorer is the player credited with the point.
type GoalEvent struct {
	Scorer registry.Side
}

// Bounce points the velocity component normal to the struck edge away from
// it. The magnitude of that component and the other component are kept.
func Bounce(v core.Vec2, edge core.Edge) core.Vec2 {
	switch edge {
	case core.EdgeTop:
		v.Y = math.Abs(v.Y)
	case core.EdgeBottom:
		v.Y = -math.Abs(v.Y)
	case core.EdgeLeft:
		v.X = -math.Abs(v.X)
	case core.EdgeRight:
		v.X = math.Abs(v.X)
	}
	return v
}

// Resolve tests the ball against every other body in registry order.
// Walls and paddles bounce the ball; the velocity is written back at once so
// later overlaps in the same tick see it. A goal produces a GoalEvent for the
// opposite side and no bounce. Returns nil when no ball exists.
func Resolve(reg *registry.Registry) []GoalEvent {
	ball, ok := reg.Find(registry.BallRole())
	if !ok {
		return nil
	}

	var events []GoalEvent
	for _, other := range reg.All() {
		if other.ID == ball.ID {
			continue
		}
		edge, hit := core.Overlap(ball.Box(), other.Box())
		if !hit {
			continue
		}

		switch other.Role.Kind {
		case registry.KindGoal:
			events = append(events, GoalEvent{Scorer: other.Role.Side.Opposite()})
		case registry.KindWall, registry.KindPaddle, registry.KindBall:
			ball.Velocity = Bounce(ball.Velocity, edge)
			//nolint:errcheck // the ball is dynamic and present
			reg.Update(ball)
		}
	}
	return events
}
