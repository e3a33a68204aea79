package registry

import "github.com/vovakirdan/tui-pong/internal/core"

// ID identifies a body for as long as it lives in a Registry.
type ID uint32

// Side is one half of the arena.
type Side int

const (
	Left Side = iota
	Right
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// MarshalText encodes the side by name.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind is the tag of a Role.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindWall
	KindGoal
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "Ball"
	case KindPaddle:
		return "Paddle"
	case KindWall:
		return "Wall"
	case KindGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Role is a tagged variant: Side is only meaningful for paddles and goals.
type Role struct {
	Kind Kind
	Side Side
}

// BallRole returns the role of the ball.
func BallRole() Role { return Role{Kind: KindBall} }

// PaddleRole returns the role of the paddle on the given side.
func PaddleRole(s Side) Role { return Role{Kind: KindPaddle, Side: s} }

// WallRole returns the role of a wall.
func WallRole() Role { return Role{Kind: KindWall} }

// GoalRole returns the role of the goal on the given side of the arena.
func GoalRole(s Side) Role { return Role{Kind: KindGoal, Side: s} }

// Static reports whether bodies with this role never move.
func (r Role) Static() bool {
	return r.Kind == KindWall || r.Kind == KindGoal
}

// String returns e.g. "Paddle(Left)" or "Wall".
func (r Role) String() string {
	if r.Kind == KindPaddle || r.Kind == KindGoal {
		return r.Kind.String() + "(" + r.Side.String() + ")"
	}
	return r.Kind.String()
}

// MarshalText encodes the role as returned by String.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Body is a simulated object with an axis-aligned collision box.
type Body struct {
	ID          ID
	Role        Role
	Position    core.Vec2
	Velocity    core.Vec2
	HalfExtents core.Vec2
}

// Box returns the body's collision box.
func (b Body) Box() core.Box {
	return core.NewBox(b.Position, b.HalfExtents)
}
