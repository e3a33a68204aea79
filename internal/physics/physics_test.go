package physics

import (
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

const tick = time.Second / 60

func ballBody(x, y, vx, vy float64) registry.Body {
	return registry.Body{
		Role:        registry.BallRole(),
		Position:    core.V(x, y),
		Velocity:    core.V(vx, vy),
		HalfExtents: core.V(0.1, 0.1),
	}
}

func TestClampStep(t *testing.T) {
	tests := []struct {
		name     string
		dt, max  time.Duration
		expected time.Duration
	}{
		{"within", 10 * time.Millisecond, DefaultMaxStep, 10 * time.Millisecond},
		{"stall clamped", time.Second, DefaultMaxStep, DefaultMaxStep},
		{"negative", -time.Millisecond, DefaultMaxStep, 0},
		{"no clamp", time.Second, 0, time.Second},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampStep(tc.dt, tc.max); got != tc.expected {
				t.Errorf("ClampStep() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntegrateSkipsStatic(t *testing.T) {
	wall := registry.Body{Role: registry.WallRole(), Position: core.V(0, 5), Velocity: core.V(1, 1)}
	if got := Integrate(wall, 1); got.Position != wall.Position {
		t.Errorf("static body moved to %v", got.Position)
	}

	ball := ballBody(1, 1, 2, -4)
	got := Integrate(ball, 0.5)
	if got.Position != core.V(2, -1) {
		t.Errorf("Integrate() position = %v, expected (2, -1)", got.Position)
	}
	if got.Velocity != ball.Velocity {
		t.Error("Integrate() must not change velocity")
	}
}

func TestIntegrateLinear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := ballBody(
			rapid.Float64Range(-10, 10).Draw(t, "x"),
			rapid.Float64Range(-5, 5).Draw(t, "y"),
			rapid.Float64Range(-10, 10).Draw(t, "vx"),
			rapid.Float64Range(-10, 10).Draw(t, "vy"),
		)
		dt := rapid.Float64Range(0, 0.1).Draw(t, "dt")

		twice := Integrate(Integrate(b, dt/2), dt/2)
		once := Integrate(b, dt)
		if twice.Position.Sub(once.Position).Len() > 1e-9 {
			t.Fatalf("two half steps %v differ from one step %v", twice.Position, once.Position)
		}
	})
}

func TestStepMovesDynamicBodies(t *testing.T) {
	reg := registry.New()
	wallID := reg.Insert(registry.Body{Role: registry.WallRole(), Position: core.V(0, 5)})
	paddleID := reg.Insert(registry.Body{Role: registry.PaddleRole(registry.Left), Position: core.V(-9, 0), Velocity: core.V(0, 6)})

	Step(reg, 500*time.Millisecond)

	wall, _ := reg.Get(wallID)
	paddle, _ := reg.Get(paddleID)
	if wall.Position != core.V(0, 5) {
		t.Errorf("wall moved to %v", wall.Position)
	}
	if paddle.Position != core.V(-9, 3) {
		t.Errorf("paddle at %v, expected (-9, 3)", paddle.Position)
	}
}

func TestConfinePaddles(t *testing.T) {
	reg := registry.New()
	id := reg.Insert(registry.Body{Role: registry.PaddleRole(registry.Right), Position: core.V(9, 7)})

	bounds := PaddleBounds(4.9, 0.5)
	ConfinePaddles(reg, bounds)

	p, _ := reg.Get(id)
	if math.Abs(p.Position.Y-4.4) > 1e-9 {
		t.Errorf("paddle Y = %f, expected 4.4", p.Position.Y)
	}
}

func TestBounceDirections(t *testing.T) {
	v := core.V(3, -2)
	tests := []struct {
		edge     core.Edge
		expected core.Vec2
	}{
		{core.EdgeTop, core.V(3, 2)},
		{core.EdgeBottom, core.V(3, -2)},
		{core.EdgeLeft, core.V(-3, -2)},
		{core.EdgeRight, core.V(3, -2)},
	}
	for _, tc := range tests {
		t.Run(tc.edge.String(), func(t *testing.T) {
			if got := Bounce(v, tc.edge); got != tc.expected {
				t.Errorf("Bounce(%v, %v) = %v, expected %v", v, tc.edge, got, tc.expected)
			}
		})
	}
}

func TestBouncePreservesSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := core.V(
			rapid.Float64Range(-50, 50).Draw(t, "vx"),
			rapid.Float64Range(-50, 50).Draw(t, "vy"),
		)
		edge := rapid.SampledFrom([]core.Edge{core.EdgeLeft, core.EdgeRight, core.EdgeTop, core.EdgeBottom}).Draw(t, "edge")

		got := Bounce(v, edge)
		if got.Len() != v.Len() {
			t.Fatalf("speed changed: %v -> %v", v.Len(), got.Len())
		}
		if edge.Vertical() && got.X != v.X {
			t.Fatalf("vertical bounce changed X: %v -> %v", v, got)
		}
		if !edge.Vertical() && got.Y != v.Y {
			t.Fatalf("horizontal bounce changed Y: %v -> %v", v, got)
		}
	})
}

func TestBallIntoRightGoalScoresLeft(t *testing.T) {
	reg := registry.New()
	reg.Insert(registry.Body{
		Role:        registry.GoalRole(registry.Right),
		Position:    core.V(9.9, 0),
		HalfExtents: core.V(0.1, 4.9),
	})
	ballID := reg.Insert(ballBody(9.9, 0, 2, 0))

	Step(reg, tick)
	events := Resolve(reg)

	if len(events) != 1 {
		t.Fatalf("expected 1 goal event, got %d", len(events))
	}
	if events[0].Scorer != registry.Left {
		t.Errorf("Scorer = %v, expected Left", events[0].Scorer)
	}
	ball, _ := reg.Get(ballID)
	if ball.Velocity != core.V(2, 0) {
		t.Errorf("goal must not bounce, velocity = %v", ball.Velocity)
	}
}

func TestBallBouncesOffTopWall(t *testing.T) {
	reg := registry.New()
	reg.Insert(registry.Body{
		Role:        registry.WallRole(),
		Position:    core.V(0, 5),
		HalfExtents: core.V(10, 0.1),
	})
	ballID := reg.Insert(ballBody(0, 4.85, 0, 3))

	Step(reg, tick)
	if events := Resolve(reg); len(events) != 0 {
		t.Errorf("wall hit must not emit events, got %v", events)
	}

	ball, _ := reg.Get(ballID)
	if ball.Velocity.Y != -3 {
		t.Errorf("velocity.y = %f, expected -3", ball.Velocity.Y)
	}
	if ball.Position.X != 0 {
		t.Errorf("position.x = %f, expected unchanged 0", ball.Position.X)
	}
}

func TestPaddleBounceKeepsVerticalComponent(t *testing.T) {
	reg := registry.New()
	reg.Insert(registry.Body{
		Role:        registry.PaddleRole(registry.Right),
		Position:    core.V(9.2, 0),
		HalfExtents: core.V(0.15, 0.5),
	})
	ballID := reg.Insert(ballBody(9.0, 0.2, 3, 3))

	Resolve(reg)

	ball, _ := reg.Get(ballID)
	if ball.Velocity != core.V(-3, 3) {
		t.Errorf("velocity = %v, expected (-3, 3)", ball.Velocity)
	}
}

func TestResolveRegistryOrder(t *testing.T) {
	// Two overlapping walls push the ball in opposite vertical directions;
	// the later one in registry order wins because responses apply at once.
	reg := registry.New()
	reg.Insert(registry.Body{Role: registry.WallRole(), Position: core.V(0, 0.15), HalfExtents: core.V(10, 0.1)})
	reg.Insert(registry.Body{Role: registry.WallRole(), Position: core.V(0, -0.15), HalfExtents: core.V(10, 0.1)})
	ballID := reg.Insert(ballBody(0, 0, 1, 2))

	Resolve(reg)

	ball, _ := reg.Get(ballID)
	if ball.Velocity != core.V(1, 2) {
		t.Errorf("velocity = %v, expected (1, 2) from the last wall", ball.Velocity)
	}
}

func TestGoalNeverBounces(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := registry.New()
		side := rapid.SampledFrom([]registry.Side{registry.Left, registry.Right}).Draw(t, "side")
		goalX := 9.9
		if side == registry.Left {
			goalX = -9.9
		}
		reg.Insert(registry.Body{Role: registry.GoalRole(side), Position: core.V(goalX, 0), HalfExtents: core.V(0.1, 4.9)})

		v := core.V(rapid.Float64Range(-10, 10).Draw(t, "vx"), rapid.Float64Range(-10, 10).Draw(t, "vy"))
		y := rapid.Float64Range(-4.5, 4.5).Draw(t, "y")
		ballID := reg.Insert(ballBody(goalX, y, v.X, v.Y))

		events := Resolve(reg)
		if len(events) != 1 || events[0].Scorer != side.Opposite() {
			t.Fatalf("events = %v, expected one for %v", events, side.Opposite())
		}
		ball, _ := reg.Get(ballID)
		if ball.Velocity != v {
			t.Fatalf("velocity changed %v -> %v", v, ball.Velocity)
		}
	})
}

func TestResolveWithoutBall(t *testing.T) {
	reg := registry.New()
	reg.Insert(registry.Body{Role: registry.WallRole()})
	if events := Resolve(reg); events != nil {
		t.Errorf("Resolve() without ball = %v, expected nil", events)
	}
}
