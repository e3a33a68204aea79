package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Scene holds the IDs of the dynamic bodies created by SetupScene.
type Scene struct {
	Ball        registry.ID
	LeftPaddle  registry.ID
	RightPaddle registry.ID
}

// Paddle returns the ID of the paddle on the given side.
func (s Scene) Paddle(side registry.Side) registry.ID {
	if side == registry.Left {
		return s.LeftPaddle
	}
	return s.RightPaddle
}

// SetupScene populates an empty registry with the arena:
// top wall, bottom wall, left goal, right goal, ball, left paddle, right paddle.
func SetupScene(reg *registry.Registry, a config.Arena, launch core.Vec2) Scene {
	t := a.WallThickness
	hw, hh := a.HalfWidth(), a.HalfHeight()

	wallHalf := core.V(hw, t/2)
	reg.Insert(registry.Body{Role: registry.WallRole(), Position: core.V(0, hh), HalfExtents: wallHalf})
	reg.Insert(registry.Body{Role: registry.WallRole(), Position: core.V(0, -hh), HalfExtents: wallHalf})

	goalX := (a.Width - t) / 2
	goalHalf := core.V(t/2, (a.Height-t)/2)
	reg.Insert(registry.Body{Role: registry.GoalRole(registry.Left), Position: core.V(-goalX, 0), HalfExtents: goalHalf})
	reg.Insert(registry.Body{Role: registry.GoalRole(registry.Right), Position: core.V(goalX, 0), HalfExtents: goalHalf})

	var s Scene
	s.Ball = reg.Insert(registry.Body{
		Role:        registry.BallRole(),
		Velocity:    launch,
		HalfExtents: core.V(a.BallSize/2, a.BallSize/2),
	})

	paddleX := hw - t - a.PaddleThickness
	paddleHalf := core.V(a.PaddleThickness/2, a.PaddleLength/2)
	s.LeftPaddle = reg.Insert(registry.Body{Role: registry.PaddleRole(registry.Left), Position: core.V(-paddleX, 0), HalfExtents: paddleHalf})
	s.RightPaddle = reg.Insert(registry.Body{Role: registry.PaddleRole(registry.Right), Position: core.V(paddleX, 0), HalfExtents: paddleHalf})
	return s
}

// paddleBounds keeps paddles between the inner faces of the walls.
func paddleBounds(a config.Arena) physics.Bounds {
	return physics.PaddleBounds(a.HalfHeight()-a.WallThickness/2, a.PaddleLength/2)
}
