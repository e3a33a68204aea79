package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// MapPaddles converts paddle intents into paddle velocities.
// Up moves at +speed, down at -speed; neither or both stop the paddle.
func MapPaddles(in core.InputFrame, speed float64) (left, right core.Vec2) {
	left = core.V(0, axis(in, core.ActionLeftUp, core.ActionLeftDown)*speed)
	right = core.V(0, axis(in, core.ActionRightUp, core.ActionRightDown)*speed)
	return left, right
}

func axis(in core.InputFrame, up, down core.Action) float64 {
	var v float64
	if in.Has(up) {
		v++
	}
	if in.Has(down) {
		v--
	}
	return v
}
