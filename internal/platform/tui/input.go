package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultHoldWindow is how long a paddle key counts as held after its last
// key event. Terminals report no key releases, only presses and autorepeat.
const DefaultHoldWindow = 180 * time.Millisecond

// heldKeys rebuilds level input from terminal key presses.
// Paddle actions stay pressed for the hold window after each event. Start and
// quit are taps: pressed for exactly one tick and released on the next, so
// the simulation sees a release edge.
type heldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
	taps   map[core.Action]bool
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &heldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
		taps:   make(map[core.Action]bool),
	}
}

// Press records a key event for a at time now.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
	case core.ActionStart, core.ActionQuit:
		h.taps[a] = true
	default:
		h.until[a] = now.Add(h.window)
		delete(h.until, opposite[a])
	}
}

// A new direction replaces the held opposite one on the same paddle.
var opposite = map[core.Action]core.Action{
	core.ActionLeftUp:    core.ActionLeftDown,
	core.ActionLeftDown:  core.ActionLeftUp,
	core.ActionRightUp:   core.ActionRightDown,
	core.ActionRightDown: core.ActionRightUp,
}

// Frame returns the input for a tick at time now and consumes pending taps.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.taps {
		f.Set(a)
		delete(h.taps, a)
	}
	return f
}
