package core

// Action represents a logical input, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // A, W - move left paddle up
	ActionLeftDown         // Z, S - move left paddle down
	ActionRightUp          // K, Up arrow - move right paddle up
	ActionRightDown        // M, Down arrow - move right paddle down
	ActionStart            // Space - start a game from the title screen
	ActionQuit             // Esc - quit from the title screen
)

// Actions lists every logical action in declaration order.
var Actions = []Action{
	ActionLeftUp,
	ActionLeftDown,
	ActionRightUp,
	ActionRightDown,
	ActionStart,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a name produced by String back to an Action.
// Returns ActionNone for unknown names.
func ParseAction(name string) Action {
	for _, a := range Actions {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// InputFrame holds the pressed state of every action for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(pressed ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool),
	}
	for _, a := range pressed {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// EdgeTracker turns level input into release edges.
// An action fires on the tick where it goes from pressed to released.
type EdgeTracker struct {
	prev map[Action]bool
}

// NewEdgeTracker creates a tracker with nothing pressed.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{prev: make(map[Action]bool)}
}

// Released observes the frame and reports whether a was released this tick.
// Each watched action must be observed exactly once per tick.
func (e *EdgeTracker) Released(f InputFrame, a Action) bool {
	was := e.prev[a]
	now := f.Has(a)
	e.prev[a] = now
	return was && !now
}

// Reset forgets previous state, e.g. after a state change that should not
// inherit a held key.
func (e *EdgeTracker) Reset() {
	for k := range e.prev {
		delete(e.prev, k)
	}
}
