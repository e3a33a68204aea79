// Package flow implements the game-flow state machine:
// Title -> NewGame -> Ready -> InGame -> Goal -> (Ready | Win) -> Title.
package flow

import (
	"fmt"
	"time"
)

// State is one of the six game-flow states.
type State int

const (
	Title State = iota
	NewGame
	Ready
	InGame
	Goal
	Win

	numStates
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Title:
		return "Title"
	case NewGame:
		return "NewGame"
	case Ready:
		return "Ready"
	case InGame:
		return "InGame"
	case Goal:
		return "Goal"
	case Win:
		return "Win"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= Title && s < numStates
}

// Timed reports whether the state owns a countdown.
func (s State) Timed() bool {
	return s == Ready || s == Goal || s == Win
}

// Hooks are the lifecycle callbacks of a state. Any of them may be nil.
type Hooks struct {
	OnEnter  func()
	OnUpdate func(dt time.Duration)
	OnExit   func()

	// OnExpire picks the next state when the countdown finishes.
	OnExpire func() State
}

// Machine holds the current state and its countdown.
// Hooks may call Set; the machine does no work after a hook returns.
type Machine struct {
	state       State
	countdown   *Countdown
	timeInState time.Duration
	hooks       [numStates]Hooks
	durations   [numStates]time.Duration
	observer    func(from, to State)
}

// NewMachine creates a machine in Title. Durations set the countdown length
// of the timed states; entries for other states are ignored.
func NewMachine(durations map[State]time.Duration) *Machine {
	m := &Machine{state: Title}
	for s, d := range durations {
		if s.Timed() {
			m.durations[s] = d
		}
	}
	return m
}

// Handle registers the hooks for a state.
func (m *Machine) Handle(s State, h Hooks) {
	m.mustValid(s)
	m.hooks[s] = h
}

// Observe registers a callback invoked on every transition.
func (m *Machine) Observe(fn func(from, to State)) {
	m.observer = fn
}

// Start runs the entry hook of the initial state.
func (m *Machine) Start() {
	if h := m.hooks[m.state].OnEnter; h != nil {
		h()
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Countdown returns the active countdown, or nil for untimed states.
func (m *Machine) Countdown() *Countdown {
	return m.countdown
}

// TimeInState returns the time accumulated by Update since the last entry.
func (m *Machine) TimeInState() time.Duration {
	return m.timeInState
}

// Set leaves the current state and enters next, replacing any countdown.
// Entering the current state again restarts it.
func (m *Machine) Set(next State) {
	m.mustValid(next)

	prev := m.state
	if h := m.hooks[prev].OnExit; h != nil {
		h()
	}

	m.state = next
	m.timeInState = 0
	m.countdown = nil
	if next.Timed() {
		m.countdown = NewCountdown(m.durations[next])
	}

	if m.observer != nil {
		m.observer(prev, next)
	}
	if h := m.hooks[next].OnEnter; h != nil {
		h()
	}
}

// Update advances the active countdown by dt. When it finishes, the state's
// OnExpire hook chooses the next state; otherwise OnUpdate runs.
func (m *Machine) Update(dt time.Duration) {
	m.timeInState += dt
	h := m.hooks[m.state]

	if m.countdown != nil && m.countdown.Tick(dt) {
		if h.OnExpire != nil {
			m.Set(h.OnExpire())
		}
		return
	}
	if h.OnUpdate != nil {
		h.OnUpdate(dt)
	}
}

func (m *Machine) mustValid(s State) {
	if !s.Valid() {
		panic(fmt.Sprintf("flow: undefined state %d", int(s)))
	}
}
