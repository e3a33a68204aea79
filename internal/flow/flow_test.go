package flow

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

const tick = time.Second / 60

func TestCountdownFiresOnce(t *testing.T) {
	c := NewCountdown(100 * time.Millisecond)
	fired := 0
	for i := 0; i < 20; i++ {
		if c.Tick(10 * time.Millisecond) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("Tick() fired %d times, expected 1", fired)
	}
	if !c.Done() || c.Remaining() != 0 {
		t.Errorf("Done() = %v, Remaining() = %v", c.Done(), c.Remaining())
	}
}

func TestCountdownDisplay(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected int
	}{
		{0, 3},
		{500 * time.Millisecond, 3},
		{time.Second, 2},
		{1500 * time.Millisecond, 2},
		{2900 * time.Millisecond, 1},
		{3 * time.Second, 0},
	}
	for _, tc := range tests {
		c := NewCountdown(3 * time.Second)
		c.Tick(tc.elapsed)
		if got := c.Display(); got != tc.expected {
			t.Errorf("after %v Display() = %d, expected %d", tc.elapsed, got, tc.expected)
		}
	}
}

func TestCountdownFraction(t *testing.T) {
	c := NewCountdown(2 * time.Second)
	if c.Fraction() != 1 {
		t.Errorf("initial Fraction() = %f, expected 1", c.Fraction())
	}
	c.Tick(500 * time.Millisecond)
	if c.Fraction() != 0.75 {
		t.Errorf("Fraction() = %f, expected 0.75", c.Fraction())
	}
	if NewCountdown(0).Fraction() != 0 {
		t.Error("zero-length countdown should report 0")
	}
}

func TestCountdownScales(t *testing.T) {
	c := NewCountdown(3 * time.Second)
	c.Tick(1250 * time.Millisecond)
	if got := c.BannerScale(); got != 1.25 {
		t.Errorf("BannerScale() = %f, expected 1.25", got)
	}
	if got := c.GrowScale(); got != 2.25 {
		t.Errorf("GrowScale() = %f, expected 2.25", got)
	}
}

func TestCountdownBlink(t *testing.T) {
	interval := 300 * time.Millisecond
	tests := []struct {
		elapsed time.Duration
		visible bool
	}{
		{100 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{400 * time.Millisecond, false},
		{500 * time.Millisecond, true},
	}
	for _, tc := range tests {
		c := NewCountdown(3 * time.Second)
		c.Tick(tc.elapsed)
		if got := c.BlinkVisible(interval); got != tc.visible {
			t.Errorf("BlinkVisible() at %v = %v, expected %v", tc.elapsed, got, tc.visible)
		}
	}
}

func TestStateNames(t *testing.T) {
	names := map[State]string{
		Title: "Title", NewGame: "NewGame", Ready: "Ready",
		InGame: "InGame", Goal: "Goal", Win: "Win",
	}
	for s, expected := range names {
		if s.String() != expected {
			t.Errorf("String() = %q, expected %q", s.String(), expected)
		}
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if State(42).Valid() {
		t.Error("State(42) should be invalid")
	}
}

func TestSetUndefinedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set() with an undefined state should panic")
		}
	}()
	NewMachine(nil).Set(State(-1))
}

func TestHookOrder(t *testing.T) {
	var log []string
	m := NewMachine(nil)
	m.Handle(Title, Hooks{OnExit: func() { log = append(log, "exit Title") }})
	m.Handle(InGame, Hooks{
		OnEnter:  func() { log = append(log, "enter InGame") },
		OnUpdate: func(time.Duration) { log = append(log, "update InGame") },
	})
	m.Observe(func(from, to State) { log = append(log, from.String()+"->"+to.String()) })

	m.Set(InGame)
	m.Update(tick)

	expected := []string{"exit Title", "Title->InGame", "enter InGame", "update InGame"}
	if len(log) != len(expected) {
		t.Fatalf("log = %v, expected %v", log, expected)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("log[%d] = %q, expected %q", i, log[i], expected[i])
		}
	}
}

func TestPassThroughFromEnter(t *testing.T) {
	m := NewMachine(map[State]time.Duration{Ready: time.Second})
	resets := 0
	m.Handle(NewGame, Hooks{OnEnter: func() {
		resets++
		m.Set(Ready)
	}})

	m.Set(NewGame)
	if m.State() != Ready {
		t.Fatalf("State() = %v, expected Ready", m.State())
	}
	if resets != 1 {
		t.Errorf("NewGame entered %d times", resets)
	}
	if m.Countdown() == nil || m.Countdown().Duration() != time.Second {
		t.Error("Ready countdown not started")
	}
}

func TestExpireTransitions(t *testing.T) {
	m := NewMachine(map[State]time.Duration{Goal: 3 * time.Second})
	updates := 0
	m.Handle(Goal, Hooks{
		OnUpdate: func(time.Duration) { updates++ },
		OnExpire: func() State { return Ready },
	})
	m.Set(Goal)

	steps := 0
	for m.State() == Goal && steps < 1000 {
		m.Update(tick)
		steps++
	}
	if m.State() != Ready {
		t.Fatalf("State() = %v, expected Ready", m.State())
	}
	if steps < 180 || steps > 181 {
		t.Errorf("Goal lasted %d ticks, expected about 180", steps)
	}
	if updates != steps-1 {
		t.Errorf("OnUpdate ran %d times, expected %d", updates, steps-1)
	}
}

func TestUntimedStatesHaveNoCountdown(t *testing.T) {
	m := NewMachine(map[State]time.Duration{Title: time.Second, Win: time.Second})
	if m.Countdown() != nil {
		t.Error("Title should not own a countdown")
	}
	m.Set(InGame)
	if m.Countdown() != nil {
		t.Error("InGame should not own a countdown")
	}
	m.Set(Win)
	if m.Countdown() == nil {
		t.Error("Win should own a countdown")
	}
}

func TestReenterRestartsCountdown(t *testing.T) {
	m := NewMachine(map[State]time.Duration{Ready: time.Second})
	m.Set(Ready)
	m.Update(500 * time.Millisecond)
	m.Set(Ready)
	if m.Countdown().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v after re-entry", m.Countdown().Elapsed())
	}
	if m.TimeInState() != 0 {
		t.Errorf("TimeInState() = %v after re-entry", m.TimeInState())
	}
}

// Every timed state leaves within one tick of its duration.
func TestTimedStatesTerminate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := time.Duration(rapid.Int64Range(int64(time.Millisecond), int64(5*time.Second)).Draw(t, "duration"))
		m := NewMachine(map[State]time.Duration{Ready: d})
		m.Handle(Ready, Hooks{OnExpire: func() State { return InGame }})
		m.Set(Ready)
		step := time.Duration(rapid.Int64Range(int64(time.Millisecond), int64(100*time.Millisecond)).Draw(t, "step"))

		var total time.Duration
		for m.State() == Ready {
			total += step
			m.Update(step)
			if total > d+100*time.Millisecond {
				t.Fatalf("still in Ready after %v (duration %v)", total, d)
			}
		}
		if total < d {
			t.Fatalf("left Ready after %v, before duration %v", total, d)
		}
	})
}
