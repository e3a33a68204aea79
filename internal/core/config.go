package core

import "time"

// RuntimeConfig contains configuration passed to the game host at startup.
// Hosts use this to size the screen and to pick the tick cadence.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	TickRate  int           // Host ticks per second (default 60)
	FixedStep time.Duration // When > 0, every tick advances exactly this much
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		FixedStep: 0, // 0 means use measured frame time
	}
}

// TickInterval returns the wall-clock interval between host ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// StepFor returns the simulated time to advance for a tick that took elapsed
// wall time.
func (c RuntimeConfig) StepFor(elapsed time.Duration) time.Duration {
	if c.FixedStep > 0 {
		return c.FixedStep
	}
	return elapsed
}
