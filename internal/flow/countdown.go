package flow

import (
	"math"
	"time"
)

// Countdown is a cooperative per-state timer, advanced once per tick.
type Countdown struct {
	duration time.Duration
	elapsed  time.Duration
	done     bool
}

// NewCountdown creates a countdown of the given length.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{duration: d}
}

// Tick advances the countdown and reports whether it finished on this tick.
// It returns true at most once.
func (c *Countdown) Tick(dt time.Duration) bool {
	if c.done {
		return false
	}
	c.elapsed += dt
	if c.elapsed >= c.duration {
		c.elapsed = c.duration
		c.done = true
		return true
	}
	return false
}

// Done reports whether the countdown has finished.
func (c *Countdown) Done() bool {
	return c.done
}

// Duration returns the total length.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// Elapsed returns the time counted so far.
func (c *Countdown) Elapsed() time.Duration {
	return c.elapsed
}

// Remaining returns the time left, never negative.
func (c *Countdown) Remaining() time.Duration {
	return max(c.duration-c.elapsed, 0)
}

// Fraction returns the remaining share of the duration in [0, 1].
func (c *Countdown) Fraction() float64 {
	if c.duration <= 0 {
		return 0
	}
	return float64(c.Remaining()) / float64(c.duration)
}

// Display returns the remaining whole seconds, rounded up (3, 2, 1).
func (c *Countdown) Display() int {
	return int(math.Ceil(c.Remaining().Seconds()))
}

// BannerScale returns a banner scale that restarts at 1 on every whole
// elapsed second and grows by 1 per second in between.
func (c *Countdown) BannerScale() float64 {
	s := c.elapsed.Seconds()
	return 1 + (s - math.Floor(s))
}

// GrowScale returns a banner scale growing by 1 per elapsed second.
func (c *Countdown) GrowScale() float64 {
	return 1 + c.elapsed.Seconds()
}

// BlinkVisible reports whether a blinking banner is shown: it is visible
// during the second half of every interval.
func (c *Countdown) BlinkVisible(interval time.Duration) bool {
	if interval <= 0 {
		return true
	}
	return c.elapsed%interval > interval/2
}
