package domain

import (
	"fmt"
	"time"
)

// Source provides the current instant. Values returned by time.Now carry a
// monotonic reading, so differences between them are immune to wall-clock jumps.
type Source interface {
	Now() time.Time
}

// SystemSource reads the process clock.
type SystemSource struct{}

// Now returns time.Now().
func (SystemSource) Now() time.Time { return time.Now() }

// Countdown tracks a pause-aware span of time counting towards a target duration.
type Countdown struct {
	source Source

	original time.Duration
	total    time.Duration
	baseline time.Time

	paused           bool
	pauseStartedAt   *time.Time
	accumulatedPause time.Duration
}

// NewCountdown starts a countdown of the given duration, running from now.
func NewCountdown(total time.Duration, source Source) (*Countdown, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConfiguration, total)
	}
	if source == nil {
		source = SystemSource{}
	}
	return &Countdown{
		source:   source,
		original: total,
		total:    total,
		baseline: source.Now(),
	}, nil
}

// TogglePause pauses a running countdown or resumes a paused one.
func (c *Countdown) TogglePause() {
	now := c.source.Now()
	if !c.paused {
		c.paused = true
		c.pauseStartedAt = &now
		return
	}
	if c.pauseStartedAt != nil {
		c.accumulatedPause += now.Sub(*c.pauseStartedAt)
	}
	c.paused = false
	c.pauseStartedAt = nil
}

// Adjust extends the target by a positive delta or shrinks it by a negative one.
// A shrink that would leave the target at or below zero is rejected and reports false.
func (c *Countdown) Adjust(delta time.Duration) bool {
	if delta >= 0 {
		c.total += delta
		return true
	}
	if c.total <= -delta {
		return false
	}
	c.total += delta
	return true
}

// Restart rewinds to zero elapsed time, clears any pause, and restores the
// originally configured duration.
func (c *Countdown) Restart() {
	c.baseline = c.source.Now()
	c.paused = false
	c.pauseStartedAt = nil
	c.accumulatedPause = 0
	c.total = c.original
}

// Elapsed returns the running time, excluding pauses.
func (c *Countdown) Elapsed() time.Duration {
	ref := c.source.Now()
	if c.paused && c.pauseStartedAt != nil {
		ref = *c.pauseStartedAt
	}
	elapsed := ref.Sub(c.baseline) - c.accumulatedPause
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns how much of the target is left, never negative.
func (c *Countdown) Remaining() time.Duration {
	remaining := c.total - c.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns the completed fraction in [0, 1].
func (c *Countdown) Progress() float64 {
	progress := float64(c.Elapsed()) / float64(c.total)
	if progress > 1 {
		return 1
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// Done reports whether the countdown has run out.
func (c *Countdown) Done() bool {
	return c.Remaining() == 0
}

// Paused reports whether the countdown is paused.
func (c *Countdown) Paused() bool { return c.paused }

// Total returns the current target duration.
func (c *Countdown) Total() time.Duration { return c.total }

// Original returns the duration the countdown was created with.
func (c *Countdown) Original() time.Duration { return c.original }

// FrameInterval picks the redraw interval for a countdown of the given length.
// Long timers redraw slowly; short ones animate smoothly.
func FrameInterval(total time.Duration) time.Duration {
	switch {
	case total > time.Hour:
		return time.Second
	case total > time.Minute:
		return 100 * time.Millisecond
	default:
		return 20 * time.Millisecond
	}
}
