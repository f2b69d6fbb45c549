package domain

import "time"

const (
	// DefaultAlertThreshold is the remaining time at which an enabled alert fires.
	DefaultAlertThreshold = time.Minute

	// MinAlertThreshold is the smallest threshold an alert can be adjusted to.
	MinAlertThreshold = time.Second
)

// Alert flags the moment a countdown gets close to completion.
// It fires at most once per configuration.
type Alert struct {
	Enabled   bool
	Threshold time.Duration
	Fired     bool
}

// NewAlert returns a disabled alert with the given threshold.
func NewAlert(threshold time.Duration) Alert {
	if threshold < MinAlertThreshold {
		threshold = MinAlertThreshold
	}
	return Alert{Threshold: threshold}
}

// Toggle flips Enabled and re-arms the alert.
func (a *Alert) Toggle() {
	a.Enabled = !a.Enabled
	a.Fired = false
}

// AdjustThreshold moves the threshold by delta, never below MinAlertThreshold,
// and re-arms the alert.
func (a *Alert) AdjustThreshold(delta time.Duration) {
	a.Threshold += delta
	if a.Threshold < MinAlertThreshold {
		a.Threshold = MinAlertThreshold
	}
	a.Fired = false
}

// Rearm clears the fired flag without changing the configuration.
func (a *Alert) Rearm() {
	a.Fired = false
}

// Active reports whether the countdown is inside the alert window.
func (a Alert) Active(c *Countdown) bool {
	return a.Enabled && !c.Paused() && c.Remaining() <= a.Threshold
}

// Check fires the alert if the countdown has entered its window.
// It returns true only on the call that fires.
func (a *Alert) Check(c *Countdown) bool {
	if a.Fired || !a.Active(c) {
		return false
	}
	a.Fired = true
	return true
}
