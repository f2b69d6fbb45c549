package domain

import "time"

// Snapshot captures a session at a point in time. Renderers draw from it and
// never touch the live countdown.
type Snapshot struct {
	Name        string
	Status      SessionStatus
	Elapsed     time.Duration
	Remaining   time.Duration
	Total       time.Duration
	Progress    float64
	Alert       Alert
	AlertActive bool
}

// SnapshotOf captures a bare countdown that has no interactive session around it.
func SnapshotOf(name string, c *Countdown) Snapshot {
	status := StatusRunning
	if c.Paused() {
		status = StatusPaused
	}
	return Snapshot{
		Name:      name,
		Status:    status,
		Elapsed:   c.Elapsed(),
		Remaining: c.Remaining(),
		Total:     c.Total(),
		Progress:  c.Progress(),
	}
}

// IsPaused returns true if the snapshot was taken while paused.
func (s Snapshot) IsPaused() bool {
	return s.Status == StatusPaused
}

// GetStatusLabel returns a human-readable label for the session status.
func GetStatusLabel(s SessionStatus) string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
