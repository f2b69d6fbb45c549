package domain

import "time"

// SessionStatus represents the state of an interactive session.
type SessionStatus string

const (
	StatusRunning   SessionStatus = "running"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
)

// Command is a user action applied to a running or paused session.
type Command string

const (
	CmdQuit        Command = "quit"
	CmdTogglePause Command = "toggle_pause"
	CmdExtend      Command = "extend"
	CmdShorten     Command = "shorten"
	CmdRestart     Command = "restart"
	CmdToggleAlert Command = "toggle_alert"
	CmdAlertUp     Command = "alert_up"
	CmdAlertDown   Command = "alert_down"
)

// SessionConfig holds the step sizes used by interactive adjustments.
type SessionConfig struct {
	ExtendStep     time.Duration
	AlertStep      time.Duration
	AlertThreshold time.Duration
}

// DefaultSessionConfig returns one-minute extensions and a one-minute alert
// threshold adjusted in ten-second steps.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ExtendStep:     time.Minute,
		AlertStep:      10 * time.Second,
		AlertThreshold: DefaultAlertThreshold,
	}
}

// TickResult reports what happened during a single tick.
type TickResult struct {
	AlertFired bool
	Completed  bool
}

// Session layers interactive controls and a near-completion alert on top of a
// Countdown. Completed is terminal.
type Session struct {
	Name      string
	Countdown *Countdown
	Alert     Alert

	cfg       SessionConfig
	completed bool
}

// NewSession wraps a countdown in an interactive session.
func NewSession(name string, countdown *Countdown, cfg SessionConfig) *Session {
	if cfg.ExtendStep <= 0 {
		cfg.ExtendStep = time.Minute
	}
	if cfg.AlertStep <= 0 {
		cfg.AlertStep = 10 * time.Second
	}
	return &Session{
		Name:      name,
		Countdown: countdown,
		Alert:     NewAlert(cfg.AlertThreshold),
		cfg:       cfg,
	}
}

// Status returns the current state.
func (s *Session) Status() SessionStatus {
	switch {
	case s.completed:
		return StatusCompleted
	case s.Countdown.Paused():
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Apply executes a command. Commands are ignored once the session has completed.
// It returns false when the command was ignored or rejected.
func (s *Session) Apply(cmd Command) bool {
	if s.completed {
		return false
	}

	switch cmd {
	case CmdTogglePause:
		s.Countdown.TogglePause()
	case CmdExtend:
		return s.Countdown.Adjust(s.cfg.ExtendStep)
	case CmdShorten:
		return s.Countdown.Adjust(-s.cfg.ExtendStep)
	case CmdRestart:
		s.Countdown.Restart()
		s.Alert.Rearm()
	case CmdToggleAlert:
		s.Alert.Toggle()
	case CmdAlertUp:
		s.Alert.AdjustThreshold(s.cfg.AlertStep)
	case CmdAlertDown:
		s.Alert.AdjustThreshold(-s.cfg.AlertStep)
	default:
		return false
	}
	return true
}

// Tick checks the alert and completion conditions.
// Completion is only reachable from Running.
func (s *Session) Tick() TickResult {
	var res TickResult
	if s.completed {
		return res
	}

	res.AlertFired = s.Alert.Check(s.Countdown)

	if !s.Countdown.Paused() && s.Countdown.Done() {
		s.completed = true
		res.Completed = true
	}
	return res
}

// Snapshot captures the session for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Name:        s.Name,
		Status:      s.Status(),
		Elapsed:     s.Countdown.Elapsed(),
		Remaining:   s.Countdown.Remaining(),
		Total:       s.Countdown.Total(),
		Progress:    s.Countdown.Progress(),
		Alert:       s.Alert,
		AlertActive: s.Alert.Active(s.Countdown),
	}
}
