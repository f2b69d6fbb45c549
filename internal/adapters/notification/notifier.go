// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/xvierd/tempus-cli/internal/config"
	"github.com/xvierd/tempus-cli/internal/domain"
)

type sendFunc func(title, message string) error

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify sendFunc
	alert  sendFunc
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: func(title, message string) error { return beeep.Notify(title, message, "") },
		alert:  func(title, message string) error { return beeep.Alert(title, message, "") },
	}
}

// Notify displays a desktop notification if enabled. With sound enabled it
// uses an alert, which also plays the system sound.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	send := n.notify
	if n.cfg.Sound {
		send = n.alert
	}
	if err := send(title, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// NotifyCompleted displays a notification when a timer completes.
func (n *Notifier) NotifyCompleted(name string, took time.Duration) error {
	return n.Notify(name+" completed!", "Duration: "+domain.FormatSimple(took))
}

// NotifyRemaining displays a notification when a timer enters its alert window.
func (n *Notifier) NotifyRemaining(name string, remaining time.Duration) error {
	return n.Notify(fmt.Sprintf("%s: %s remaining", name, domain.FormatSimple(remaining)), "")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
