package ports

import "time"

// Notifier is a driven port for desktop notifications.
// Failures are reported to the caller, who logs them and carries on.
type Notifier interface {
	// Notify shows a notification with the given title and body.
	Notify(title, body string) error

	// NotifyCompleted announces that the named timer finished after took.
	NotifyCompleted(name string, took time.Duration) error

	// NotifyRemaining announces that the named timer has remaining time left.
	NotifyRemaining(name string, remaining time.Duration) error
}
