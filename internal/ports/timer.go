// Package ports defines the interfaces between the Tempus core and its adapters.
package ports

import "context"

// Timer is a driving port: it renders one countdown until it completes,
// the user quits, or ctx is cancelled.
type Timer interface {
	// Run blocks until the timer finishes. It returns domain.ErrInterrupted when
	// the user or a signal aborts the run.
	Run(ctx context.Context) error
}
