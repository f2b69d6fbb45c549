// Package domain contains the core timing entities for Tempus.
// These types know nothing about terminals, configuration files or signals.
package domain

import "errors"

var (
	// ErrInvalidConfiguration is returned for inputs rejected before a timer starts:
	// non-positive durations, unknown presets or themes, unparsable or past targets.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrTerminalIO wraps any failure writing to or configuring the terminal.
	ErrTerminalIO = errors.New("terminal I/O error")

	// ErrInterrupted is returned when the user aborts a running timer.
	ErrInterrupted = errors.New("timer interrupted")
)
