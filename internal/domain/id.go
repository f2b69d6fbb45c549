package domain

import "github.com/google/uuid"

// NewRunID creates an identifier that ties together the log lines of one timer run.
func NewRunID() string {
	return uuid.New().String()
}
