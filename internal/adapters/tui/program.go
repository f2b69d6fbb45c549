package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/ports"
)

var _ ports.Timer = (*Timer)(nil)

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	model  Model
	logger zerolog.Logger

	input     io.Reader
	output    io.Writer
	altScreen bool
}

// TimerOption customizes a Timer.
type TimerOption func(*Timer)

// WithIO replaces the terminal streams, mostly for tests.
func WithIO(in io.Reader, out io.Writer) TimerOption {
	return func(t *Timer) {
		t.input = in
		t.output = out
	}
}

// WithLogger attaches a logger for notification failures.
func WithLogger(l zerolog.Logger) TimerOption {
	return func(t *Timer) {
		t.logger = l
	}
}

// NewTimer creates a new TUI timer adapter for session.
func NewTimer(session *domain.Session, opts Options, options ...TimerOption) *Timer {
	t := &Timer{logger: zerolog.Nop()}
	for _, o := range options {
		o(t)
	}
	if t.output == nil {
		t.output = os.Stdout
		t.altScreen = true
	}
	// The bell shares the program's output stream.
	opts.BellOut = t.output
	t.model = NewModel(session, opts)
	return t
}

// Run starts the full-screen interface and blocks until the user exits.
// The terminal is restored on every exit path.
func (t *Timer) Run(ctx context.Context) error {
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	}
	if t.input != nil {
		programOpts = append(programOpts, tea.WithInput(t.input))
	}
	programOpts = append(programOpts, tea.WithOutput(t.output))
	if t.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(t.model, programOpts...).Run()
	if m, ok := final.(Model); ok {
		t.model = m
		for _, nerr := range m.NotifyErrors() {
			t.logger.Warn().Err(nerr).Msg("desktop notification failed")
		}
	}

	switch {
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, context.Canceled):
		return domain.ErrInterrupted
	case err != nil:
		return fmt.Errorf("%w: %v", domain.ErrTerminalIO, err)
	case t.model.Interrupted():
		return domain.ErrInterrupted
	}
	return nil
}

// Completed reports whether the last run ended with the countdown finishing.
func (t *Timer) Completed() bool { return t.model.Completed() }
