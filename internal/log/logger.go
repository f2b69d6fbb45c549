// Package log holds the process-wide structured logger.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger *zerolog.Logger
)

// ParseLevel maps a level name to a zerolog level.
// Unknown or empty names fall back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled", "none":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// Setup installs the global logger writing human-readable lines to w.
func Setup(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    termenv.EnvNoColor() || !isTerminal(w),
	}
	l := zerolog.New(console).Level(ParseLevel(level)).With().Timestamp().Logger()

	mu.Lock()
	logger = &l
	mu.Unlock()
}

// Get returns the configured logger, or a warn-level stderr logger if Setup
// hasn't been called.
func Get() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Setup("warn", os.Stderr)
		return Get()
	}
	return l
}

// WithComponent returns a logger with the component field set.
func WithComponent(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// WithRun returns a logger with the run_id field set.
func WithRun(l zerolog.Logger, runID string) zerolog.Logger {
	return l.With().Str("run_id", runID).Logger()
}

// OpenFile opens path for appending log lines, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(f.Fd())
}
