// Package services wires the domain countdown to the terminal adapters.
package services

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/xvierd/tempus-cli/internal/adapters/inline"
	"github.com/xvierd/tempus-cli/internal/adapters/tui"
	"github.com/xvierd/tempus-cli/internal/config"
	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/ports"
	"github.com/xvierd/tempus-cli/internal/render"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// Mode selects how a timer is drawn.
type Mode string

const (
	ModeInline   Mode = "inline"
	ModeFocus    Mode = "focus"
	ModeBigClock Mode = "big"
)

// StartTimerRequest contains everything needed to start one timer.
type StartTimerRequest struct {
	Name     string
	Duration time.Duration
	Theme    theme.Theme
	Mode     Mode
	Bell     bool
	Notify   bool
	Verbose  bool
	Use12h   bool
	BarWidth int
}

// TimerService builds countdowns and the adapter that draws them.
type TimerService struct {
	config   *config.Config
	notifier ports.Notifier
	logger   zerolog.Logger
	source   domain.Source
	out      io.Writer
}

// NewTimerService creates a new timer service.
func NewTimerService(cfg *config.Config, notifier ports.Notifier, logger zerolog.Logger) *TimerService {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &TimerService{
		config:   cfg,
		notifier: notifier,
		logger:   logger,
		source:   domain.SystemSource{},
		out:      os.Stdout,
	}
}

// SetSource replaces the time source.
func (s *TimerService) SetSource(src domain.Source) {
	s.source = src
}

// SetOutput replaces the inline output stream.
func (s *TimerService) SetOutput(w io.Writer) {
	s.out = w
}

// Prepare validates req and returns the timer that will run it.
// Nothing is drawn until the returned timer is run.
func (s *TimerService) Prepare(req StartTimerRequest) (ports.Timer, error) {
	countdown, err := domain.NewCountdown(req.Duration, s.source)
	if err != nil {
		return nil, err
	}
	t := theme.Effective(req.Theme)

	s.logger.Debug().
		Str("name", req.Name).
		Dur("duration", req.Duration).
		Str("mode", string(req.Mode)).
		Str("theme", t.String()).
		Msg("timer prepared")

	switch req.Mode {
	case ModeInline, "":
		logger := s.logger.With().Str("component", "inline").Logger()
		return inline.New(countdown, inline.Options{
			Name:  req.Name,
			Theme: t,
			Render: render.Options{
				Verbose:  req.Verbose,
				Use12h:   req.Use12h,
				BarWidth: req.BarWidth,
			},
			Bell:     req.Bell,
			Notify:   req.Notify,
			Notifier: s.notifier,
			Out:      s.out,
			Source:   s.source,
			Logger:   &logger,
		}), nil

	case ModeFocus, ModeBigClock:
		layout := tui.LayoutFocus
		if req.Mode == ModeBigClock {
			layout = tui.LayoutBigClock
		}
		session := domain.NewSession(req.Name, countdown, s.config.SessionConfig())
		return tui.NewTimer(session, tui.Options{
			Layout:   layout,
			Theme:    t,
			Tick:     time.Duration(s.config.Focus.Tick),
			Bell:     req.Bell,
			Notify:   req.Notify,
			Notifier: s.notifier,
		}, tui.WithLogger(s.logger.With().Str("component", "tui").Logger())), nil
	}
	return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidConfiguration, req.Mode)
}
