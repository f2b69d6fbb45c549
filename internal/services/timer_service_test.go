package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/tempus-cli/internal/adapters/inline"
	"github.com/xvierd/tempus-cli/internal/adapters/tui"
	"github.com/xvierd/tempus-cli/internal/config"
	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// steppingSource moves forward by step on every reading.
type steppingSource struct {
	now  time.Time
	step time.Duration
}

func (s *steppingSource) Now() time.Time {
	s.now = s.now.Add(s.step)
	return s.now
}

func newTestService() *TimerService {
	return NewTimerService(config.DefaultConfig(), nil, zerolog.Nop())
}

func TestTimerService_PrepareModes(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		mode Mode
		want any
	}{
		{"", &inline.Runner{}},
		{ModeInline, &inline.Runner{}},
		{ModeFocus, &tui.Timer{}},
		{ModeBigClock, &tui.Timer{}},
	}
	for _, tt := range tests {
		timer, err := svc.Prepare(StartTimerRequest{Name: "Timer", Duration: time.Minute, Mode: tt.mode})
		require.NoError(t, err, "mode %q", tt.mode)
		assert.IsType(t, tt.want, timer, "mode %q", tt.mode)
	}
}

func TestTimerService_PrepareRejectsBadInput(t *testing.T) {
	svc := newTestService()

	_, err := svc.Prepare(StartTimerRequest{Name: "Timer", Duration: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = svc.Prepare(StartTimerRequest{Name: "Timer", Duration: time.Second, Mode: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestTimerService_RunsInlineToCompletion(t *testing.T) {
	svc := newTestService()
	svc.SetSource(&steppingSource{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), step: 500 * time.Millisecond})
	var out bytes.Buffer
	svc.SetOutput(&out)

	timer, err := svc.Prepare(StartTimerRequest{
		Name:     "Eggs",
		Duration: 3 * time.Second,
		Theme:    theme.Plain,
		Bell:     true,
	})
	require.NoError(t, err)
	require.NoError(t, timer.Run(context.Background()))

	plain := ansi.Strip(out.String())
	assert.Contains(t, plain, "Eggs completed!")
	assert.Contains(t, plain, "100.0%")
	assert.Contains(t, out.String(), "\a")
}

func TestTimerService_CancelledInlineRunIsInterrupted(t *testing.T) {
	svc := newTestService()
	svc.SetOutput(&bytes.Buffer{})

	timer, err := svc.Prepare(StartTimerRequest{Name: "Timer", Duration: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, timer.Run(ctx), domain.ErrInterrupted)
}
