package inline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/render"
	"github.com/xvierd/tempus-cli/internal/theme"
)

type fakeClock struct {
	now    time.Time
	sleeps int
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.sleeps++
	f.now = f.now.Add(d)
	return nil
}

type recordingNotifier struct {
	completed []string
	err       error
}

func (r *recordingNotifier) Notify(title, body string) error { return r.err }

func (r *recordingNotifier) NotifyCompleted(name string, took time.Duration) error {
	r.completed = append(r.completed, name+" "+domain.FormatSimple(took))
	return r.err
}

func (r *recordingNotifier) NotifyRemaining(name string, remaining time.Duration) error {
	return r.err
}

func newTestRunner(t *testing.T, total time.Duration, opts Options) (*Runner, *fakeClock, *bytes.Buffer) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}
	c, err := domain.NewCountdown(total, clock)
	require.NoError(t, err)

	var buf bytes.Buffer
	opts.Out = &buf
	opts.Source = clock
	opts.Sleep = clock.Sleep
	if opts.Name == "" {
		opts.Name = "Timer"
	}
	return New(c, opts), clock, &buf
}

func TestRunner_CompletesFiveSecondPlainRun(t *testing.T) {
	r, clock, buf := newTestRunner(t, 5*time.Second, Options{Theme: theme.Plain, Bell: true})

	require.NoError(t, r.Run(context.Background()))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "completed!"), "exactly one completion line")
	assert.Equal(t, 1, strings.Count(out, "\a"), "exactly one bell")
	assert.Equal(t, 250, clock.sleeps, "5s at 20ms per frame")

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "100.0%")
	assert.Contains(t, plain, "09:30:00 | Timer | 0s remaining")
	assert.Contains(t, plain, "Timer completed! (took 5s)")
	assert.True(t, strings.HasSuffix(out, "\x1b[?25h"), "cursor shown on exit")
	assert.True(t, strings.HasPrefix(out, "\x1b[?25l"), "cursor hidden first")
}

func TestRunner_NoBell(t *testing.T) {
	r, _, buf := newTestRunner(t, time.Second, Options{Theme: theme.Plain})
	require.NoError(t, r.Run(context.Background()))
	assert.NotContains(t, buf.String(), "\a")
}

func TestRunner_VerboseAndTwelveHour(t *testing.T) {
	r, _, buf := newTestRunner(t, time.Second, Options{
		Name:   "Eggs",
		Theme:  theme.Plain,
		Render: render.Options{Verbose: true, Use12h: true, BarWidth: 10},
	})
	require.NoError(t, r.Run(context.Background()))

	plain := ansi.Strip(buf.String())
	assert.Contains(t, plain, "09:30:00 AM | Eggs | 1s remaining")
	assert.Contains(t, plain, "(1s) Eggs")
	assert.Contains(t, plain, "┃██████████┃ 100.0% (0s) Eggs")
}

func TestRunner_Notifies(t *testing.T) {
	n := &recordingNotifier{}
	r, _, _ := newTestRunner(t, 2*time.Second, Options{Name: "Tea", Theme: theme.Plain, Notify: true, Notifier: n})
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"Tea 2s"}, n.completed)
}

func TestRunner_NotificationFailureIsNotFatal(t *testing.T) {
	n := &recordingNotifier{err: errors.New("no daemon")}
	r, _, buf := newTestRunner(t, time.Second, Options{Theme: theme.Plain, Notify: true, Notifier: n})
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, buf.String(), "completed!")
}

func TestRunner_Interrupted(t *testing.T) {
	r, clock, buf := newTestRunner(t, time.Minute, Options{Theme: theme.Rainbow})

	ctx, cancel := context.WithCancel(context.Background())
	r.opts.Sleep = func(ctx context.Context, d time.Duration) error {
		if clock.sleeps == 10 {
			cancel()
		}
		return clock.Sleep(ctx, d)
	}

	err := r.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInterrupted))

	out := buf.String()
	assert.NotContains(t, out, "completed!")
	assert.True(t, strings.HasSuffix(out, "\x1b[?25h"), "cursor shown after interrupt")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestRunner_TerminalError(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c, err := domain.NewCountdown(time.Second, clock)
	require.NoError(t, err)

	r := New(c, Options{Out: failingWriter{}, Source: clock, Sleep: clock.Sleep})
	err = r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTerminalIO))
	assert.Zero(t, clock.sleeps)
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
