// Package inline draws a countdown in place on the current terminal lines,
// without taking over the screen or reading input.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/ports"
	"github.com/xvierd/tempus-cli/internal/render"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures a Runner. Zero values fall back to stdout, the system
// clock, a real sleep and a disabled logger.
type Options struct {
	Name     string
	Theme    theme.Theme
	Render   render.Options
	Bell     bool
	Notify   bool
	Notifier ports.Notifier
	Out      io.Writer
	Source   domain.Source
	Sleep    SleepFunc
	Logger   *zerolog.Logger
}

// Runner renders one countdown inline until it completes or ctx is cancelled.
type Runner struct {
	countdown *domain.Countdown
	opts      Options
	logger    zerolog.Logger
}

var _ ports.Timer = (*Runner)(nil)

// New creates a runner for countdown.
func New(countdown *domain.Countdown, opts Options) *Runner {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Source == nil {
		opts.Source = domain.SystemSource{}
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Runner{countdown: countdown, opts: opts, logger: logger}
}

// Run draws frames until the countdown completes. The cursor is hidden while
// running and shown again on every return path.
func (r *Runner) Run(ctx context.Context) (err error) {
	w := &errWriter{w: r.opts.Out}
	out := termenv.NewOutput(w)
	painter := theme.NewPainter(r.opts.Theme)
	startedAt := r.opts.Source.Now()
	interval := domain.FrameInterval(r.countdown.Total())

	r.logger.Debug().
		Dur("duration", r.countdown.Total()).
		Dur("interval", interval).
		Str("theme", r.opts.Theme.String()).
		Msg("inline timer started")

	out.HideCursor()
	defer func() {
		out.ShowCursor()
		if err == nil && w.err != nil {
			err = fmt.Errorf("%w: %v", domain.ErrTerminalIO, w.err)
		}
	}()
	fmt.Fprint(w, "\n")

	frame := 0
	for !r.countdown.Done() {
		if ctx.Err() != nil {
			return r.interrupt(out)
		}
		r.draw(out, w, frame, painter, startedAt)
		if w.err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTerminalIO, w.err)
		}
		frame++
		painter.Advance()

		if err := r.opts.Sleep(ctx, interval); err != nil {
			return r.interrupt(out)
		}
	}

	r.draw(out, w, frame, painter, startedAt)
	took := r.countdown.Elapsed()
	fmt.Fprint(w, "\n")
	if r.opts.Bell {
		fmt.Fprint(w, "\a")
	}
	fmt.Fprintln(w, render.CompletionLine(r.opts.Name, took, painter))
	if w.err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTerminalIO, w.err)
	}

	r.logger.Info().Dur("took", took).Int("frames", frame+1).Msg("inline timer completed")

	if r.opts.Notify && r.opts.Notifier != nil {
		if err := r.opts.Notifier.NotifyCompleted(r.opts.Name, took); err != nil {
			r.logger.Warn().Err(err).Msg("notification failed")
		}
	}
	return nil
}

func (r *Runner) draw(out *termenv.Output, w io.Writer, frame int, painter *theme.Painter, startedAt time.Time) {
	snap := domain.SnapshotOf(r.opts.Name, r.countdown)
	out.CursorUp(1)
	fmt.Fprint(w, "\r")
	out.ClearLine()
	fmt.Fprint(w, render.Header(startedAt, snap, painter, r.opts.Render))
	fmt.Fprint(w, "\n\r")
	out.ClearLine()
	fmt.Fprint(w, render.Line(frame, snap, painter, r.opts.Render))
}

func (r *Runner) interrupt(out *termenv.Output) error {
	fmt.Fprint(out, "\r")
	out.ClearLine()
	r.logger.Info().Dur("elapsed", r.countdown.Elapsed()).Msg("inline timer interrupted")
	return domain.ErrInterrupted
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// errWriter remembers the first write error so a frame can be checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
