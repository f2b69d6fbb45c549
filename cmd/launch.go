package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/render"
	"github.com/xvierd/tempus-cli/internal/services"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// inlineChrome is the width taken by the spinner, brackets and percentage
// around the inline bar.
const inlineChrome = 12

// launchTimer runs req until it completes or the process is interrupted.
func launchTimer(cmd *cobra.Command, req services.StartTimerRequest) error {
	if theme.ColorDisabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if req.Mode == services.ModeInline {
		req.BarWidth = fitBarWidth(req.BarWidth, terminalWidth())
	}

	timer, err := app.timers.Prepare(req)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Info().
		Str("name", req.Name).
		Dur("duration", req.Duration).
		Str("mode", string(req.Mode)).
		Msg("timer started")

	if err := timer.Run(ctx); err != nil {
		if errors.Is(err, domain.ErrInterrupted) {
			app.logger.Info().Msg("timer interrupted")
			return err
		}
		return fmt.Errorf("timer error: %w", err)
	}
	app.logger.Info().Msg("timer completed")
	return nil
}

// terminalWidth returns the width of stdout, or 0 when it isn't a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0
	}
	return w
}

// fitBarWidth shrinks the configured bar so the inline line fits on one row.
func fitBarWidth(configured, termWidth int) int {
	if configured <= 0 {
		configured = render.DefaultBarWidth
	}
	if termWidth <= 0 {
		return configured
	}
	avail := termWidth - inlineChrome
	if avail < 10 {
		avail = 10
	}
	if configured > avail {
		return avail
	}
	return configured
}
