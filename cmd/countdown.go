package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tempus-cli/internal/domain"
)

var (
	countdownName string
	countdownCron string
)

var countdownCmd = &cobra.Command{
	Use:   "countdown [DATETIME]",
	Short: "Count down to a specific date/time",
	Long: `Count down to a date/time such as "2025-12-31 23:59:59", "2025-12-31" or "20:00".
A time of day that has already passed today means tomorrow.

With --cron the target is the next tick of a cron expression, e.g. --cron "0 18 * * 1-5".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		target, err := resolveTarget(args, countdownCron, now)
		if err != nil {
			return err
		}
		d, err := domain.UntilTarget(target, now)
		if err != nil {
			return err
		}

		req, err := buildRequest(cmd, countdownName, d)
		if err != nil {
			return err
		}
		app.logger.Debug().Time("target", target).Msg("countdown target resolved")
		return launchTimer(cmd, req)
	},
}

func init() {
	countdownCmd.Flags().StringVarP(&countdownName, "name", "n", "Countdown", "Name for the countdown event")
	countdownCmd.Flags().StringVar(&countdownCron, "cron", "", "Count down to the next tick of a cron expression")
}

// resolveTarget turns a DATETIME argument or a cron expression into an instant.
func resolveTarget(args []string, cronExpr string, now time.Time) (time.Time, error) {
	switch {
	case cronExpr != "" && len(args) > 0:
		return time.Time{}, fmt.Errorf("%w: give either DATETIME or --cron, not both", domain.ErrInvalidConfiguration)
	case cronExpr != "":
		return domain.NextCronTarget(cronExpr, now)
	case len(args) == 1:
		return domain.ParseTarget(args[0], now)
	default:
		return time.Time{}, fmt.Errorf("%w: a DATETIME or --cron expression is required", domain.ErrInvalidConfiguration)
	}
}
