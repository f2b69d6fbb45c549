// Package cmd provides the CLI commands for the Tempus application.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/services"
	"github.com/xvierd/tempus-cli/internal/theme"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	logLevel   string
	themeFlag  string
	bellFlag   bool
	notifyFlag bool
	focusFlag  bool
	bigFlag    bool
	use12hFlag bool

	// Root-only flags
	timerName   string
	verboseFlag bool
	presetFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tempus [DURATION]",
	Short: "Tempus - A minimalist timer for your terminal",
	Long: `Tempus is a terminal countdown timer with animated progress bars,
a full-screen focus mode and a big clock.

Durations accept forms like 90, 45s, 5m, 1h30m, "1h 30m" or 2d.
Examples:
  tempus 25m
  tempus -p pomodoro --focus
  tempus 10m -n Tea -t rainbow
  tempus countdown 18:30 --big`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = cleanupServices()
		if errors.Is(err, domain.ErrInterrupted) {
			fmt.Println("Timer interrupted.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to the config file (default: ~/.tempus/config.toml)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, off")
	pf.StringVarP(&themeFlag, "theme", "t", "gradient", "Progress bar theme: "+strings.Join(theme.Names(), ", "))
	pf.BoolVarP(&bellFlag, "bell", "b", true, "Ring the terminal bell when the timer completes")
	pf.BoolVarP(&notifyFlag, "notify", "N", false, "Send a desktop notification when the timer completes")
	pf.BoolVarP(&focusFlag, "focus", "f", false, "Full-screen focus mode with keyboard controls")
	pf.BoolVar(&bigFlag, "big", false, "Full-screen big clock")
	pf.BoolVar(&use12hFlag, "12h", false, "Show the start time in 12-hour format")

	rootCmd.Flags().StringVarP(&timerName, "name", "n", "Timer", "Give this timer a name")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show the remaining time and name next to the bar")
	rootCmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Use a preset duration (pomodoro, short-break, long-break, tea, coffee)")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Tempus\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themesCmd)
}

// runTimer starts a timer from a DURATION argument or a --preset.
func runTimer(cmd *cobra.Command, args []string) error {
	d, err := resolveDuration(args, presetFlag, app.config.PresetDurations())
	if err != nil {
		return err
	}
	req, err := buildRequest(cmd, timerName, d)
	if err != nil {
		return err
	}
	return launchTimer(cmd, req)
}

// resolveDuration picks the timer length. A preset wins over the positional
// duration.
func resolveDuration(args []string, preset string, presets map[string]time.Duration) (time.Duration, error) {
	if preset != "" {
		return domain.ResolvePreset(preset, presets)
	}
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: either DURATION or --preset must be provided", domain.ErrInvalidConfiguration)
	}
	return domain.ParseDuration(args[0])
}

// buildRequest merges command-line flags over the loaded configuration.
// A flag only overrides the config when it was set explicitly.
func buildRequest(cmd *cobra.Command, name string, d time.Duration) (services.StartTimerRequest, error) {
	cfg := app.config
	flags := cmd.Flags()

	themeName := cfg.Theme
	if flags.Changed("theme") {
		themeName = themeFlag
	}
	t, err := theme.Parse(themeName)
	if err != nil {
		return services.StartTimerRequest{}, err
	}

	req := services.StartTimerRequest{
		Name:     name,
		Duration: d,
		Theme:    t,
		Mode:     services.ModeInline,
		Bell:     cfg.Bell,
		Notify:   cfg.Notifications.Notify,
		Verbose:  cfg.Verbose,
		Use12h:   cfg.Use12h(),
		BarWidth: cfg.BarWidth,
	}
	if flags.Changed("bell") {
		req.Bell = bellFlag
	}
	if flags.Changed("notify") {
		req.Notify = notifyFlag
	}
	if flags.Changed("verbose") {
		req.Verbose = verboseFlag
	}
	if flags.Changed("12h") {
		req.Use12h = use12hFlag
	}

	switch {
	case bigFlag:
		req.Mode = services.ModeBigClock
	case focusFlag:
		req.Mode = services.ModeFocus
	}
	return req, nil
}
