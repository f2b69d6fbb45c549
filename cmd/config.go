package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/tempus-cli/internal/config"
	"github.com/xvierd/tempus-cli/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit the configuration",
	Long: `Show the effective configuration. Use "tempus config set KEY VALUE" to change a
setting, "tempus config reset" to restore the defaults and "tempus config path"
to locate the file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printConfig(cmd.OutOrStdout(), app.config)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.configPath)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a setting and save it. Keys:
  ` + strings.Join(config.Keys(), "\n  ") + `
  presets.<name>`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(app.configPath, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Saved: %s = %s\n", strings.ToLower(args[0]), args[1])
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := config.DefaultConfig()
		var err error
		if configPath == "" {
			err = config.Save(defaults)
		} else {
			err = config.SaveTo(configPath, defaults)
		}
		if err != nil {
			return err
		}
		app.config = defaults
		fmt.Fprintf(cmd.OutOrStdout(), "  Reset: %s\n", app.configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
}

func printConfig(w io.Writer, cfg *config.Config) {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	notifStatus := "off"
	if cfg.Notifications.Enabled {
		notifStatus = "on"
		if cfg.Notifications.Sound {
			notifStatus = "on (with sound)"
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Current configuration:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    Theme:                 %s\n", cfg.Theme)
	fmt.Fprintf(w, "    Bell:                  %s\n", onOff(cfg.Bell))
	fmt.Fprintf(w, "    Verbose:               %s\n", onOff(cfg.Verbose))
	fmt.Fprintf(w, "    Clock format:          %s\n", cfg.ClockFormat)
	fmt.Fprintf(w, "    Bar width:             %d\n", cfg.BarWidth)
	fmt.Fprintf(w, "    Notifications:         %s\n", notifStatus)
	fmt.Fprintf(w, "    Notify on completion:  %s\n", onOff(cfg.Notifications.Notify))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Focus mode:")
	fmt.Fprintf(w, "    Tick:                  %s\n", cfg.Focus.Tick)
	fmt.Fprintf(w, "    Extend step:           %s\n", cfg.Focus.ExtendStep)
	fmt.Fprintf(w, "    Alert threshold:       %s\n", cfg.Focus.AlertThreshold)
	fmt.Fprintf(w, "    Alert step:            %s\n", cfg.Focus.AlertStep)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Presets:")
	presets := cfg.PresetDurations()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "    %-22s %s\n", name+":", formatPreset(presets[name]))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Log level: %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Fprintf(w, "  Log file:  %s\n", cfg.Log.File)
	}
	fmt.Fprintln(w)
}

// formatPreset formats a preset duration as a human-friendly string like "25m" or "1h30m".
func formatPreset(d time.Duration) string {
	if d%time.Minute != 0 {
		return domain.FormatSimple(d)
	}
	if d >= time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
