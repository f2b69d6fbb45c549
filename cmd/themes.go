package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/xvierd/tempus-cli/internal/render"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// themePreviewProgress is the fill shown by the theme previews.
const themePreviewProgress = 0.62

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Preview the available progress bar themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if theme.ColorDisabled() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		for _, t := range theme.All() {
			p := theme.NewPainter(theme.Effective(t))
			fmt.Fprintf(out, "  %-9s %s %s\n", t, render.Bar(30, themePreviewProgress, p), render.Percent(themePreviewProgress))
		}
		if theme.ColorDisabled() {
			fmt.Fprintln(out, "\n  NO_COLOR is set: every theme renders as plain.")
		}
		fmt.Fprintln(out)
		return nil
	},
}
