// Package render turns a timer snapshot and a theme painter into terminal text.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// DefaultBarWidth is the number of cells in a progress bar.
const DefaultBarWidth = 40

// Options controls the text around the bar.
type Options struct {
	Verbose  bool
	Use12h   bool
	BarWidth int
}

func (o Options) barWidth() int {
	if o.BarWidth <= 0 {
		return DefaultBarWidth
	}
	return o.BarWidth
}

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Percent formats progress as a percentage with one decimal.
func Percent(progress float64) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return fmt.Sprintf("%.1f%%", progress*100)
}

// ClockLabel formats a wall-clock instant in 24h or 12h form.
func ClockLabel(t time.Time, use12h bool) string {
	if use12h {
		return t.Format("03:04:05 PM")
	}
	return t.Format("15:04:05")
}

// Header renders "start | name | X remaining".
func Header(startedAt time.Time, snap domain.Snapshot, p *theme.Painter, opts Options) string {
	style := fg(p.Header())
	return fmt.Sprintf("%s | %s | %s remaining",
		style.Render(ClockLabel(startedAt, opts.Use12h)),
		style.Bold(true).Render(snap.Name),
		style.Render(domain.FormatSimple(snap.Remaining)),
	)
}

// Bar renders a bracketed bar of width cells.
func Bar(width int, progress float64, p *theme.Painter) string {
	var b strings.Builder
	b.WriteString(theme.Bracket)
	for _, cell := range p.Cells(width, progress) {
		if cell.State == theme.CellEmpty {
			b.WriteString(cell.Glyph)
			continue
		}
		b.WriteString(fg(cell.Color).Render(cell.Glyph))
	}
	b.WriteString(theme.Bracket)
	return b.String()
}

// Line renders the inline progress line: spinner, bar, percentage and, when
// verbose, the remaining time and name.
func Line(frame int, snap domain.Snapshot, p *theme.Painter, opts Options) string {
	glyph, spinColor := p.Spinner(frame)

	var b strings.Builder
	b.WriteString(fg(spinColor).Render(glyph))
	b.WriteString(" ")
	b.WriteString(Bar(opts.barWidth(), snap.Progress, p))
	b.WriteString(" ")
	b.WriteString(fg(p.Accent(snap.Progress)).Bold(true).Render(Percent(snap.Progress)))
	if opts.Verbose {
		b.WriteString(" ")
		b.WriteString(fg(p.Header()).Render("(" + domain.FormatSimple(snap.Remaining) + ")"))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(snap.Name))
	}
	return b.String()
}

// CompletionLine renders "NAME completed! (took X)".
func CompletionLine(name string, took time.Duration, p *theme.Painter) string {
	return fmt.Sprintf("%s completed! (took %s)",
		fg(p.Completion()).Bold(true).Render(name),
		domain.FormatSimple(took),
	)
}
