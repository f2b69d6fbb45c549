package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/render"
	"github.com/xvierd/tempus-cli/internal/theme"
)

var (
	colorPaused = lipgloss.Color("3")
	colorDim    = lipgloss.Color("8")
	colorTitle  = lipgloss.Color("15")
)

// View renders the TUI.
func (m Model) View() string {
	var content string
	switch {
	case m.Completed():
		content = m.completionView()
	case m.opts.Layout == LayoutBigClock:
		content = m.bigClockView()
	default:
		content = m.focusView()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// color returns c, or no color at all under the plain theme.
func (m Model) color(c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if m.painter.Theme() == theme.Plain {
		return lipgloss.NoColor{}
	}
	return c
}

func pausedLabel(snap domain.Snapshot) string {
	return strings.ToUpper(domain.GetStatusLabel(snap.Status))
}

func (m Model) barWidth() int {
	return clampInt(m.width-8, 20, 60)
}

func (m Model) statusLine(snap domain.Snapshot) string {
	text := domain.FormatSimple(snap.Remaining) + " remaining"
	if snap.IsPaused() {
		text = pausedLabel(snap) + " - " + text
	}
	if snap.Alert.Enabled {
		text += fmt.Sprintf(" | alert: %s", domain.FormatSimple(snap.Alert.Threshold))
	}
	style := lipgloss.NewStyle().Bold(true)
	if snap.IsPaused() {
		style = style.Foreground(m.color(colorPaused))
	}
	return style.Render(text)
}

func (m Model) focusView() string {
	snap := m.session.Snapshot()
	width := m.barWidth()

	title := lipgloss.NewStyle().Bold(true).Foreground(m.color(colorTitle)).Render("FOCUS MODE")
	name := lipgloss.NewStyle().Bold(true).Render(snap.Name)
	bar := render.PanelBar(width, snap.Progress, m.painter)
	helpView := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		name,
		bar,
		m.statusLine(snap),
		"",
		helpView,
	)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.painter.Frame(snap.AlertActive)).
		Padding(0, 1)
	return panel.Render(body)
}

func (m Model) bigClockView() string {
	snap := m.session.Snapshot()

	title := lipgloss.NewStyle().Bold(true).Foreground(m.color(colorTitle)).Render(snap.Name)
	clock := render.BigTime(domain.FormatClock(snap.Remaining), m.painter.Accent(snap.Progress), m.width)

	sections := []string{title, "", clock, ""}
	if m.painter.Theme() == theme.Plain {
		sections = append(sections, render.PanelBar(m.progress.Width, snap.Progress, m.painter))
	} else {
		sections = append(sections, m.progress.ViewAs(snap.Progress))
	}
	if snap.IsPaused() {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Foreground(m.color(colorPaused)).Render(pausedLabel(snap)))
	} else {
		sections = append(sections, "")
	}
	sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.painter.Frame(false)).
		Padding(1, 2)
	return panel.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m Model) completionView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.painter.Completion()).
		Render(m.session.Name + " completed!")
	took := lipgloss.NewStyle().Render("took " + domain.FormatSimple(m.took))
	hintText := "Press any key to exit"
	if m.exitRequested {
		hintText = "Sending notification..."
	}
	hint := lipgloss.NewStyle().Foreground(m.color(colorDim)).Render(hintText)
	return lipgloss.JoinVertical(lipgloss.Center, title, took, "", hint)
}
