package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BigClockMinWidth is the narrowest terminal that gets block digits.
const BigClockMinWidth = 40

// digitMap maps each digit and the colon to a 5-line block glyph, 5 cells wide.
var digitMap = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {" ███ ", "    █", " ███ ", "█    ", "█████"},
	'3': {"████ ", "    █", " ███ ", "    █", "████ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  ░  ", "     ", "  ░  ", "     "},
}

// BigTime renders a clock string such as "04:59" or "01:00:00" as block
// digits. Terminals narrower than BigClockMinWidth, or than the digits
// themselves, get a single bold line.
func BigTime(clock string, color lipgloss.TerminalColor, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < BigClockMinWidth {
		return style.Render(clock)
	}

	lines := [5]string{}
	for _, ch := range clock {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	if ansi.StringWidth(lines[0]) > width {
		return style.Render(clock)
	}

	styled := make([]string, 5)
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return strings.Join(styled, "\n")
}
