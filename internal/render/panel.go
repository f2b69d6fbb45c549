package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/tempus-cli/internal/theme"
)

var labelOnFill = lipgloss.Color("0")

type panelCell struct {
	theme.Cell
	label    string
	inverted bool
}

// layoutPanel overlays the centered percentage label on the bar cells.
func layoutPanel(width int, progress float64, p *theme.Painter) []panelCell {
	cells := p.Cells(width, progress)
	if len(cells) == 0 {
		return nil
	}
	label := []rune(Percent(progress))
	start := (len(cells) - len(label)) / 2
	if start < 0 {
		start = 0
	}

	out := make([]panelCell, len(cells))
	for i, cell := range cells {
		out[i] = panelCell{Cell: cell}
		if li := i - start; li >= 0 && li < len(label) {
			out[i].label = string(label[li])
			out[i].inverted = cell.State == theme.CellFull
		}
	}
	return out
}

// PanelBar renders an unbracketed bar with the percentage centered inside it.
// Label characters that sit on filled cells are drawn dark on the cell color
// (reverse video when the theme has no color) so they stay readable.
func PanelBar(width int, progress float64, p *theme.Painter) string {
	accent := p.Accent(progress)
	plain := p.Theme() == theme.Plain

	var b strings.Builder
	for _, pc := range layoutPanel(width, progress, p) {
		if pc.label == "" {
			if pc.State == theme.CellEmpty {
				b.WriteString(pc.Glyph)
			} else {
				b.WriteString(fg(pc.Color).Render(pc.Glyph))
			}
			continue
		}

		style := lipgloss.NewStyle().Bold(true)
		switch {
		case pc.inverted && plain:
			style = style.Reverse(true)
		case pc.inverted:
			style = style.Foreground(labelOnFill).Background(pc.Color)
		default:
			style = style.Foreground(accent)
		}
		b.WriteString(style.Render(pc.label))
	}
	return b.String()
}
