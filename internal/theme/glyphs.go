package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames is the braille spinner cycle, one glyph per frame.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressRamp holds the partial-fill glyphs from one eighth to a full block.
var ProgressRamp = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

const (
	FullGlyph  = "█"
	EmptyGlyph = " "
	Bracket    = "┃"
)

// CellState says how much of a bar cell is filled.
type CellState int

const (
	CellEmpty CellState = iota
	CellPartial
	CellFull
)

// Cell is one column of a progress bar.
type Cell struct {
	Glyph string
	State CellState
	Color lipgloss.TerminalColor
}

// PartialGlyph picks the ramp glyph for a cell that is fraction f filled.
// Occupancy just under 1 yields the glyph before the full block.
func PartialGlyph(f float64) string {
	idx := int(math.Floor(clamp01(f) * float64(len(ProgressRamp)-1)))
	return ProgressRamp[idx]
}

// Cells lays out a bar of width cells filled up to progress and colors them
// with p. Only the boundary cell with a non-zero fractional fill is partial.
func (p *Painter) Cells(width int, progress float64) []Cell {
	if width <= 0 {
		return nil
	}
	progress = clamp01(progress)
	exact := progress * float64(width)
	full := int(math.Floor(exact))
	frac := exact - float64(full)

	cells := make([]Cell, width)
	for i := range cells {
		switch {
		case i < full:
			position := float64(i) / float64(width)
			cells[i] = Cell{Glyph: FullGlyph, State: CellFull, Color: p.Fill(position, progress)}
		case i == full && frac > 0:
			cells[i] = Cell{Glyph: PartialGlyph(frac), State: CellPartial, Color: p.Partial()}
		default:
			cells[i] = Cell{Glyph: EmptyGlyph, State: CellEmpty, Color: colorNone}
		}
	}
	return cells
}
