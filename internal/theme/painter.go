package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// PulseSpeed is how far the pulse phase moves per rendered frame.
const PulseSpeed = 0.2

var (
	colorRed           = lipgloss.Color("1")
	colorGreen         = lipgloss.Color("2")
	colorYellow        = lipgloss.Color("3")
	colorBlue          = lipgloss.Color("4")
	colorMagenta       = lipgloss.Color("5")
	colorCyan          = lipgloss.Color("6")
	colorBrightRed     = lipgloss.Color("9")
	colorBrightGreen   = lipgloss.Color("10")
	colorBrightBlue    = lipgloss.Color("12")
	colorBrightCyan    = lipgloss.Color("14")
	colorBrightWhite   = lipgloss.Color("15")
	colorNone          = lipgloss.NoColor{}
	rainbowCycle       = []lipgloss.TerminalColor{colorRed, colorYellow, colorGreen, colorCyan, colorBlue, colorMagenta}
	gradientStops      = []colorful.Color{{R: 0, G: 1, B: 0}, {R: 1, G: 1, B: 0}, {R: 1, G: 0, B: 0}}
	pulseSpinnerColors = []lipgloss.TerminalColor{colorCyan, colorBrightCyan}
)

// Painter applies a Theme to individual frame elements. It carries the pulse
// phase, so one Painter belongs to one running timer.
type Painter struct {
	theme Theme
	phase float64
}

// NewPainter returns a painter for t.
func NewPainter(t Theme) *Painter {
	return &Painter{theme: t}
}

// Theme returns the painter's theme.
func (p *Painter) Theme() Theme { return p.theme }

// Phase returns the current pulse phase in [0, 1).
func (p *Painter) Phase() float64 { return p.phase }

// Advance moves the pulse phase one frame forward.
func (p *Painter) Advance() {
	p.phase = math.Mod(p.phase+PulseSpeed, 1)
}

// Fill returns the color of a fully filled bar cell at position (0..1 along
// the bar) when the bar is filled up to progress.
func (p *Painter) Fill(position, progress float64) lipgloss.TerminalColor {
	switch p.theme {
	case Gradient:
		return GradientAt(position / math.Max(progress, 0.01))
	case Stepped:
		return stepped(position)
	case Rainbow:
		idx := int(position*float64(len(rainbowCycle))) % len(rainbowCycle)
		return rainbowCycle[idx]
	case Pulse:
		brightness := math.Abs(math.Sin(math.Pi * math.Mod(position+p.phase, 1)))
		switch {
		case brightness > 0.7:
			return colorBrightCyan
		case brightness > 0.3:
			return colorCyan
		default:
			return colorBlue
		}
	default:
		return colorNone
	}
}

// Partial returns the color of the partially filled boundary cell.
func (p *Painter) Partial() lipgloss.TerminalColor {
	switch p.theme {
	case Gradient:
		return GradientAt(0)
	case Stepped:
		return colorBrightGreen
	case Rainbow:
		return colorBrightWhite
	case Pulse:
		return colorBrightBlue
	default:
		return colorNone
	}
}

// Accent returns the color of the percentage label.
func (p *Painter) Accent(progress float64) lipgloss.TerminalColor {
	switch p.theme {
	case Gradient:
		return GradientAt(progress)
	case Stepped:
		return stepped(progress)
	case Rainbow:
		return colorBrightWhite
	case Pulse:
		return colorBrightCyan
	default:
		return colorNone
	}
}

// Spinner returns the spinner glyph and its color for the given frame number.
func (p *Painter) Spinner(frame int) (string, lipgloss.TerminalColor) {
	if frame < 0 {
		frame = 0
	}
	idx := frame % len(SpinnerFrames)
	glyph := SpinnerFrames[idx]
	switch p.theme {
	case Gradient, Stepped:
		return glyph, colorCyan
	case Rainbow:
		return glyph, rainbowCycle[(idx/2)%len(rainbowCycle)]
	case Pulse:
		return glyph, pulseSpinnerColors[idx%len(pulseSpinnerColors)]
	default:
		return glyph, colorNone
	}
}

// Header returns the color of header and verbose text.
func (p *Painter) Header() lipgloss.TerminalColor {
	if p.theme == Plain {
		return colorNone
	}
	return colorBrightWhite
}

// Completion returns the color of the completion message.
func (p *Painter) Completion() lipgloss.TerminalColor {
	switch p.theme {
	case Gradient, Stepped:
		return colorBrightGreen
	case Rainbow, Pulse:
		return colorBrightCyan
	default:
		return colorNone
	}
}

// Frame returns the panel border color, or the alert color while an alert is active.
func (p *Painter) Frame(alertActive bool) lipgloss.TerminalColor {
	if p.theme == Plain {
		return colorNone
	}
	if alertActive {
		return colorRed
	}
	return colorCyan
}

// GradientAt samples the green, yellow, red gradient at t in [0, 1].
func GradientAt(t float64) lipgloss.TerminalColor {
	t = clamp01(t)
	segments := float64(len(gradientStops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(gradientStops)-1 {
		return lipgloss.Color(gradientStops[len(gradientStops)-1].Hex())
	}
	c := gradientStops[i].BlendRgb(gradientStops[i+1], pos-float64(i))
	return lipgloss.Color(c.Clamped().Hex())
}

func stepped(position float64) lipgloss.TerminalColor {
	switch {
	case position < 0.33:
		return colorGreen
	case position < 0.66:
		return colorYellow
	default:
		return colorBrightRed
	}
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
