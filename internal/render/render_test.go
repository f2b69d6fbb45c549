package render

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/theme"
)

func plainPainter() *theme.Painter { return theme.NewPainter(theme.Plain) }

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "42.5%", Percent(0.425))
	assert.Equal(t, "100.0%", Percent(1))
	assert.Equal(t, "100.0%", Percent(1.3))
	assert.Equal(t, "0.0%", Percent(-1))
}

func TestClockLabel(t *testing.T) {
	at := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "15:04:05", ClockLabel(at, false))
	assert.Equal(t, "03:04:05 PM", ClockLabel(at, true))
}

func TestHeader(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	snap := domain.Snapshot{Name: "Tea", Remaining: 2*time.Minute + 5*time.Second}
	got := ansi.Strip(Header(at, snap, plainPainter(), Options{}))
	assert.Equal(t, "09:00:00 | Tea | 2m 5s remaining", got)
}

func TestBar(t *testing.T) {
	got := ansi.Strip(Bar(10, 0.55, plainPainter()))
	assert.Equal(t, "┃█████▌    ┃", got)

	got = ansi.Strip(Bar(4, 1, plainPainter()))
	assert.Equal(t, "┃████┃", got)
}

func TestLine(t *testing.T) {
	snap := domain.Snapshot{Name: "Eggs", Progress: 0.5, Remaining: 3 * time.Second}
	got := ansi.Strip(Line(0, snap, plainPainter(), Options{BarWidth: 4}))
	assert.Equal(t, "⠋ ┃██  ┃ 50.0%", got)

	got = ansi.Strip(Line(11, snap, plainPainter(), Options{BarWidth: 4, Verbose: true}))
	assert.Equal(t, "⠙ ┃██  ┃ 50.0% (3s) Eggs", got)
}

func TestLine_DefaultWidth(t *testing.T) {
	snap := domain.Snapshot{Name: "x", Progress: 0}
	got := ansi.Strip(Line(0, snap, plainPainter(), Options{}))
	parts := strings.Split(got, "┃")
	require.Len(t, parts, 3)
	assert.Equal(t, DefaultBarWidth, utf8.RuneCountInString(parts[1]))
}

func TestCompletionLine(t *testing.T) {
	got := ansi.Strip(CompletionLine("Tea", 5*time.Second, plainPainter()))
	assert.Equal(t, "Tea completed! (took 5s)", got)
}

func TestPanelBar_CentersLabel(t *testing.T) {
	got := ansi.Strip(PanelBar(20, 0, plainPainter()))
	require.Equal(t, 20, ansi.StringWidth(got))
	assert.Equal(t, "        0.0%        ", got)
}

func TestLayoutPanel_InvertsOverFill(t *testing.T) {
	// "50.0%" spans cells 7..11 of a 20-cell bar, fill covers 0..9.
	cells := layoutPanel(20, 0.5, plainPainter())
	var label strings.Builder
	var inverted []bool
	for _, c := range cells {
		if c.label != "" {
			label.WriteString(c.label)
			inverted = append(inverted, c.inverted)
		}
	}
	assert.Equal(t, "50.0%", label.String())
	assert.Equal(t, []bool{true, true, true, false, false}, inverted)
}

func TestLayoutPanel_Empty(t *testing.T) {
	assert.Nil(t, layoutPanel(0, 0.5, plainPainter()))
	assert.Equal(t, "", PanelBar(0, 0.5, plainPainter()))
}

func TestBigTime(t *testing.T) {
	got := BigTime("01:05", plainPainter().Header(), 80)
	lines := strings.Split(ansi.Strip(got), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, " ███    █          ███  █████", lines[0])

	small := ansi.Strip(BigTime("01:05", plainPainter().Header(), 20))
	assert.Equal(t, "01:05", small)

	// HH:MM:SS needs 47 columns.
	assert.Equal(t, "01:00:00", ansi.Strip(BigTime("01:00:00", plainPainter().Header(), 45)))
	assert.Len(t, strings.Split(BigTime("01:00:00", plainPainter().Header(), 47), "\n"), 5)
}
