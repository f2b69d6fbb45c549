// Package theme decides the glyph and color of every visual element of a
// timer frame: bar cells, spinner, percentage and completion text.
package theme

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/xvierd/tempus-cli/internal/domain"
)

// Theme selects a coloring policy.
type Theme int

const (
	Plain Theme = iota
	Gradient
	Stepped
	Rainbow
	Pulse
)

var themeNames = map[Theme]string{
	Plain:    "plain",
	Gradient: "gradient",
	Stepped:  "stepped",
	Rainbow:  "rainbow",
	Pulse:    "pulse",
}

var aliases = map[string]Theme{
	"color":    Stepped,
	"none":     Plain,
	"nocolor":  Plain,
	"no-color": Plain,
}

// All returns every theme in display order.
func All() []Theme {
	return []Theme{Gradient, Stepped, Rainbow, Pulse, Plain}
}

// Names returns the canonical theme names in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.String()
	}
	return names
}

func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("theme(%d)", int(t))
}

// Parse resolves a theme by name, case-insensitively.
func Parse(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Gradient, nil
	}
	for t, n := range themeNames {
		if n == key {
			return t, nil
		}
	}
	if t, ok := aliases[key]; ok {
		return t, nil
	}

	if suggestion := domain.Suggest(key, Names()); suggestion != "" {
		return Plain, fmt.Errorf("%w: unknown theme %q (did you mean %q?)", domain.ErrInvalidConfiguration, name, suggestion)
	}
	return Plain, fmt.Errorf("%w: unknown theme %q: must be one of %s", domain.ErrInvalidConfiguration, name, strings.Join(Names(), ", "))
}

// ColorDisabled reports whether the environment asks for monochrome output.
func ColorDisabled() bool {
	return termenv.EnvNoColor()
}

// Effective returns Plain when color is disabled in the environment, otherwise t.
func Effective(t Theme) Theme {
	if ColorDisabled() {
		return Plain
	}
	return t
}
