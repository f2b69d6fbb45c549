package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// DefaultPresets are the named durations available without any configuration.
var DefaultPresets = map[string]time.Duration{
	"pomodoro":    25 * time.Minute,
	"short-break": 5 * time.Minute,
	"long-break":  15 * time.Minute,
	"tea":         3 * time.Minute,
	"coffee":      4 * time.Minute,
}

// ResolvePreset looks a preset up by name. A name that is not a preset is
// parsed as a duration, so "--preset 90s" works too.
func ResolvePreset(name string, presets map[string]time.Duration) (time.Duration, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := presets[key]; ok {
		if d <= 0 {
			return 0, fmt.Errorf("%w: preset %q has non-positive duration %s", ErrInvalidConfiguration, key, d)
		}
		return d, nil
	}

	d, err := ParseDuration(key)
	if err == nil {
		return d, nil
	}

	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	if suggestion := Suggest(key, names); suggestion != "" {
		return 0, fmt.Errorf("%w: unknown preset %q (did you mean %q?)", ErrInvalidConfiguration, name, suggestion)
	}
	return 0, fmt.Errorf("%w: unknown preset %q: must be one of %s", ErrInvalidConfiguration, name, strings.Join(names, ", "))
}

// Suggest returns the closest fuzzy match for query among candidates, or "".
func Suggest(query string, candidates []string) string {
	if query == "" {
		return ""
	}
	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
