package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var durationUnits = map[string]time.Duration{
	"ms":      time.Millisecond,
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"d":       24 * time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
}

// ParseDuration parses human-friendly durations such as "25m", "1h 30m",
// "90s", "2 minutes" or "1d". A bare number is taken as seconds.
// The result must be positive.
func ParseDuration(s string) (time.Duration, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrInvalidConfiguration)
	}

	if isNumber(in) {
		n, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid duration %q", ErrInvalidConfiguration, s)
		}
		return positive(s, time.Duration(n*float64(time.Second)))
	}

	rest := strings.Join(strings.Fields(in), "")
	var total time.Duration
	for rest != "" {
		i := 0
		for i < len(rest) && (isDigit(rest[i]) || rest[i] == '.') {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("%w: invalid duration %q", ErrInvalidConfiguration, s)
		}
		n, err := strconv.ParseFloat(rest[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid duration %q", ErrInvalidConfiguration, s)
		}

		j := i
		for j < len(rest) && isLetter(rest[j]) {
			j++
		}
		unit, ok := durationUnits[rest[i:j]]
		if !ok {
			return 0, fmt.Errorf("%w: invalid duration %q: unknown unit %q", ErrInvalidConfiguration, s, rest[i:j])
		}
		total += time.Duration(n * float64(unit))
		rest = rest[j:]
	}
	return positive(s, total)
}

func positive(s string, d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: duration %q must be positive", ErrInvalidConfiguration, s)
	}
	return d, nil
}

func isNumber(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && s[i] != '.' {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return b >= 'a' && b <= 'z' }

// FormatSimple renders d as "1h 2m 3s", "2m 3s" or "3s", dropping leading
// zero units. Sub-second precision is truncated.
func FormatSimple(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	sec := secs % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, sec)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, sec)
	default:
		return fmt.Sprintf("%ds", sec)
	}
}

// FormatClock renders d as MM:SS, or HH:MM:SS once it reaches an hour.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	sec := secs % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
