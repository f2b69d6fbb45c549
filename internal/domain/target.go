package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/adhocore/gronx"
)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// ParseTarget parses a wall-clock target relative to now. Full dates must lie
// in the future. A bare time of day that has already passed today means the
// same time tomorrow.
func ParseTarget(s string, now time.Time) (time.Time, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return time.Time{}, fmt.Errorf("%w: empty target", ErrInvalidConfiguration)
	}
	loc := now.Location()

	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, in, loc)
		if err != nil {
			continue
		}
		if !t.After(now) {
			return time.Time{}, fmt.Errorf("%w: target %s is in the past", ErrInvalidConfiguration, t.Format(time.RFC3339))
		}
		return t, nil
	}

	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation(layout, in, loc)
		if err != nil {
			continue
		}
		target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return target, nil
	}

	return time.Time{}, fmt.Errorf("%w: cannot parse target %q (try \"15:04\", \"2006-01-02 15:04\" or RFC3339)", ErrInvalidConfiguration, s)
}

// NextCronTarget returns the next instant strictly after now matching a
// five-field cron expression.
func NextCronTarget(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	gron := gronx.New()
	if !gron.IsValid(expr) {
		return time.Time{}, fmt.Errorf("%w: invalid cron expression %q", ErrInvalidConfiguration, expr)
	}
	next, err := gronx.NextTickAfter(expr, now, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cron expression %q: %v", ErrInvalidConfiguration, expr, err)
	}
	return next, nil
}

// UntilTarget converts a target instant into a countdown duration.
func UntilTarget(target, now time.Time) (time.Duration, error) {
	d := target.Sub(now)
	if d <= 0 {
		return 0, fmt.Errorf("%w: target %s is not in the future", ErrInvalidConfiguration, target.Format(time.RFC3339))
	}
	return d, nil
}
