package daycalc

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date-only layout used for the reset marker.
const DateLayout = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local timezone.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Set T to move it.
type FixedClock struct {
	T time.Time
}

// Now returns c.T.
func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// DateKey formats the calendar date of t, ignoring the time of day.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// markerLayouts are the date forms a reset marker may have been written in:
// the ISO date this tool writes, full timestamps, and the locale strings of
// older clients.
var markerLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"Mon Jan 2 2006",
	"1/2/2006",
	"2/1/2006",
	"2.1.2006",
	"2006/1/2",
}

// ParseDate reads a stored date in any of the known marker forms. Forms
// without a zone are read in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range markerLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayName returns the lower-case weekday name of t, e.g. "monday".
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// NormalizeDay turns user input like "Monday", "mon" or "today" into the
// lower-case weekday name used as a storage key.
func NormalizeDay(s string, now time.Time) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("day must not be empty")
	}
	if s == "today" {
		return DayName(now), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// FormatMinutes formats a duration in minutes like "1h 30m" or "45 mins".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%d mins", m)
}
