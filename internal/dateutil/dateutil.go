// Package dateutil provides clock and date helpers.
//
// Times of day ("clocks") travel through the application as "HH:MM"
// strings; they only become concrete instants when combined with a
// calendar date.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrInvalidClockFormat = errors.New("time must be in HH:MM format")
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
)

// ValidateClock checks that s is a valid "HH:MM" time of day.
func ValidateClock(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidClockFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidClockFormat
	}
	return nil
}

// ClockMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func ClockMinutes(s string) int {
	if len(s) < 5 {
		return 0
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + mins
}

// Clock formats an instant's time of day as "HH:MM".
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// At combines a calendar date with an "HH:MM" clock, producing an
// instant in the date's location. Invalid clocks yield midnight.
func At(date time.Time, clock string) time.Time {
	m := ClockMinutes(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location())
}

// TruncateToDay returns t with the time component set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatRange renders a start/end pair for display, e.g. "09:00-10:30".
func FormatRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", Clock(start), Clock(end))
}
