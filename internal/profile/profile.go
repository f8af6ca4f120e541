// Package profile holds the user's recurring daily plan configuration
// and builds the task template from it.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/rutina/internal/dateutil"
)

// ErrUnknownShift is returned for an unrecognized shift name.
var ErrUnknownShift = errors.New("unknown shift")

// Role describes what the user does; it only affects display copy.
type Role string

const (
	RoleStudent      Role = "student"
	RoleProfessional Role = "professional"
	RoleTester       Role = "tester"
	RoleOther        Role = "other"
)

// Shift is a work/study shift preset.
type Shift string

const (
	ShiftMorning Shift = "morning" // 07:00-15:00
	ShiftDay     Shift = "day"     // 09:00-17:00
	ShiftNight   Shift = "night"   // 22:00-06:00
	ShiftCustom  Shift = "custom"  // user-provided clocks
)

// ParseShift parses a shift name.
func ParseShift(s string) (Shift, error) {
	switch Shift(strings.ToLower(strings.TrimSpace(s))) {
	case ShiftMorning:
		return ShiftMorning, nil
	case ShiftDay:
		return ShiftDay, nil
	case ShiftNight:
		return ShiftNight, nil
	case ShiftCustom:
		return ShiftCustom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShift, s)
	}
}

// WorkHours returns the preset start and end clocks for the shift.
// Custom shifts have no preset; ok is false.
func (s Shift) WorkHours() (start, end string, ok bool) {
	switch s {
	case ShiftMorning:
		return "07:00", "15:00", true
	case ShiftDay:
		return "09:00", "17:00", true
	case ShiftNight:
		return "22:00", "06:00", true
	default:
		return "", "", false
	}
}

// Habit is a recurring activity with a preferred start time.
type Habit struct {
	Name  string
	Clock string // "HH:MM"
}

// Profile is the one-time setup the daily template is generated from.
// A zero Profile produces an empty template.
type Profile struct {
	Name  string
	Role  Role
	Shift Shift

	// Work block clocks. Filled from the shift preset unless Custom.
	WorkStart string
	WorkEnd   string

	WakeClock  string
	SleepClock string

	MorningHabits  []Habit
	BreakfastClock string
	EveningHabits  []Habit
	DinnerClock    string
}

// IsZero returns true when no profile has been configured.
func (p *Profile) IsZero() bool {
	return p == nil || (p.Name == "" && p.WorkStart == "" && p.WorkEnd == "" &&
		len(p.MorningHabits) == 0 && len(p.EveningHabits) == 0)
}

// Validate checks all clock fields.
func (p *Profile) Validate() error {
	if p.IsZero() {
		return nil
	}
	clocks := map[string]string{
		"work start": p.WorkStart,
		"work end":   p.WorkEnd,
	}
	// Optional clocks are validated only when set.
	for field, c := range map[string]string{
		"wake time":      p.WakeClock,
		"sleep time":     p.SleepClock,
		"breakfast time": p.BreakfastClock,
		"dinner time":    p.DinnerClock,
	} {
		if c != "" {
			clocks[field] = c
		}
	}
	for field, c := range clocks {
		if err := dateutil.ValidateClock(c); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	for _, h := range append(append([]Habit{}, p.MorningHabits...), p.EveningHabits...) {
		if h.Name == "" {
			return errors.New("habit name cannot be empty")
		}
		if err := dateutil.ValidateClock(h.Clock); err != nil {
			return fmt.Errorf("habit %q: %w", h.Name, err)
		}
	}
	return nil
}

// SleepClockOrDefault returns the configured sleep time, defaulting to 23:00.
func (p *Profile) SleepClockOrDefault() string {
	if p == nil || p.SleepClock == "" {
		return "23:00"
	}
	return p.SleepClock
}
