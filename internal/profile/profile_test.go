package profile

import (
	"errors"
	"testing"
)

func TestParseShift(t *testing.T) {
	tests := []struct {
		in   string
		want Shift
	}{
		{"morning", ShiftMorning},
		{"day", ShiftDay},
		{"night", ShiftNight},
		{"custom", ShiftCustom},
		{"  Day ", ShiftDay},
		{"NIGHT", ShiftNight},
	}
	for _, tc := range tests {
		got, err := ParseShift(tc.in)
		if err != nil {
			t.Errorf("ParseShift(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseShift(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseShift_Unknown(t *testing.T) {
	_, err := ParseShift("graveyard")
	if !errors.Is(err, ErrUnknownShift) {
		t.Errorf("expected ErrUnknownShift, got %v", err)
	}
}

func TestWorkHours(t *testing.T) {
	tests := []struct {
		shift      Shift
		start, end string
		ok         bool
	}{
		{ShiftMorning, "07:00", "15:00", true},
		{ShiftDay, "09:00", "17:00", true},
		{ShiftNight, "22:00", "06:00", true},
		{ShiftCustom, "", "", false},
	}
	for _, tc := range tests {
		start, end, ok := tc.shift.WorkHours()
		if start != tc.start || end != tc.end || ok != tc.ok {
			t.Errorf("%s.WorkHours() = %s, %s, %v", tc.shift, start, end, ok)
		}
	}
}

func TestIsZero(t *testing.T) {
	var p *Profile
	if !p.IsZero() {
		t.Error("nil profile must be zero")
	}
	if !(&Profile{}).IsZero() {
		t.Error("empty profile must be zero")
	}
	if (&Profile{WorkStart: "09:00"}).IsZero() {
		t.Error("profile with a work clock is not zero")
	}
	if (&Profile{MorningHabits: []Habit{{Name: "Jogging", Clock: "06:30"}}}).IsZero() {
		t.Error("profile with habits is not zero")
	}
}

func TestValidate(t *testing.T) {
	p := &Profile{
		Name:           "Javier",
		Shift:          ShiftDay,
		WorkStart:      "09:00",
		WorkEnd:        "17:00",
		BreakfastClock: "08:00",
		MorningHabits:  []Habit{{Name: "Jogging", Clock: "06:30"}},
	}
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_ZeroProfileIsValid(t *testing.T) {
	if err := (&Profile{}).Validate(); err != nil {
		t.Errorf("zero profile must validate: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		p    *Profile
	}{
		{"missing work end", &Profile{Name: "J", WorkStart: "09:00"}},
		{"bad work start", &Profile{WorkStart: "9am", WorkEnd: "17:00"}},
		{"bad optional clock", &Profile{WorkStart: "09:00", WorkEnd: "17:00", DinnerClock: "late"}},
		{"habit without name", &Profile{WorkStart: "09:00", WorkEnd: "17:00", MorningHabits: []Habit{{Clock: "06:30"}}}},
		{"habit with bad clock", &Profile{WorkStart: "09:00", WorkEnd: "17:00", EveningHabits: []Habit{{Name: "Reading", Clock: "9pm"}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSleepClockOrDefault(t *testing.T) {
	var nilProfile *Profile
	if got := nilProfile.SleepClockOrDefault(); got != "23:00" {
		t.Errorf("nil profile: got %s, want 23:00", got)
	}
	if got := (&Profile{}).SleepClockOrDefault(); got != "23:00" {
		t.Errorf("unset: got %s, want 23:00", got)
	}
	if got := (&Profile{SleepClock: "22:30"}).SleepClockOrDefault(); got != "22:30" {
		t.Errorf("set: got %s, want 22:30", got)
	}
}
