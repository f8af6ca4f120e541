package db

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/javiermolinar/rutina/internal/profile"
	"github.com/javiermolinar/rutina/internal/session"
	"github.com/javiermolinar/rutina/internal/task"
)

var testDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testTask(t *testing.T, title string, hour int, fixed bool) *task.Task {
	t.Helper()
	start := testDate.Add(time.Duration(hour) * time.Hour)
	tk, err := task.NewSpan(title, start, start.Add(time.Hour), fixed)
	if err != nil {
		t.Fatalf("creating task: %v", err)
	}
	return tk
}

func TestLoadState_Empty(t *testing.T) {
	s := newTestStore(t)

	st, err := s.LoadState(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != nil {
		t.Errorf("expected nil state from empty store, got %+v", st)
	}
}

func TestSaveState_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	work := testTask(t, "Work / College", 9, true)
	gym := testTask(t, "Gym", 18, false)
	gym.Source = task.SourceManual

	in := &session.State{
		Date: testDate,
		Profile: &profile.Profile{
			Name:           "Javier",
			Role:           profile.RoleProfessional,
			Shift:          profile.ShiftDay,
			WorkStart:      "09:00",
			WorkEnd:        "17:00",
			BreakfastClock: "08:00",
			DinnerClock:    "19:00",
			MorningHabits:  []profile.Habit{{Name: "Jogging", Clock: "06:30"}, {Name: "Meditation", Clock: "07:10"}},
			EveningHabits:  []profile.Habit{{Name: "Reading", Clock: "21:00"}},
		},
		Day:          []*task.Task{work, gym},
		CompletedIDs: []string{work.ID},
		Holiday:      false,
	}

	if err := s.SaveState(ctx, in); err != nil {
		t.Fatalf("saving state: %v", err)
	}

	out, err := s.LoadState(ctx, testDate)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if out == nil {
		t.Fatal("expected state back")
	}

	if out.Profile.Name != "Javier" {
		t.Errorf("expected profile name Javier, got %s", out.Profile.Name)
	}
	if out.Profile.Shift != profile.ShiftDay {
		t.Errorf("expected day shift, got %s", out.Profile.Shift)
	}
	if len(out.Profile.MorningHabits) != 2 || len(out.Profile.EveningHabits) != 1 {
		t.Errorf("habits lost: %d morning, %d evening",
			len(out.Profile.MorningHabits), len(out.Profile.EveningHabits))
	}
	if out.Profile.MorningHabits[0].Name != "Jogging" {
		t.Errorf("habit order lost: %v", out.Profile.MorningHabits)
	}

	if len(out.Day) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(out.Day))
	}
	got := out.Day[0]
	if got.ID != work.ID || got.Title != "Work / College" {
		t.Errorf("first task mismatch: %+v", got)
	}
	if !got.Fixed {
		t.Error("fixed flag lost")
	}
	if !got.Start.Equal(work.Start) || !got.End.Equal(work.End) {
		t.Errorf("instants mismatch: %s-%s", got.Start, got.End)
	}
	if out.Day[1].Source != task.SourceManual {
		t.Errorf("source lost: %s", out.Day[1].Source)
	}

	if !slices.Equal(out.CompletedIDs, []string{work.ID}) {
		t.Errorf("completed IDs mismatch: %v", out.CompletedIDs)
	}
	if out.Holiday {
		t.Error("holiday flag mismatch")
	}
}

func TestSaveState_ReplacesDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &session.State{
		Date: testDate,
		Day:  []*task.Task{testTask(t, "Old", 9, false)},
	}
	if err := s.SaveState(ctx, first); err != nil {
		t.Fatalf("saving first state: %v", err)
	}

	second := &session.State{
		Date:    testDate,
		Day:     []*task.Task{testTask(t, "New", 10, false)},
		Holiday: true,
	}
	if err := s.SaveState(ctx, second); err != nil {
		t.Fatalf("saving second state: %v", err)
	}

	out, err := s.LoadState(ctx, testDate)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if len(out.Day) != 1 || out.Day[0].Title != "New" {
		t.Errorf("expected the day replaced, got %v", out.Day)
	}
	if !out.Holiday {
		t.Error("expected holiday flag updated")
	}
}

func TestSaveState_DaysAreIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	other := testDate.AddDate(0, 0, 1)

	if err := s.SaveState(ctx, &session.State{
		Date: testDate,
		Day:  []*task.Task{testTask(t, "Monday task", 9, false)},
	}); err != nil {
		t.Fatalf("saving: %v", err)
	}
	if err := s.SaveState(ctx, &session.State{
		Date: other,
		Day:  []*task.Task{testTask(t, "Tuesday task", 9, false)},
	}); err != nil {
		t.Fatalf("saving: %v", err)
	}

	out, err := s.LoadState(ctx, testDate)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if len(out.Day) != 1 || out.Day[0].Title != "Monday task" {
		t.Errorf("days leaked into each other: %v", out.Day)
	}
}

func TestSaveState_ProfileUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &profile.Profile{Name: "Javier", WorkStart: "09:00", WorkEnd: "17:00"}
	if err := s.SaveState(ctx, &session.State{Date: testDate, Profile: p}); err != nil {
		t.Fatalf("saving: %v", err)
	}

	p.Name = "Javi"
	p.WorkEnd = "16:00"
	if err := s.SaveState(ctx, &session.State{Date: testDate, Profile: p}); err != nil {
		t.Fatalf("saving: %v", err)
	}

	out, err := s.LoadState(ctx, testDate)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if out.Profile.Name != "Javi" || out.Profile.WorkEnd != "16:00" {
		t.Errorf("profile not updated: %+v", out.Profile)
	}
}

func TestSaveState_ZeroProfileNotStored(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveState(ctx, &session.State{
		Date:    testDate,
		Profile: &profile.Profile{},
		Day:     []*task.Task{testTask(t, "Task", 9, false)},
	}); err != nil {
		t.Fatalf("saving: %v", err)
	}

	out, err := s.LoadState(ctx, testDate)
	if err != nil {
		t.Fatalf("loading state: %v", err)
	}
	if out.Profile != nil {
		t.Errorf("expected no stored profile, got %+v", out.Profile)
	}
}
