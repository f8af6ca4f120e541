package schedule

import (
	"testing"
	"time"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/task"
)

var testDay = time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local) // a Monday

func at(clock string) time.Time {
	return dateutil.At(testDay, clock)
}

func span(t *testing.T, title, start, end string) *task.Task {
	t.Helper()
	tk, err := task.NewSpan(title, at(start), at(end), false)
	if err != nil {
		t.Fatalf("creating task %q: %v", title, err)
	}
	return tk
}

func fixedSpan(t *testing.T, title, start, end string) *task.Task {
	t.Helper()
	tk, err := task.NewSpan(title, at(start), at(end), true)
	if err != nil {
		t.Fatalf("creating task %q: %v", title, err)
	}
	return tk
}

func assertRange(t *testing.T, tk *task.Task, start, end string) {
	t.Helper()
	if !tk.Start.Equal(at(start)) || !tk.End.Equal(at(end)) {
		t.Errorf("%s: got %s, want %s-%s", tk.Title, dateutil.FormatRange(tk.Start, tk.End), start, end)
	}
}

func TestNormalize_Empty(t *testing.T) {
	out := Normalize(nil)
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d tasks", len(out))
	}
}

func TestNormalize_NonOverlappingUnchanged(t *testing.T) {
	in := []*task.Task{
		span(t, "Work", "09:00", "17:00"),
		span(t, "Breakfast", "08:00", "08:20"),
	}
	out := Normalize(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(out))
	}
	assertRange(t, out[0], "08:00", "08:20")
	assertRange(t, out[1], "09:00", "17:00")
}

func TestNormalize_SortsByStart(t *testing.T) {
	in := []*task.Task{
		span(t, "Dinner", "19:00", "20:00"),
		span(t, "Breakfast", "08:00", "08:20"),
		span(t, "Lunch", "13:00", "13:30"),
	}
	out := Normalize(in)

	want := []string{"Breakfast", "Lunch", "Dinner"}
	for i, title := range want {
		if out[i].Title != title {
			t.Errorf("position %d: got %s, want %s", i, out[i].Title, title)
		}
	}
}

func TestNormalize_ShiftsOverlapForward(t *testing.T) {
	in := []*task.Task{
		span(t, "A", "09:00", "10:00"),
		span(t, "B", "09:30", "10:00"),
	}
	out := Normalize(in)

	assertRange(t, out[0], "09:00", "10:00")
	// B keeps its 30-minute duration, pushed to start when A ends.
	assertRange(t, out[1], "10:00", "10:30")
}

func TestNormalize_ShiftCascades(t *testing.T) {
	in := []*task.Task{
		span(t, "A", "09:00", "11:00"),
		span(t, "B", "09:30", "10:00"),
		span(t, "C", "10:15", "10:45"),
	}
	out := Normalize(in)

	assertRange(t, out[0], "09:00", "11:00")
	assertRange(t, out[1], "11:00", "11:30")
	assertRange(t, out[2], "11:30", "12:00")
}

func TestNormalize_TouchingEndpointsDoNotShift(t *testing.T) {
	in := []*task.Task{
		span(t, "A", "09:00", "10:00"),
		span(t, "B", "10:00", "10:30"),
	}
	out := Normalize(in)

	assertRange(t, out[1], "10:00", "10:30")
}

func TestNormalize_PreservesDurations(t *testing.T) {
	in := []*task.Task{
		span(t, "A", "09:00", "10:30"),
		span(t, "B", "09:10", "09:55"),
		span(t, "C", "09:20", "11:00"),
	}
	out := Normalize(in)

	for i, tk := range out {
		if tk.Duration() != in[i].Duration() {
			// Output is sorted the same as this input (by start), so
			// indexes line up.
			t.Errorf("%s: duration changed from %v to %v", tk.Title, in[i].Duration(), tk.Duration())
		}
	}
}

func TestNormalize_EqualStartsKeepInputOrder(t *testing.T) {
	in := []*task.Task{
		span(t, "First", "09:00", "09:30"),
		span(t, "Second", "09:00", "09:45"),
		span(t, "Third", "09:00", "09:15"),
	}
	out := Normalize(in)

	want := []string{"First", "Second", "Third"}
	for i, title := range want {
		if out[i].Title != title {
			t.Errorf("position %d: got %s, want %s", i, out[i].Title, title)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := []*task.Task{
		span(t, "A", "09:00", "10:00"),
		span(t, "B", "09:30", "10:00"),
		span(t, "C", "09:45", "10:30"),
	}
	once := Normalize(in)
	twice := Normalize(once)

	if len(once) != len(twice) {
		t.Fatalf("length changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Start.Equal(twice[i].Start) || !once[i].End.Equal(twice[i].End) {
			t.Errorf("%s moved on second pass: %s vs %s", once[i].Title,
				dateutil.FormatRange(once[i].Start, once[i].End),
				dateutil.FormatRange(twice[i].Start, twice[i].End))
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	a := span(t, "A", "09:00", "10:00")
	b := span(t, "B", "09:30", "10:00")
	Normalize([]*task.Task{a, b})

	assertRange(t, a, "09:00", "10:00")
	assertRange(t, b, "09:30", "10:00")
}

func TestNormalize_NoOverlapsRemain(t *testing.T) {
	in := []*task.Task{
		span(t, "A", "08:00", "12:00"),
		span(t, "B", "08:30", "09:00"),
		span(t, "C", "08:45", "10:00"),
		span(t, "D", "11:00", "11:20"),
	}
	out := Normalize(in)

	for i := 1; i < len(out); i++ {
		if out[i].Start.Before(out[i-1].End) {
			t.Errorf("%s starts before %s ends", out[i].Title, out[i-1].Title)
		}
	}
}

func TestNormalize_DefaultPolicyShiftsFixedTasks(t *testing.T) {
	in := []*task.Task{
		span(t, "Overrun", "08:00", "09:30"),
		fixedSpan(t, "Work", "09:00", "17:00"),
	}
	out := Normalize(in)

	// Without anchor mode the fixed flag is just metadata.
	assertRange(t, out[1], "09:30", "17:30")
}

func TestNormalize_RespectFixedKeepsAnchor(t *testing.T) {
	n := Normalizer{RespectFixed: true}
	in := []*task.Task{
		span(t, "Overrun", "08:00", "09:30"),
		fixedSpan(t, "Work", "09:00", "17:00"),
	}
	out := n.Normalize(in)

	var work, overrun *task.Task
	for _, tk := range out {
		switch tk.Title {
		case "Work":
			work = tk
		case "Overrun":
			overrun = tk
		}
	}
	assertRange(t, work, "09:00", "17:00")
	// The non-fixed task flows past the anchor instead.
	assertRange(t, overrun, "17:00", "18:30")
}

func TestNormalize_RespectFixedNonFixedSlidesIntoGap(t *testing.T) {
	n := Normalizer{RespectFixed: true}
	in := []*task.Task{
		fixedSpan(t, "Standup", "09:00", "09:15"),
		fixedSpan(t, "Review", "10:00", "11:00"),
		span(t, "Email", "09:00", "09:30"),
	}
	out := n.Normalize(in)

	var email *task.Task
	for _, tk := range out {
		if tk.Title == "Email" {
			email = tk
		}
	}
	// 09:15-09:45 is the first slot after the requested start that
	// fits between the anchors.
	assertRange(t, email, "09:15", "09:45")
}

func TestNormalize_RespectFixedCollidingAnchors(t *testing.T) {
	n := Normalizer{RespectFixed: true}
	in := []*task.Task{
		fixedSpan(t, "First", "09:00", "10:00"),
		fixedSpan(t, "Second", "09:30", "10:30"),
	}
	out := n.Normalize(in)

	assertRange(t, out[0], "09:00", "10:00")
	// A fixed task colliding with an earlier fixed task loses its
	// anchor and slides like any other.
	assertRange(t, out[1], "10:00", "11:00")
}

func TestNormalize_RespectFixedNoOverlapsRemain(t *testing.T) {
	n := Normalizer{RespectFixed: true}
	in := []*task.Task{
		fixedSpan(t, "Work", "09:00", "17:00"),
		span(t, "A", "08:00", "10:00"),
		span(t, "B", "08:30", "09:00"),
		fixedSpan(t, "Dinner", "19:00", "20:00"),
	}
	out := n.Normalize(in)

	for i := 1; i < len(out); i++ {
		if out[i].Start.Before(out[i-1].End) {
			t.Errorf("%s starts before %s ends", out[i].Title, out[i-1].Title)
		}
	}
	for _, tk := range out {
		if tk.Duration() == 0 {
			t.Errorf("%s lost its duration", tk.Title)
		}
	}
}
