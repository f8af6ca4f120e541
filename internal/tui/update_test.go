package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rutina/internal/config"
	"github.com/javiermolinar/rutina/internal/session"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newTestModel builds a model over a holiday-mode session with two
// manual tasks, so tests control the schedule without a profile.
func newTestModel(t *testing.T) Model {
	t.Helper()
	sess := session.New(config.Default())
	sess.SetHolidayMode(true)

	now := time.Now()
	if _, err := sess.AddTask("Meeting", "10:00", 60, now, session.ResolutionReject); err != nil {
		t.Fatalf("adding task: %v", err)
	}
	if _, err := sess.AddTask("Lunch", "12:00", 30, now, session.ResolutionReject); err != nil {
		t.Fatalf("adding task: %v", err)
	}
	return NewModel(sess, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestUpdate_CursorMovement(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('j'))
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	// Cursor stops at the last task.
	m = update(t, m, keyRune('j'))
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", m.cursor)
	}

	m = update(t, m, keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", m.cursor)
	}

	m = update(t, m, keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", m.cursor)
	}
}

func TestUpdate_ToggleCompletion(t *testing.T) {
	m := newTestModel(t)
	first := m.sess.Day[0]

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.sess.Completed.Done(first.ID) {
		t.Error("expected first task marked done")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.sess.Completed.Done(first.ID) {
		t.Error("expected toggle back to pending")
	}
}

func TestUpdate_AddModeTransition(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	if m.mode != ModeAdd {
		t.Fatalf("expected add mode, got %s", m.mode)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal {
		t.Errorf("expected esc to cancel, got %s", m.mode)
	}
	if len(m.sess.Day) != 2 {
		t.Errorf("cancelled add must not change the day, got %d tasks", len(m.sess.Day))
	}
}

func TestUpdate_AddTaskNoConflict(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	setValues(&m.form, "Walk", "14:00", "30")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeNormal {
		t.Fatalf("expected normal mode after add, got %s (err %q)", m.mode, m.errMsg)
	}
	if len(m.sess.Day) != 3 {
		t.Errorf("expected 3 tasks, got %d", len(m.sess.Day))
	}
}

func TestUpdate_AddInvalidFormStaysInAdd(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	setValues(&m.form, "", "14:00", "30")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeAdd {
		t.Errorf("expected to stay in add mode, got %s", m.mode)
	}
	if m.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestUpdate_ConflictFlowShift(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	setValues(&m.form, "Standup", "10:30", "30")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeConflict {
		t.Fatalf("expected conflict mode, got %s (err %q)", m.mode, m.errMsg)
	}
	if m.pending == nil || m.pending.title != "Standup" {
		t.Fatalf("expected pending add, got %+v", m.pending)
	}
	if len(m.sess.Day) != 2 {
		t.Errorf("conflict prompt must not change the day yet, got %d tasks", len(m.sess.Day))
	}

	m = update(t, m, keyRune('s'))
	if m.mode != ModeNormal {
		t.Fatalf("expected normal mode after shift, got %s", m.mode)
	}
	if m.pending != nil {
		t.Error("expected pending cleared")
	}
	if len(m.sess.Day) != 3 {
		t.Fatalf("expected 3 tasks after shift, got %d", len(m.sess.Day))
	}
	for i := 1; i < len(m.sess.Day); i++ {
		if m.sess.Day[i].Start.Before(m.sess.Day[i-1].End) {
			t.Errorf("%s starts before %s ends", m.sess.Day[i].Title, m.sess.Day[i-1].Title)
		}
	}
}

func TestUpdate_ConflictFlowEditReturnsToForm(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	setValues(&m.form, "Standup", "10:30", "30")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, keyRune('e'))
	if m.mode != ModeAdd {
		t.Fatalf("expected add mode, got %s", m.mode)
	}
	// The form keeps what the user typed.
	if m.form.Title() != "Standup" || m.form.Clock() != "10:30" {
		t.Errorf("form values lost: %q %q", m.form.Title(), m.form.Clock())
	}
}

func TestUpdate_ConflictDismiss(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	setValues(&m.form, "Standup", "10:30", "30")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal {
		t.Errorf("expected normal mode, got %s", m.mode)
	}
	if len(m.sess.Day) != 2 {
		t.Errorf("dismissed conflict must not change the day, got %d tasks", len(m.sess.Day))
	}
}

func TestUpdate_HolidayToggle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('h'))
	if m.sess.Holiday {
		t.Error("expected holiday mode turned off")
	}

	m = update(t, m, keyRune('h'))
	if !m.sess.Holiday {
		t.Error("expected holiday mode turned back on")
	}
	if len(m.sess.Day) != 0 {
		t.Errorf("re-entering holiday mode clears the day, got %d tasks", len(m.sess.Day))
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.width, m.height)
	}
}

func TestUpdate_Tick(t *testing.T) {
	m := newTestModel(t)
	instant := time.Date(2026, 3, 9, 9, 30, 0, 0, time.Local)

	next, cmd := m.Update(tickMsg(instant))
	m = next.(Model)
	if !m.now.Equal(instant) {
		t.Errorf("expected now updated to %s, got %s", instant, m.now)
	}
	if cmd == nil {
		t.Error("expected a re-tick command")
	}
}
