package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/session"
	"github.com/javiermolinar/rutina/internal/task"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case saveDoneMsg:
		if msg.err != nil {
			LogError("save state", msg.err)
			m.errMsg = fmt.Sprintf("saving state: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		LogKeyPress(msg)
		switch m.mode {
		case ModeAdd:
			return m.updateAdd(msg)
		case ModeConflict:
			return m.updateConflict(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sess.Day)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if len(m.sess.Day) == 0 {
			return m, nil
		}
		m.now = time.Now()
		t := m.sess.Day[m.cursor]
		if m.sess.Toggle(t.ID) {
			m.message = fmt.Sprintf("Completed %q.", t.Title)
			if m.sess.Remaining() == 0 {
				m.message = "All tasks finished for today - well done!"
			}
		} else {
			m.message = fmt.Sprintf("Marked %q as not completed.", t.Title)
		}
		LogSchedule(&m, "toggle")
		return m, m.saveCmd()

	case key.Matches(msg, m.keys.Add):
		LogModeChange(m.mode, ModeAdd, "add key")
		m.mode = ModeAdd
		m.form = newAddForm(dateutil.Clock(time.Now()))
		return m, nil

	case key.Matches(msg, m.keys.Holiday):
		m.now = time.Now()
		m.sess.SetHolidayMode(!m.sess.Holiday)
		m.clampCursor()
		if m.sess.Holiday {
			m.message = "Holiday mode enabled. Schedule cleared for manual input."
		} else if len(m.sess.Template) == 0 {
			m.message = "Holiday mode disabled. Set up a profile to get a template."
		} else {
			m.message = "Holiday mode disabled. Template schedule restored."
		}
		LogSchedule(&m, "holiday toggle")
		return m, m.saveCmd()

	case key.Matches(msg, m.keys.Yank):
		if err := clipboard.WriteAll(renderPlain(m.sess)); err != nil {
			LogError("clipboard", err)
			m.errMsg = fmt.Sprintf("copying schedule: %v", err)
			return m, nil
		}
		m.message = "Schedule copied to clipboard."
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.now = time.Now()
		m.sess.Rebuild()
		m.clampCursor()
		LogSchedule(&m, "refresh")
		return m, m.saveCmd()
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		LogModeChange(m.mode, ModeNormal, "add cancelled")
		m.mode = ModeNormal
		return m, nil

	case "enter":
		if err := m.form.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		duration, _ := m.form.Duration()
		m.now = time.Now()

		_, err := m.sess.AddTask(m.form.Title(), m.form.Clock(), duration, m.now, session.ResolutionReject)
		if errors.Is(err, task.ErrScheduleConflict) {
			LogModeChange(m.mode, ModeConflict, "conflict detected")
			m.pending = &pendingAdd{
				title:    m.form.Title(),
				clock:    m.form.Clock(),
				duration: duration,
				detail:   err.Error(),
			}
			m.mode = ModeConflict
			m.errMsg = ""
			return m, nil
		}
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		LogModeChange(m.mode, ModeNormal, "task added")
		LogSchedule(&m, "add")
		m.mode = ModeNormal
		m.errMsg = ""
		m.message = fmt.Sprintf("Added %q. No conflicts.", m.form.Title())
		return m, m.saveCmd()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateConflict(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "1":
		// Shift subsequent tasks automatically.
		m.now = time.Now()
		_, err := m.sess.AddTask(m.pending.title, m.pending.clock, m.pending.duration, m.now, session.ResolutionShift)
		m.pending = nil
		m.mode = ModeNormal
		if err != nil {
			LogError("shift insert", err)
			m.errMsg = err.Error()
			return m, nil
		}
		LogSchedule(&m, "shift insert")
		m.message = "Task added; schedule was shifted to resolve the conflict."
		return m, m.saveCmd()

	case "e", "2":
		// Back to the form to adjust the start time.
		LogModeChange(m.mode, ModeAdd, "manual retry")
		m.pending = nil
		m.mode = ModeAdd
		return m, nil

	case "esc", "q":
		LogModeChange(m.mode, ModeNormal, "conflict dismissed")
		m.pending = nil
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}
