package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/schedule"
	"github.com/javiermolinar/rutina/internal/session"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n\n")
	b.WriteString(m.viewSchedule())

	switch m.mode {
	case ModeAdd:
		b.WriteString("\n")
		b.WriteString(m.form.View(m.styles))
	case ModeConflict:
		b.WriteString("\n")
		b.WriteString(m.viewConflict())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
	} else if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Message.Render(m.message))
	}

	if help := m.footerHelp(); help != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render(help))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewHeader() string {
	header := m.styles.Header.Render("Rutina · " + m.now.Format("Monday, 2 January 2006"))
	if m.sess.Holiday {
		header += "  " + m.styles.Badge.Render(" HOLIDAY ")
	}
	return header
}

func (m Model) viewStatus() string {
	st := m.sess.Status(m.now)
	switch st.Kind {
	case schedule.StatusOngoing:
		return m.styles.Status.Render("▶ " + st.Task.Title + " · " + minutesPhrase(st.Minutes, "remaining"))
	case schedule.StatusNext:
		return m.styles.Status.Render("◷ Next: " + st.Task.Title + " · " + minutesPhrase(st.Minutes, "until start"))
	default:
		if st.AllDone {
			return m.styles.Status.Render("✓ All tasks completed for today.")
		}
		return m.styles.Status.Render("Nothing scheduled right now.")
	}
}

// minutesPhrase renders a minute count the way the status line wants
// it: "12 min remaining", "1 min until start", or a "now" variant when
// the count has bottomed out.
func minutesPhrase(minutes int, suffix string) string {
	switch {
	case minutes > 1:
		return fmt.Sprintf("%d min %s", minutes, suffix)
	case minutes == 1:
		return "1 min " + suffix
	case suffix == "remaining":
		return "ending now"
	default:
		return "starting now"
	}
}

func (m Model) viewSchedule() string {
	if len(m.sess.Day) == 0 {
		if m.sess.Holiday {
			return m.styles.Fixed.Render("  Empty holiday schedule. Press 'a' to add a task.")
		}
		return m.styles.Fixed.Render("  No schedule yet. Set up a profile or press 'a' to add a task.")
	}

	var b strings.Builder
	for i, t := range m.sess.Day {
		done := m.sess.Completed.Done(t.ID)

		symbol := "○"
		if done {
			symbol = "✓"
		}
		line := fmt.Sprintf("%s %s  %s", symbol, dateutil.FormatRange(t.Start, t.End), t.Title)
		if t.Fixed {
			line += " " + m.styles.Fixed.Render("[fixed]")
		}

		switch {
		case i == m.cursor && m.mode == ModeNormal:
			line = m.styles.Cursor.Render(line)
		case done:
			line = m.styles.Done.Render(line)
		}

		b.WriteString("  ")
		b.WriteString(line)
		if i < len(m.sess.Day)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewConflict() string {
	var b strings.Builder
	b.WriteString(m.styles.FormName.Render("Schedule conflict"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%q at %s collides with an existing task.", m.pending.title, m.pending.clock))
	b.WriteString("\n")
	b.WriteString(m.pending.detail)
	return m.styles.FormBox.Render(b.String())
}

func (m Model) footerHelp() string {
	switch m.mode {
	case ModeAdd:
		// The form renders its own help line.
		return ""
	case ModeConflict:
		return "s shift schedule · e edit start time · esc cancel"
	default:
		return m.keys.helpLine()
	}
}

// renderPlain formats the schedule without styling, for the clipboard.
func renderPlain(sess *session.Session) string {
	var b strings.Builder
	for _, t := range sess.Day {
		b.WriteString(dateutil.FormatRange(t.Start, t.End))
		b.WriteString("  ")
		b.WriteString(t.Title)
		if sess.Completed.Done(t.ID) {
			b.WriteString(" (done)")
		}
		b.WriteString("\n")
	}
	return b.String()
}
