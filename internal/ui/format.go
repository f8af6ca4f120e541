package ui

import (
	"fmt"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/schedule"
	"github.com/javiermolinar/rutina/internal/session"
	"github.com/javiermolinar/rutina/internal/task"
)

// PrintTaskRow prints a single task row: status symbol, time range,
// short ID, title, and the fixed marker when relevant.
func PrintTaskRow(t *task.Task, done bool, maxTitleWidth int) {
	symbol := "○"
	if done {
		symbol = "✓"
	}

	title := truncateTitle(t.Title, maxTitleWidth)

	fixed := ""
	if t.Fixed {
		fixed = "  " + formatMuted("[fixed]")
	}

	row := fmt.Sprintf("  %s  %s  %s  %-*s%s",
		symbol, dateutil.FormatRange(t.Start, t.End), formatMuted(shortID(t.ID)), maxTitleWidth, title, fixed)
	if done {
		fmt.Println(formatDone(row))
		return
	}
	fmt.Println(row)
}

// PrintStatus renders the status line derived for the current moment.
func PrintStatus(st schedule.Status) {
	switch st.Kind {
	case schedule.StatusOngoing:
		fmt.Printf("%s %s (%s), %s\n",
			formatOngoing("Ongoing:"), st.Task.Title,
			dateutil.FormatRange(st.Task.Start, st.Task.End),
			remainingPhrase(st.Minutes))
	case schedule.StatusNext:
		fmt.Printf("%s %s at %s, %s\n",
			formatNext("Next:"), st.Task.Title,
			dateutil.Clock(st.Task.Start),
			startsPhrase(st.Minutes))
	default:
		if st.AllDone {
			fmt.Println(formatHeader("All scheduled tasks are complete for today."))
			return
		}
		fmt.Println(formatMuted("Nothing scheduled right now."))
	}
}

// PrintSchedule prints the whole day with a remaining-count footer.
func PrintSchedule(sess *session.Session) {
	if len(sess.Day) == 0 {
		if sess.Holiday {
			fmt.Println("Holiday mode: no tasks yet. Add one with 'rutina add'.")
		} else {
			fmt.Println("No tasks for today. Set up a profile with 'rutina profile set'.")
		}
		return
	}

	maxTitle := 40
	if w := termWidth() - 40; w > maxTitle {
		maxTitle = w
	}
	for _, t := range sess.Day {
		PrintTaskRow(t, sess.Completed.Done(t.ID), maxTitle)
	}
	fmt.Println()
	fmt.Printf("Remaining: %d of %d\n", sess.Remaining(), len(sess.Day))
}

func remainingPhrase(minutes int) string {
	switch {
	case minutes > 1:
		return fmt.Sprintf("%d min remaining", minutes)
	case minutes == 1:
		return "1 min remaining"
	default:
		return "ending now"
	}
}

func startsPhrase(minutes int) string {
	switch {
	case minutes > 1:
		return fmt.Sprintf("starts in %d min", minutes)
	case minutes == 1:
		return "starts in 1 min"
	default:
		return "starting now"
	}
}

// truncateTitle shortens a title to at most max runes, ending in an
// ellipsis. Truncating by runes keeps multi-byte titles intact.
func truncateTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// shortID truncates a task ID for display. Eight hex characters keep
// prefixes unambiguous within a single day's handful of tasks.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
