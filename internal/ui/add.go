package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/session"
	"github.com/javiermolinar/rutina/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start    string
		duration int
		shift    bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a manual task to today's schedule",
		Long: `Add an ad-hoc task to today's schedule.

If the task collides with an existing one, the command fails and reports
the conflict; pass --shift to insert it anyway and push the subsequent
tasks forward (durations are always preserved).`,
		Example: `  rutina add "Dentist" --start=15:30 --duration=45
  rutina add "Call home" --start=18:00 --duration=20 --shift`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := dateutil.ValidateClock(start); err != nil {
				return fmt.Errorf("start time: %w", err)
			}

			now := time.Now()
			ctx := context.Background()
			sess, err := a.loadSession(ctx, now)
			if err != nil {
				return err
			}

			resolution := session.ResolutionReject
			if shift {
				resolution = session.ResolutionShift
			}

			t, err := sess.AddTask(args[0], start, duration, now, resolution)
			if errors.Is(err, task.ErrScheduleConflict) {
				fmt.Println(formatWarn("Conflict detected with the existing schedule."))
				fmt.Printf("%v\n", err)
				fmt.Println("Re-run with --shift to push subsequent tasks forward, or pick a different start time.")
				return nil
			}
			if err != nil {
				return err
			}

			if err := a.saveSession(ctx, sess, now); err != nil {
				return err
			}

			// Normalization may have moved the inserted task itself;
			// report where it actually landed.
			placed := placedTask(sess, t)
			if shift {
				fmt.Printf("Added %q (%s); subsequent tasks were shifted where needed.\n",
					placed.Title, dateutil.FormatRange(placed.Start, placed.End))
			} else {
				fmt.Printf("Added %q (%s). No conflicts.\n",
					placed.Title, dateutil.FormatRange(placed.Start, placed.End))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 30, "Duration in minutes")
	cmd.Flags().BoolVar(&shift, "shift", false, "On conflict, shift subsequent tasks instead of failing")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// placedTask returns the day's copy of a task, whose instants reflect
// any shift applied during normalization. Falls back to the candidate
// itself if it is somehow absent.
func placedTask(sess *session.Session, t *task.Task) *task.Task {
	for _, d := range sess.Day {
		if d.ID == t.ID {
			return d
		}
	}
	return t
}
