package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rutina/internal/profile"
	"github.com/javiermolinar/rutina/internal/task"
)

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [task]",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed for today.

The task can be referenced by its ID, an ID prefix, or its title
(when unambiguous).`,
		Example: `  rutina done Breakfast
  rutina done 3f2a91c0`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.setCompletion(args[0], true)
		},
	}
}

func (a *App) undoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undone [task]",
		Short: "Mark a task as not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.setCompletion(args[0], false)
		},
	}
}

func (a *App) setCompletion(ref string, done bool) error {
	now := time.Now()
	ctx := context.Background()
	sess, err := a.loadSession(ctx, now)
	if err != nil {
		return err
	}

	t, err := sess.FindTask(ref)
	if err != nil {
		return err
	}

	if done {
		sess.Completed.Mark(t.ID)
	} else {
		sess.Completed.Unmark(t.ID)
	}

	if err := a.saveSession(ctx, sess, now); err != nil {
		return err
	}

	if done {
		fmt.Printf("Completed %q.\n", t.Title)
		if msg := completionNote(t); msg != "" {
			fmt.Println(formatMuted(msg))
		}
		if sess.Remaining() == 0 && len(sess.Day) > 0 {
			fmt.Println(formatHeader("All tasks finished for today - well done!"))
		}
	} else {
		fmt.Printf("Marked %q as not completed.\n", t.Title)
	}
	return nil
}

// completionNote suggests a break after finishing a long block.
func completionNote(t *task.Task) string {
	if t.Title == profile.WorkBlockTitle {
		return "Your focus period is over. Step away from your desk for 10 minutes."
	}
	if t.Duration() >= time.Hour {
		return "Well done on completing a focused block. Take a 5-minute break."
	}
	return ""
}
