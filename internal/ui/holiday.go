package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) holidayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holiday [on|off]",
		Short: "Toggle holiday (manual day) mode",
		Long: `Switch holiday mode on or off.

Turning it on clears today's schedule for free-form entry; turning it
off restores the schedule from your daily template.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(_ *cobra.Command, args []string) error {
			on := args[0] == "on"

			now := time.Now()
			ctx := context.Background()
			sess, err := a.loadSession(ctx, now)
			if err != nil {
				return err
			}

			sess.SetHolidayMode(on)

			if err := a.saveSession(ctx, sess, now); err != nil {
				return err
			}

			if on {
				fmt.Println("Holiday mode enabled. Schedule cleared for manual input.")
				return nil
			}
			if len(sess.Template) == 0 {
				fmt.Println("Holiday mode disabled. No template yet - set up a profile with 'rutina profile set'.")
				return nil
			}
			fmt.Println("Holiday mode disabled. Template schedule restored.")
			return nil
		},
	}
}
