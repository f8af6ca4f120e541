package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's schedule and status",
		Long: `Display today's normalized schedule, the current status (ongoing
task, next task, or idle), and the completion count.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			now := time.Now()
			sess, err := a.loadSession(context.Background(), now)
			if err != nil {
				return err
			}

			fmt.Printf("=== %s ===\n", formatHeader(now.Format("Monday, 2 Jan 2006")))
			if sess.Holiday {
				fmt.Println(formatWarn("Holiday mode: manual schedule"))
			}
			fmt.Println()

			PrintStatus(sess.Status(now))
			fmt.Println()
			PrintSchedule(sess)

			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
