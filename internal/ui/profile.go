package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/profile"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the daily template profile",
	}
	cmd.AddCommand(a.profileSetCmd())
	cmd.AddCommand(a.profileShowCmd())
	return cmd
}

func (a *App) profileSetCmd() *cobra.Command {
	var (
		name      string
		role      string
		shift     string
		workStart string
		workEnd   string
		wake      string
		sleep     string
		breakfast string
		dinner    string
		morning   []string
		evening   []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Configure the profile and regenerate the daily template",
		Long: `Configure your profile. This is the one-time setup the recurring
daily template is generated from; running it again regenerates the
template from scratch.

Habits are given as NAME@HH:MM and keep the order you pass them in.
Shift presets: morning (07:00-15:00), day (09:00-17:00),
night (22:00-06:00), or custom with explicit --work-start/--work-end.`,
		Example: `  rutina profile set --name="Ana" --shift=day \
    --morning="Meditation@06:30" --morning="Jogging@07:00" \
    --breakfast=08:00 --dinner=19:00 --evening="Reading@20:30"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := &profile.Profile{
				Name:           name,
				Role:           profile.Role(strings.ToLower(role)),
				WakeClock:      wake,
				SleepClock:     sleep,
				BreakfastClock: breakfast,
				DinnerClock:    dinner,
			}

			sh, err := profile.ParseShift(shift)
			if err != nil {
				return err
			}
			p.Shift = sh
			if start, end, ok := sh.WorkHours(); ok {
				p.WorkStart, p.WorkEnd = start, end
			} else {
				p.WorkStart, p.WorkEnd = workStart, workEnd
			}

			if p.MorningHabits, err = parseHabits(morning); err != nil {
				return err
			}
			if p.EveningHabits, err = parseHabits(evening); err != nil {
				return err
			}

			now := time.Now()
			ctx := context.Background()
			sess, err := a.loadSession(ctx, now)
			if err != nil {
				return err
			}

			if err := sess.ApplyProfile(p, now); err != nil {
				return err
			}

			if err := a.saveSession(ctx, sess, now); err != nil {
				return err
			}

			fmt.Printf("Template saved: %d tasks.\n", len(sess.Template))
			if sess.Holiday {
				fmt.Println(formatWarn("Holiday mode is on; the template applies when you turn it off."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&role, "role", "other", "Role: student, professional, tester, other")
	cmd.Flags().StringVar(&shift, "shift", "day", "Work shift: morning, day, night, custom")
	cmd.Flags().StringVar(&workStart, "work-start", "09:00", "Work start (HH:MM, custom shift only)")
	cmd.Flags().StringVar(&workEnd, "work-end", "17:00", "Work end (HH:MM, custom shift only)")
	cmd.Flags().StringVar(&wake, "wake", "06:00", "Typical wake up time (HH:MM)")
	cmd.Flags().StringVar(&sleep, "sleep", "23:00", "Typical sleep time (HH:MM)")
	cmd.Flags().StringVar(&breakfast, "breakfast", "08:00", "Breakfast start time (HH:MM)")
	cmd.Flags().StringVar(&dinner, "dinner", "19:00", "Dinner start time (HH:MM)")
	cmd.Flags().StringArrayVar(&morning, "morning", nil, "Morning habit as NAME@HH:MM (repeatable)")
	cmd.Flags().StringArrayVar(&evening, "evening", nil, "Evening habit as NAME@HH:MM (repeatable)")

	return cmd
}

func (a *App) profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured profile and its template",
		RunE: func(_ *cobra.Command, _ []string) error {
			now := time.Now()
			sess, err := a.loadSession(context.Background(), now)
			if err != nil {
				return err
			}

			p := sess.Profile
			if p.IsZero() {
				fmt.Println("No profile configured. Run 'rutina profile set' first.")
				return nil
			}

			fmt.Printf("%s (%s)\n", formatHeader(p.Name), p.Role)
			fmt.Printf("  Shift: %s (%s-%s)\n", p.Shift, p.WorkStart, p.WorkEnd)
			fmt.Printf("  Wake %s, sleep %s\n", p.WakeClock, p.SleepClockOrDefault())
			printHabits("Morning", p.MorningHabits)
			fmt.Printf("  Breakfast: %s\n", p.BreakfastClock)
			fmt.Printf("  Dinner: %s\n", p.DinnerClock)
			printHabits("Evening", p.EveningHabits)

			fmt.Printf("\nTemplate (%d tasks):\n", len(sess.Template))
			for _, t := range sess.Template {
				PrintTaskRow(t, false, 40)
			}
			return nil
		},
	}
}

func printHabits(label string, habits []profile.Habit) {
	if len(habits) == 0 {
		return
	}
	parts := make([]string, len(habits))
	for i, h := range habits {
		parts[i] = fmt.Sprintf("%s@%s", h.Name, h.Clock)
	}
	fmt.Printf("  %s habits: %s\n", label, strings.Join(parts, ", "))
}

// parseHabits parses NAME@HH:MM habit specs, preserving order.
func parseHabits(specs []string) ([]profile.Habit, error) {
	var habits []profile.Habit
	for _, spec := range specs {
		i := strings.LastIndex(spec, "@")
		if i <= 0 || i == len(spec)-1 {
			return nil, fmt.Errorf("invalid habit %q: expected NAME@HH:MM", spec)
		}
		h := profile.Habit{Name: strings.TrimSpace(spec[:i]), Clock: spec[i+1:]}
		if err := dateutil.ValidateClock(h.Clock); err != nil {
			return nil, fmt.Errorf("habit %q: %w", h.Name, err)
		}
		habits = append(habits, h)
	}
	return habits, nil
}
