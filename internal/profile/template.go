package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/rutina/internal/config"
	"github.com/javiermolinar/rutina/internal/schedule"
	"github.com/javiermolinar/rutina/internal/task"
)

// WorkBlockTitle is the title of the main work block in generated templates.
const WorkBlockTitle = "Work / College"

// BuildTemplate generates the recurring daily template from the
// profile: morning habits, breakfast, the work block (marked fixed),
// dinner, evening habits, all resolved through a single Resolver so
// the day's instants are mutually consistent, then normalized.
//
// An unconfigured profile yields an empty template, not an error; the
// caller is responsible for prompting setup.
func BuildTemplate(p *Profile, durations config.DurationsConfig, r *schedule.Resolver, n schedule.Normalizer) ([]*task.Task, error) {
	if p.IsZero() {
		return []*task.Task{}, nil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var tasks []*task.Task
	add := func(title string, start time.Time, minutes int, fixed bool) error {
		t, err := task.NewSpan(title, start, start.Add(time.Duration(minutes)*time.Minute), fixed)
		if err != nil {
			return fmt.Errorf("template task %q: %w", title, err)
		}
		tasks = append(tasks, t)
		return nil
	}

	for _, h := range p.MorningHabits {
		if err := add(h.Name, r.Resolve(h.Clock), habitMinutes(durations, h.Name, false), false); err != nil {
			return nil, err
		}
	}

	if p.BreakfastClock != "" {
		if err := add("Breakfast", r.Resolve(p.BreakfastClock), durations.Breakfast, false); err != nil {
			return nil, err
		}
	}

	workStart := r.Resolve(p.WorkStart)
	workEnd := r.Resolve(p.WorkEnd)
	if !workEnd.After(workStart) {
		// Overnight shift: the block ends on the next day.
		workEnd = workEnd.AddDate(0, 0, 1)
	}
	work, err := task.NewSpan(WorkBlockTitle, workStart, workEnd, true)
	if err != nil {
		return nil, fmt.Errorf("template task %q: %w", WorkBlockTitle, err)
	}
	tasks = append(tasks, work)

	if p.DinnerClock != "" {
		if err := add("Dinner", r.Resolve(p.DinnerClock), durations.Dinner, false); err != nil {
			return nil, err
		}
	}

	for _, h := range p.EveningHabits {
		if err := add(h.Name, r.Resolve(h.Clock), habitMinutes(durations, h.Name, true), false); err != nil {
			return nil, err
		}
	}

	return n.Normalize(tasks), nil
}

// habitMinutes looks up the configured duration for a habit by name.
// Reading gets its long slot in either half of the day; jogging/walking
// and meditation only have morning durations.
func habitMinutes(d config.DurationsConfig, name string, evening bool) int {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "read"):
		return d.Reading
	case evening:
		return d.EveningDefault
	case strings.Contains(n, "jog"), strings.Contains(n, "walk"):
		return d.Jogging
	case strings.Contains(n, "medit"):
		return d.Meditation
	default:
		return d.MorningDefault
	}
}
