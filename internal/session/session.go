// Package session owns the live, mutable state for one day: the
// profile, the generated template, today's schedule, the completion
// set, and the holiday-mode flag. The schedule engine itself is
// stateless; every mutation flows through a Session and hands the
// engine explicit data.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/rutina/internal/config"
	"github.com/javiermolinar/rutina/internal/profile"
	"github.com/javiermolinar/rutina/internal/schedule"
	"github.com/javiermolinar/rutina/internal/task"
)

// Session errors.
var (
	ErrDurationOutOfRange = errors.New("duration outside configured limits")
	ErrAmbiguousTask      = errors.New("reference matches more than one task")
)

// Resolution selects how a detected conflict is handled when adding a
// task. The engine offers both; the caller (UI) picks.
type Resolution string

const (
	// ResolutionShift inserts the task and pushes subsequent tasks forward.
	ResolutionShift Resolution = "shift"
	// ResolutionReject leaves the schedule unchanged and reports the conflict.
	ResolutionReject Resolution = "reject"
)

// Session holds the state of one day's planning.
type Session struct {
	cfg *config.Config

	Profile   *profile.Profile
	Template  []*task.Task
	Day       []*task.Task
	Completed *task.CompletionSet
	Holiday   bool
}

// New creates an empty session with the given configuration.
func New(cfg *config.Config) *Session {
	return &Session{
		cfg:       cfg,
		Profile:   &profile.Profile{},
		Template:  []*task.Task{},
		Day:       []*task.Task{},
		Completed: task.NewCompletionSet(),
	}
}

// Config returns the session's configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

func (s *Session) normalizer() schedule.Normalizer {
	return schedule.Normalizer{RespectFixed: s.cfg.Schedule.RespectFixedAnchors}
}

// Resolver captures now as the single evaluation moment for resolving
// the day's clocks, with the configured overnight rollover policy.
func (s *Session) Resolver(now time.Time) *schedule.Resolver {
	policy := schedule.OvernightRollover(s.cfg.Schedule.EarlyCutoff, s.cfg.Schedule.LateCutoff)
	return schedule.NewResolver(now, policy)
}

// ApplyProfile replaces the profile and regenerates the template from
// scratch. Outside holiday mode the day is re-seeded from the new
// template, dropping manual tasks (the day restarts from the plan).
func (s *Session) ApplyProfile(p *profile.Profile, now time.Time) error {
	tmpl, err := profile.BuildTemplate(p, s.cfg.Durations, s.Resolver(now), s.normalizer())
	if err != nil {
		return fmt.Errorf("building template: %w", err)
	}
	s.Profile = p
	s.Template = tmpl
	if !s.Holiday {
		s.Day = s.normalizer().Normalize(s.Template)
	}
	return nil
}

// SetHolidayMode toggles manual mode. Turning it on clears the day for
// free-form entry; turning it off re-seeds the day from the template
// (if one exists).
func (s *Session) SetHolidayMode(on bool) {
	if on == s.Holiday {
		return
	}
	s.Holiday = on
	if on {
		s.Day = []*task.Task{}
		return
	}
	s.Day = s.normalizer().Normalize(s.Template)
}

// Rebuild re-normalizes the day, merging the template with surviving
// manual tasks. No-op in holiday mode, where the template does not
// apply.
func (s *Session) Rebuild() {
	if s.Holiday || len(s.Template) == 0 {
		s.Day = s.normalizer().Normalize(s.Day)
		return
	}
	merged := make([]*task.Task, 0, len(s.Template)+len(s.Day))
	merged = append(merged, s.Template...)
	for _, t := range s.Day {
		if t.Source == task.SourceManual {
			merged = append(merged, t)
		}
	}
	s.Day = s.normalizer().Normalize(merged)
}

// AddTask validates and adds a manual task. On conflict, ResolutionShift
// inserts it and shifts subsequent tasks; ResolutionReject returns
// task.ErrScheduleConflict and leaves the day untouched so the caller
// can retry with a different start time.
func (s *Session) AddTask(title, startClock string, durationMinutes int, now time.Time, res Resolution) (*task.Task, error) {
	if durationMinutes < s.cfg.Limits.MinTaskMinutes || durationMinutes > s.cfg.Limits.MaxTaskMinutes {
		return nil, fmt.Errorf("%w: %d minutes (allowed %d-%d)",
			ErrDurationOutOfRange, durationMinutes,
			s.cfg.Limits.MinTaskMinutes, s.cfg.Limits.MaxTaskMinutes)
	}

	start := s.Resolver(now).Resolve(startClock)
	t, err := task.New(title, start, durationMinutes)
	if err != nil {
		return nil, err
	}

	if conflict := schedule.FindConflict(s.Day, t); conflict != nil {
		if res == ResolutionReject {
			return nil, fmt.Errorf("%w: %q overlaps %q (%s - %s)",
				task.ErrScheduleConflict, t.Title, conflict.Title,
				conflict.Start.Format("15:04"), conflict.End.Format("15:04"))
		}
		// Shift-subsequent policy: insert, push later tasks forward,
		// then normalize so the inserted task itself yields to its
		// predecessor when needed.
		s.Day = s.normalizer().Normalize(schedule.InsertWithShift(s.Day, t))
		return t, nil
	}

	s.Day = s.normalizer().Normalize(append(s.cloneDay(), t))
	return t, nil
}

// HasConflict reports whether a manual task with the given start and
// duration would collide with the current day, without adding it.
func (s *Session) HasConflict(startClock string, durationMinutes int, now time.Time) bool {
	start := s.Resolver(now).Resolve(startClock)
	probe := &task.Task{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
	return schedule.HasConflict(s.Day, probe)
}

// FindTask resolves a user-supplied reference to a task in the day:
// an exact ID, an unambiguous ID prefix, or an unambiguous
// case-insensitive title.
func (s *Session) FindTask(ref string) (*task.Task, error) {
	if ref == "" {
		return nil, task.ErrTaskNotFound
	}
	var matches []*task.Task
	lower := strings.ToLower(ref)
	for _, t := range s.Day {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) || strings.ToLower(t.Title) == lower {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", task.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousTask, ref)
	}
}

// Toggle flips a task's completion state and returns the new state.
func (s *Session) Toggle(id string) bool {
	return s.Completed.Toggle(id)
}

// Status derives the current ongoing/next/idle view at the given instant.
func (s *Session) Status(now time.Time) schedule.Status {
	return schedule.DeriveStatus(s.Day, s.Completed, now)
}

// Remaining returns the number of uncompleted tasks in the day.
func (s *Session) Remaining() int {
	n := 0
	for _, t := range s.Day {
		if !s.Completed.Done(t.ID) {
			n++
		}
	}
	return n
}

func (s *Session) cloneDay() []*task.Task {
	out := make([]*task.Task, len(s.Day))
	copy(out, s.Day)
	return out
}
