package session

import (
	"context"
	"time"

	"github.com/javiermolinar/rutina/internal/profile"
	"github.com/javiermolinar/rutina/internal/task"
)

// State is a persistable snapshot of one day's session.
type State struct {
	Date         time.Time // midnight of the day the state belongs to
	Profile      *profile.Profile
	Day          []*task.Task
	CompletedIDs []string
	Holiday      bool
}

// Store persists session state between invocations. The core never
// touches storage; the CLI layer snapshots and restores around it.
type Store interface {
	// SaveState replaces the stored state for st.Date.
	SaveState(ctx context.Context, st *State) error

	// LoadState returns the stored state for the given date, or nil if
	// none exists.
	LoadState(ctx context.Context, date time.Time) (*State, error)

	// Close releases any resources held by the store.
	Close() error
}

// Snapshot captures the session as a State for the given date.
func (s *Session) Snapshot(date time.Time) *State {
	return &State{
		Date:         date,
		Profile:      s.Profile,
		Day:          s.Day,
		CompletedIDs: s.Completed.IDs(),
		Holiday:      s.Holiday,
	}
}

// Restore loads a snapshot into the session. The template is rebuilt
// from the stored profile (templates are regenerated, never persisted);
// the day's tasks and completion state come from the snapshot, except
// on a fresh non-holiday day, where the schedule is seeded from the
// template.
func (s *Session) Restore(st *State, now time.Time) error {
	if st == nil {
		return nil
	}
	s.Holiday = st.Holiday
	if st.Profile != nil {
		tmpl, err := profile.BuildTemplate(st.Profile, s.cfg.Durations, s.Resolver(now), s.normalizer())
		if err != nil {
			return err
		}
		s.Profile = st.Profile
		s.Template = tmpl
	}
	switch {
	case len(st.Day) > 0:
		s.Day = s.normalizer().Normalize(st.Day)
	case !s.Holiday:
		// A fresh day carries the stored profile but no task rows yet;
		// the schedule starts from the template.
		s.Day = s.normalizer().Normalize(s.Template)
	}
	s.Completed = task.NewCompletionSet()
	for _, id := range st.CompletedIDs {
		s.Completed.Mark(id)
	}
	return nil
}
