package schedule

import (
	"slices"

	"github.com/javiermolinar/rutina/internal/task"
)

// FindConflict returns the first task in the schedule whose interval
// overlaps the candidate's, or nil if the candidate fits cleanly.
func FindConflict(schedule []*task.Task, candidate *task.Task) *task.Task {
	if candidate == nil {
		return nil
	}
	for _, t := range schedule {
		if t.OverlapsWith(candidate) {
			return t
		}
	}
	return nil
}

// HasConflict returns true iff the candidate overlaps any task in the
// schedule.
func HasConflict(schedule []*task.Task, candidate *task.Task) bool {
	return FindConflict(schedule, candidate) != nil
}

// InsertWithShift inserts the candidate into an already-normalized
// schedule in start-time order, then re-applies the forward-shift sweep
// from the position immediately after it. Only tasks at or after the
// insertion point can be displaced; everything before it is untouched.
// The candidate itself keeps its requested instants.
//
// The caller's alternative resolution is to not insert at all and ask
// the user for a different start time; that path needs no engine
// support beyond HasConflict.
func InsertWithShift(schedule []*task.Task, candidate *task.Task) []*task.Task {
	out := make([]*task.Task, 0, len(schedule)+1)
	for _, t := range schedule {
		out = append(out, t.Clone())
	}

	idx, _ := slices.BinarySearchFunc(out, candidate, func(a, b *task.Task) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return -1 // equal starts: existing tasks keep their place
	})
	out = slices.Insert(out, idx, candidate.Clone())

	for i := idx + 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if cur.Start.Before(prev.End) {
			dur := cur.Duration()
			cur.Start = prev.End
			cur.End = cur.Start.Add(dur)
		}
	}
	return out
}
