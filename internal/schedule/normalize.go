package schedule

import (
	"slices"
	"time"

	"github.com/javiermolinar/rutina/internal/task"
)

// Normalizer turns an unordered collection of tasks into an ordered,
// conflict-free sequence. The zero value is the default policy.
type Normalizer struct {
	// RespectFixed makes tasks flagged Fixed immovable anchors: they
	// keep their instants and other tasks flow forward around them.
	// Off by default, in which case the sweep shifts any task, fixed
	// or not, when an earlier task runs long.
	RespectFixed bool
}

// Normalize applies the default forward-shift policy.
func Normalize(tasks []*task.Task) []*task.Task {
	return Normalizer{}.Normalize(tasks)
}

// Normalize returns a new slice of task copies satisfying:
//  1. sorted by start time ascending,
//  2. no adjacent overlap (next.Start >= prev.End),
//  3. every task's duration preserved exactly,
//  4. relative order of equal start times preserved.
//
// Inputs are never mutated. Empty input yields an empty output.
func (n Normalizer) Normalize(tasks []*task.Task) []*task.Task {
	sorted := make([]*task.Task, len(tasks))
	for i, t := range tasks {
		sorted[i] = t.Clone()
	}
	slices.SortStableFunc(sorted, func(a, b *task.Task) int {
		return a.Start.Compare(b.Start)
	})

	if n.RespectFixed {
		return anchorSweep(sorted)
	}
	return forwardSweep(sorted)
}

// forwardSweep resolves overlaps by delaying each task to start exactly
// when its predecessor ends, preserving its duration.
func forwardSweep(sorted []*task.Task) []*task.Task {
	out := make([]*task.Task, 0, len(sorted))
	var prev *task.Task
	for _, t := range sorted {
		if prev != nil && t.Start.Before(prev.End) {
			dur := t.Duration()
			t.Start = prev.End
			t.End = t.Start.Add(dur)
		}
		out = append(out, t)
		prev = t
	}
	return out
}

// anchorSweep places fixed tasks first at their requested instants,
// then slides each remaining task into the earliest slot at or after
// its requested start that fits its duration. A fixed task colliding
// with an earlier fixed task loses its anchor and slides like any
// other.
func anchorSweep(sorted []*task.Task) []*task.Task {
	placed := make([]*task.Task, 0, len(sorted))
	for _, t := range sorted {
		if t.Fixed {
			placed = place(placed, t)
		}
	}
	for _, t := range sorted {
		if !t.Fixed {
			placed = place(placed, t)
		}
	}
	return placed
}

// place slides t forward past every already-placed task it overlaps,
// then inserts it keeping the slice sorted by start time.
func place(placed []*task.Task, t *task.Task) []*task.Task {
	dur := t.Duration()
	for {
		blocker := findOverlap(placed, t.Start, t.End)
		if blocker == nil {
			break
		}
		t.Start = blocker.End
		t.End = t.Start.Add(dur)
	}
	idx, _ := slices.BinarySearchFunc(placed, t, func(a, b *task.Task) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return -1 // equal starts: insert after, keeping earlier arrivals first
	})
	return slices.Insert(placed, idx, t)
}

// findOverlap returns the first placed task (in start order) whose
// interval overlaps [start, end), or nil.
func findOverlap(placed []*task.Task, start, end time.Time) *task.Task {
	for _, p := range placed {
		if task.Overlaps(start, end, p.Start, p.End) {
			return p
		}
	}
	return nil
}
