package schedule

import (
	"math"
	"time"

	"github.com/javiermolinar/rutina/internal/task"
)

// StatusKind classifies the current moment relative to the schedule.
type StatusKind string

const (
	StatusOngoing StatusKind = "ongoing"
	StatusNext    StatusKind = "next"
	StatusIdle    StatusKind = "idle"
)

// Status is the derived, read-only "what's happening now" view.
type Status struct {
	Kind StatusKind
	Task *task.Task // nil when Idle

	// Minutes remaining for an ongoing task (floor: 1m59s left reads
	// as 1), or minutes until start for a next task (ceil: a task 10s
	// away reads as 1, never 0).
	Minutes int

	// AllDone is set on Idle when the schedule is non-empty and every
	// task is completed.
	AllDone bool
}

// DeriveStatus computes the status of a normalized schedule at the
// given instant, skipping completed tasks. Ties on equal start times go
// to the task appearing first in the sequence.
func DeriveStatus(schedule []*task.Task, completed *task.CompletionSet, now time.Time) Status {
	var next *task.Task
	for _, t := range schedule {
		if completed != nil && completed.Done(t.ID) {
			continue
		}
		if t.Contains(now) {
			remaining := int(math.Floor(t.End.Sub(now).Minutes()))
			return Status{Kind: StatusOngoing, Task: t, Minutes: remaining}
		}
		if next == nil && t.Start.After(now) {
			next = t
		}
	}
	if next != nil {
		until := int(math.Ceil(next.Start.Sub(now).Minutes()))
		return Status{Kind: StatusNext, Task: next, Minutes: until}
	}
	return Status{
		Kind:    StatusIdle,
		AllDone: completed != nil && completed.AllDone(schedule),
	}
}
