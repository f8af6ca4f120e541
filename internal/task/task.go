// Package task defines the core domain types for rutina.
package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrEndBeforeStart  = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrScheduleConflict = errors.New("task conflicts with existing schedule")
	ErrTaskNotFound     = errors.New("task not found")
)

// Source records where a task came from.
type Source string

const (
	SourceTemplate Source = "template"
	SourceManual   Source = "manual"
)

// Task represents a single schedulable activity on one day's timeline.
// Start and End are concrete instants; normalization may shift both
// later while preserving End.Sub(Start) exactly.
type Task struct {
	ID        string // generated, stable; Title is a display label only
	Title     string
	Start     time.Time
	End       time.Time
	Fixed     bool // anchor hint, honored only when the normalizer is configured to
	Source    Source
	CreatedAt time.Time
}

// New creates a manual Task with validation.
// Duration is given in minutes and must be positive; range limits
// (e.g. 5-600 minutes) are enforced by the caller's configuration.
func New(title string, start time.Time, durationMinutes int) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Task{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     start,
		End:       start.Add(time.Duration(durationMinutes) * time.Minute),
		Source:    SourceManual,
		CreatedAt: time.Now(),
	}, nil
}

// NewSpan creates a Task from explicit start and end instants.
// Used by the template builder, where durations are derived from habit
// configuration rather than user input.
func NewSpan(title string, start, end time.Time, fixed bool) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}
	return &Task{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     start,
		End:       end,
		Fixed:     fixed,
		Source:    SourceTemplate,
		CreatedAt: time.Now(),
	}, nil
}

// Duration returns the task's duration.
func (t *Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Contains returns true if the instant falls within the task's
// half-open interval [Start, End).
func (t *Task) Contains(now time.Time) bool {
	return !now.Before(t.Start) && now.Before(t.End)
}

// OverlapsWith returns true if this task's interval overlaps another's.
func (t *Task) OverlapsWith(other *Task) bool {
	if other == nil {
		return false
	}
	return Overlaps(t.Start, t.End, other.Start, other.End)
}

// Clone returns a copy of the task. Normalization operates on clones so
// callers' inputs are never mutated.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Overlaps reports whether two half-open intervals overlap.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
