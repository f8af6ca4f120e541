// Package schedule implements the normalization and conflict-resolution
// engine for one day's timeline: resolving times of day into instants,
// producing a non-overlapping ordering, inserting ad-hoc tasks, and
// deriving the "what's happening now" status. All operations are pure;
// state lives with the caller.
package schedule

import (
	"time"

	"github.com/javiermolinar/rutina/internal/dateutil"
)

// Default rollover cutoffs: a clock before 04:00 entered after 20:00
// belongs to the next calendar day.
const (
	DefaultEarlyCutoff = "04:00"
	DefaultLateCutoff  = "20:00"
)

// RolloverPolicy decides whether a time of day scheduled for "today"
// really belongs to the next calendar day (an overnight activity
// entered late in the evening).
type RolloverPolicy func(clock string, now time.Time) bool

// OvernightRollover returns the standard policy: a clock before
// earlyCutoff rolls to the next day when the evaluation moment's own
// clock is after lateCutoff.
func OvernightRollover(earlyCutoff, lateCutoff string) RolloverPolicy {
	early := dateutil.ClockMinutes(earlyCutoff)
	late := dateutil.ClockMinutes(lateCutoff)
	return func(clock string, now time.Time) bool {
		return dateutil.ClockMinutes(clock) < early &&
			dateutil.ClockMinutes(dateutil.Clock(now)) > late
	}
}

// NeverRollover keeps every clock on the reference date.
func NeverRollover() RolloverPolicy {
	return func(string, time.Time) bool { return false }
}

// Resolver converts times of day into concrete instants. It captures a
// single evaluation moment, so resolving all of a day's clocks through
// one Resolver yields a mutually consistent schedule. Instants from
// resolvers captured at different moments must not be mixed.
type Resolver struct {
	now    time.Time
	ref    time.Time // midnight of the reference date
	policy RolloverPolicy
}

// NewResolver creates a Resolver anchored at now, resolving onto now's
// calendar date. A nil policy means no overnight rollover.
func NewResolver(now time.Time, policy RolloverPolicy) *Resolver {
	return &Resolver{
		now:    now,
		ref:    dateutil.TruncateToDay(now),
		policy: policy,
	}
}

// Now returns the captured evaluation moment.
func (r *Resolver) Now() time.Time {
	return r.now
}

// Date returns the reference date (midnight).
func (r *Resolver) Date() time.Time {
	return r.ref
}

// Resolve places an "HH:MM" clock on the timeline, applying the
// rollover policy.
func (r *Resolver) Resolve(clock string) time.Time {
	t := dateutil.At(r.ref, clock)
	if r.policy != nil && r.policy(clock, r.now) {
		return t.AddDate(0, 0, 1)
	}
	return t
}
