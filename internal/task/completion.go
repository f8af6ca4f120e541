package task

import (
	"slices"
)

// CompletionSet tracks which tasks are marked done for the day.
// Tasks are identified by their generated ID, not their title, so two
// tasks sharing a title keep independent completion state.
type CompletionSet struct {
	done map[string]bool
}

// NewCompletionSet creates an empty completion set.
func NewCompletionSet() *CompletionSet {
	return &CompletionSet{done: make(map[string]bool)}
}

// Mark records a task as completed.
func (s *CompletionSet) Mark(id string) {
	if id == "" {
		return
	}
	s.done[id] = true
}

// Unmark records a task as not completed.
func (s *CompletionSet) Unmark(id string) {
	delete(s.done, id)
}

// Toggle flips a task's completion state and returns the new state.
func (s *CompletionSet) Toggle(id string) bool {
	if s.done[id] {
		delete(s.done, id)
		return false
	}
	s.Mark(id)
	return true
}

// Done returns true if the task is marked completed.
func (s *CompletionSet) Done(id string) bool {
	return s.done[id]
}

// Count returns the number of completed tasks.
func (s *CompletionSet) Count() int {
	return len(s.done)
}

// IDs returns the completed task IDs in sorted order.
func (s *CompletionSet) IDs() []string {
	ids := make([]string, 0, len(s.done))
	for id := range s.done {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Reset clears all completion state.
func (s *CompletionSet) Reset() {
	s.done = make(map[string]bool)
}

// AllDone returns true if every task in the given list is completed.
// An empty list is never "all done".
func (s *CompletionSet) AllDone(tasks []*Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !s.done[t.ID] {
			return false
		}
	}
	return true
}
