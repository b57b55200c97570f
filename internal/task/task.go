// Package task holds the in-memory task store and its record type.
package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is the domain model for a single todo entry.
// Title and CreatedAt are fixed at creation; only Done ever changes.
type Task struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
}

// Store is an ordered sequence of tasks, newest first.
// All mutations run on the UI event loop, so there is no locking.
type Store struct {
	tasks []Task
	now   func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add inserts a new un-done task at the front and returns it.
// Empty or whitespace-only titles are discarded: the zero Task and
// false come back and the store is untouched.
func (s *Store) Add(title string) (Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}
	t := Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.now(),
	}
	s.tasks = append([]Task{t}, s.tasks...)
	return t, true
}

// SeedExamples fills an empty store with the given titles, in order.
// A non-empty store is left alone; emptiness is the only guard, so a
// store that was cleared could be seeded again.
func (s *Store) SeedExamples(titles []string) {
	if len(s.tasks) > 0 {
		return
	}
	now := s.now()
	for _, title := range titles {
		s.tasks = append(s.tasks, Task{
			ID:        uuid.NewString(),
			Title:     title,
			CreatedAt: now,
		})
	}
}

// Toggle flips the done flag of the task with the given id.
// Unknown ids are a silent no-op (ok=false).
func (s *Store) Toggle(id string) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

// Remove deletes the task with the given id; unknown ids are a no-op.
func (s *Store) Remove(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the store unconditionally.
func (s *Store) Clear() {
	s.tasks = nil
}

// Len reports the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the sequence in store order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Partition splits the store into pending and completed sublists,
// preserving store order within each.
func (s *Store) Partition() (pending, completed []Task) {
	for _, t := range s.tasks {
		if t.Done {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// Stats counts done and pending tasks for the header line.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
