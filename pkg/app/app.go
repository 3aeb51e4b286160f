package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/dayplan/pkg/editor"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/view"
)

// Service provides high-level schedule operations over persistence so the
// CLI and TUI can share logic.
type Service struct {
	Persistence store.Persistence
}

var ErrNotFound = errors.New("app: task not found")

// Tasks returns the full task list.
func (s *Service) Tasks() ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.List(), nil
}

// Schedule returns the grouped, ordered view for a selected date and mode.
func (s *Service) Schedule(selected time.Time, mode view.Mode) ([]view.Day, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	return view.Group(view.Filter(tasks, selected, mode)), nil
}

// Stats returns the summary numbers for the schedule footer.
func (s *Service) Stats(selected time.Time) (view.Stats, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return view.Stats{}, err
	}
	return view.Aggregate(tasks, time.Now(), selected), nil
}

// Find returns the task with the given id. A unique id prefix also matches,
// so the short ids shown by the printers work on the command line.
func (s *Service) Find(id string) (*task.Task, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	var hit *task.Task
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
		if id != "" && strings.HasPrefix(t.ID, id) {
			if hit != nil {
				return nil, fmt.Errorf("app: ambiguous id prefix %q", id)
			}
			hit = t
		}
	}
	if hit != nil {
		return hit, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// CreateSession opens an editor session for a new task on the selected date.
func (s *Service) CreateSession(selectedDate string) *editor.Session {
	return editor.OpenCreate(selectedDate)
}

// EditSession opens an editor session bound to an existing task.
func (s *Service) EditSession(id string) (*editor.Session, error) {
	t, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	return editor.OpenEdit(t), nil
}

// SetStatus transitions a task's status. Unknown ids are no-ops.
func (s *Service) SetStatus(id string, status task.Status) ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.UpdateStatus(id, status)
}

// ToggleDone flips a task between done and pending. Unknown ids are no-ops.
func (s *Service) ToggleDone(id string) ([]*task.Task, error) {
	t, err := s.Find(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s.Tasks()
		}
		return nil, err
	}
	next := task.StatusDone
	if t.Done() {
		next = task.StatusPending
	}
	return s.SetStatus(t.ID, next)
}

// Remove deletes a task permanently. Unknown ids are no-ops.
func (s *Service) Remove(id string) ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Delete(id)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
