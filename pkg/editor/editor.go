// Package editor holds the transient create/edit form state that gets
// reconciled into the task store on submit. The session works on copies, so
// nothing it does is visible until Submit.
package editor

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Form mirrors a task's editable fields.
type Form struct {
	Title       string
	Description string
	Category    string
	Notes       string
	Date        string
	StartTime   string
	EndTime     string
	Priority    task.Priority
}

// Session is one in-progress create or edit. A bound id means edit mode.
type Session struct {
	form    Form
	boundID string
	open    bool
}

// OpenCreate starts a blank session for a new task on the selected date.
func OpenCreate(selectedDate string) *Session {
	return &Session{
		form: Form{
			Date:     selectedDate,
			Priority: task.PriorityMedium,
		},
		open: true,
	}
}

// OpenEdit starts a session holding a copy of the task's fields, bound to its
// id. The task itself is never referenced again.
func OpenEdit(t *task.Task) *Session {
	return &Session{
		form: Form{
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Notes:       t.Notes,
			Date:        t.Date,
			StartTime:   t.StartTime,
			EndTime:     t.EndTime,
			Priority:    t.Priority,
		},
		boundID: t.ID,
		open:    true,
	}
}

// Form returns the current field values.
func (s *Session) Form() Form {
	return s.form
}

// Editing reports whether the session is bound to an existing task.
func (s *Session) Editing() bool {
	return s.boundID != ""
}

// Open reports whether the session still accepts edits.
func (s *Session) Open() bool {
	return s.open
}

// Set updates a single field by name. Date, time, and priority values are
// validated on the way in so the form never holds a malformed value.
func (s *Session) Set(field, value string) error {
	switch field {
	case "title":
		s.form.Title = value
	case "description":
		s.form.Description = value
	case "category":
		s.form.Category = value
	case "notes":
		s.form.Notes = value
	case "date":
		if !timeutil.ValidDay(value) {
			return fmt.Errorf("editor: bad date %q, want YYYY-MM-DD", value)
		}
		s.form.Date = value
	case "start":
		if !timeutil.ValidClock(value) {
			return fmt.Errorf("editor: bad start time %q, want HH:MM", value)
		}
		s.form.StartTime = value
	case "end":
		if value != "" && !timeutil.ValidClock(value) {
			return fmt.Errorf("editor: bad end time %q, want HH:MM", value)
		}
		s.form.EndTime = value
	case "priority":
		p, err := task.ParsePriority(value)
		if err != nil {
			return err
		}
		s.form.Priority = p
	default:
		return fmt.Errorf("editor: unknown field %q", field)
	}
	return nil
}

// Submit reconciles the session into the store. A whitespace-only title makes
// the submit inert: the store is untouched, the session stays open, and no
// error is returned. On success the session closes and the new full list is
// returned. Edits preserve the task's current status.
func (s *Session) Submit(p store.Persistence) ([]*task.Task, error) {
	title := strings.TrimSpace(s.form.Title)
	if title == "" {
		return p.List(), nil
	}

	t := &task.Task{
		Title:       title,
		Description: strings.TrimSpace(s.form.Description),
		Category:    strings.TrimSpace(s.form.Category),
		Notes:       strings.TrimSpace(s.form.Notes),
		Date:        s.form.Date,
		StartTime:   s.form.StartTime,
		EndTime:     s.form.EndTime,
		Priority:    s.form.Priority,
		Status:      task.StatusPending,
	}

	var (
		tasks []*task.Task
		err   error
	)
	if s.Editing() {
		for _, existing := range p.List() {
			if existing.ID == s.boundID {
				t.Status = existing.Status
				break
			}
		}
		tasks, err = p.Replace(s.boundID, t)
	} else {
		tasks, err = p.Create(t)
	}
	if err != nil {
		return nil, err
	}
	s.open = false
	return tasks, nil
}

// Cancel discards all in-progress edits without touching the store.
func (s *Session) Cancel() {
	s.open = false
	s.form = Form{}
}
