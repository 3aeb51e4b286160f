// Package add provides the runner logic for creating a task.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
	"tableflip.dev/dayplan/pkg/view"
)

// Add creates a task from command-line fields via an editor session.
type Add struct {
	Title       string
	On          string
	Start       string
	End         string
	Category    string
	Priority    string
	Description string
	Notes       string

	Persistence store.Persistence
}

// Do validates the fields, submits the session, and prints the updated day.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	on, err := timeutil.ParseDay(n.On)
	if err != nil {
		return err
	}

	svc := &app.Service{Persistence: n.Persistence}
	s := svc.CreateSession(timeutil.FormatDay(on))

	fields := map[string]string{
		"title":       n.Title,
		"description": n.Description,
		"category":    n.Category,
		"notes":       n.Notes,
	}
	if n.Start != "" {
		fields["start"] = n.Start
	}
	if n.End != "" {
		fields["end"] = n.End
	}
	if n.Priority != "" {
		fields["priority"] = n.Priority
	}
	for field, value := range fields {
		if err := s.Set(field, value); err != nil {
			return err
		}
	}

	if _, err := s.Submit(n.Persistence); err != nil {
		return err
	}
	if s.Open() {
		return errors.New("add: a non-empty title is required")
	}

	days, err := svc.Schedule(on, view.ModeDay)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if len(days) == 0 {
		days = []view.Day{{Date: timeutil.FormatDay(on)}}
	}
	pp.Schedule(days)

	return nil
}
