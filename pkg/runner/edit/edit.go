// Package edit provides the runner logic for editing an existing task.
package edit

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

// Edit rewrites fields of the task with the given id (or unique prefix).
// Only fields present in Fields change; the task's status is preserved.
type Edit struct {
	ID     string
	Fields map[string]string

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	if len(n.Fields) == 0 {
		return errors.New("edit: nothing to change")
	}

	svc := &app.Service{Persistence: n.Persistence}
	t, err := svc.Find(n.ID)
	if err != nil {
		return err
	}

	s, err := svc.EditSession(t.ID)
	if err != nil {
		return err
	}
	for field, value := range n.Fields {
		if err := s.Set(field, value); err != nil {
			return err
		}
	}
	if _, err := s.Submit(n.Persistence); err != nil {
		return err
	}
	if s.Open() {
		return errors.New("edit: a non-empty title is required")
	}

	on, err := timeutil.ParseDay(s.Form().Date)
	if err != nil {
		return err
	}
	days, err := svc.Schedule(on, view.ModeDay)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Schedule(days)

	return nil
}
