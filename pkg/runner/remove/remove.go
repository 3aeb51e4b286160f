// Package remove provides the runner logic for deleting a task.
package remove

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

// Remove deletes the task with the given id (or unique prefix).
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	t, err := svc.Find(n.ID)
	if err != nil {
		return err
	}
	if _, err := svc.Remove(t.ID); err != nil {
		return err
	}

	on, err := timeutil.ParseDay(t.Date)
	if err != nil {
		return err
	}
	days, err := svc.Schedule(on, view.ModeDay)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if len(days) == 0 {
		days = []view.Day{{Date: t.Date}}
	}
	pp.Schedule(days)

	return nil
}
