// Package status provides the runner logic for task status transitions.
package status

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
	"tableflip.dev/dayplan/pkg/view"
)

// Status moves the task with the given id (or unique prefix) to a new status
// and prints the task's day.
type Status struct {
	ID          string
	To          task.Status
	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not update status, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	t, err := svc.Find(n.ID)
	if err != nil {
		return err
	}
	if _, err := svc.SetStatus(t.ID, n.To); err != nil {
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
	pp.Schedule(days)

	return nil
}
