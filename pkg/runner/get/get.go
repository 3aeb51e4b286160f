// Package get provides the runner logic for printing the schedule.
package get

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

// Get prints the grouped schedule for a selected date and view mode, plus
// the stats footer.
type Get struct {
	ShowID      bool
	On          string
	Mode        view.Mode
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	on, err := timeutil.ParseDay(n.On)
	if err != nil {
		return err
	}
	mode := n.Mode
	if mode == "" {
		mode = view.ModeDay
	}

	svc := &app.Service{Persistence: n.Persistence}
	days, err := svc.Schedule(on, mode)
	if err != nil {
		return err
	}
	stats, err := svc.Stats(on)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	if mode == view.ModeDay && len(days) == 0 {
		days = []view.Day{{Date: timeutil.FormatDay(on)}}
	}
	pp.Schedule(days)
	pp.Stats(stats)

	return nil
}
