// Package stats provides the runner logic for the schedule summary.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
	"tableflip.dev/dayplan/pkg/view"
)

// Stats prints today's task count and the completion percentage for the week
// containing the selected date.
type Stats struct {
	On          string
	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compute stats, no persistence")
	}

	on, err := timeutil.ParseDay(n.On)
	if err != nil {
		return err
	}

	svc := &app.Service{Persistence: n.Persistence}
	s, err := svc.Stats(on)
	if err != nil {
		return err
	}

	w := view.WeekWindow(on)
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("today"), fmt.Sprintf("%d tasks", s.TodayCount))
	tbl.AddRow(
		bold.Sprintf("week %s..%s", timeutil.FormatDay(w.Start), timeutil.FormatDay(w.End)),
		fmt.Sprintf("%d%% done", s.WeekCompletion),
	)

	fmt.Println("")
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
