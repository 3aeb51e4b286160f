package view

import (
	"time"

	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Stats are the schedule's summary numbers.
type Stats struct {
	// TodayCount is how many tasks are scheduled on the real current day,
	// independent of the selected date.
	TodayCount int

	// WeekCompletion is the integer percentage of done tasks within the
	// selected date's week window. Zero when the window holds no tasks.
	WeekCompletion int
}

// Aggregate computes summary statistics over the full task list. now anchors
// the today count; selected anchors the completion window.
func Aggregate(tasks []*task.Task, now, selected time.Time) Stats {
	today := timeutil.FormatDay(now)
	window := WeekWindow(selected)

	var s Stats
	inWindow, done := 0, 0
	for _, t := range tasks {
		if t.Date == today {
			s.TodayCount++
		}
		if window.Contains(t.Date) {
			inWindow++
			if t.Done() {
				done++
			}
		}
	}
	if inWindow > 0 {
		s.WeekCompletion = done * 100 / inWindow
	}
	return s
}
