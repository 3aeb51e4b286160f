// Package view derives what the presentation layer shows from the raw task
// list: filtering by selected date and mode, grouping by day, and ordering
// within a day. Everything here is a pure function of its inputs.
package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Mode selects which slice of the schedule is visible.
type Mode string

const (
	ModeDay  Mode = "day"
	ModeWeek Mode = "week"
	ModeAll  Mode = "all"
)

// ParseMode maps user input onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "d", "":
		return ModeDay, nil
	case "week", "w":
		return ModeWeek, nil
	case "all", "a":
		return ModeAll, nil
	}
	return "", fmt.Errorf("view: unknown mode %q", s)
}

// Next cycles day -> week -> all -> day, for UI mode toggles.
func (m Mode) Next() Mode {
	switch m {
	case ModeDay:
		return ModeWeek
	case ModeWeek:
		return ModeAll
	default:
		return ModeDay
	}
}

// Window is the Sunday-anchored 7-day span containing a selected date, used
// by week mode and the completion aggregate.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow computes the week window for the selected date.
func WeekWindow(selected time.Time) Window {
	start := timeutil.WeekStart(selected)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// Contains reports whether the ISO date string falls inside the window.
// Zero-padded ISO dates order lexicographically, so string comparison against
// the formatted bounds is chronological.
func (w Window) Contains(date string) bool {
	return date >= timeutil.FormatDay(w.Start) && date <= timeutil.FormatDay(w.End)
}

// Filter returns the tasks visible for the selected date and mode. Status and
// priority never filter the view.
func Filter(tasks []*task.Task, selected time.Time, mode Mode) []*task.Task {
	if mode == ModeAll {
		return tasks
	}

	keep := func(date string) bool { return date == timeutil.FormatDay(selected) }
	if mode == ModeWeek {
		w := WeekWindow(selected)
		keep = w.Contains
	}

	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// Day is one rendered group: a calendar date and its ordered tasks.
type Day struct {
	Date  string
	Tasks []*task.Task
}

// Group partitions tasks by date and orders the result: days ascending by
// date, tasks within a day ascending by start time. Equal start times keep
// their encounter order.
func Group(tasks []*task.Task) []Day {
	byDate := make(map[string][]*task.Task)
	dates := make([]string, 0)
	for _, t := range tasks {
		if _, seen := byDate[t.Date]; !seen {
			dates = append(dates, t.Date)
		}
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	sort.Strings(dates)

	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		group := byDate[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime < group[j].StartTime
		})
		days = append(days, Day{Date: date, Tasks: group})
	}
	return days
}
