package view

import (
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timeutil.ParseDay(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func at(title, date, start string) *task.Task {
	return task.New(title, date, start)
}

func TestFilterDay(t *testing.T) {
	tasks := []*task.Task{
		at("match", "2024-03-15", "09:00"),
		at("other day", "2024-03-14", "09:00"),
	}
	got := Filter(tasks, day(t, "2024-03-15"), ModeDay)
	if len(got) != 1 || got[0].Title != "match" {
		t.Fatalf("unexpected day filter result: %+v", got)
	}
}

func TestFilterWeekWindowBoundaries(t *testing.T) {
	// 2024-03-15 is a Friday; its week window is 2024-03-10..2024-03-16.
	tasks := []*task.Task{
		at("window start", "2024-03-10", "09:00"),
		at("window end", "2024-03-16", "09:00"),
		at("before window", "2024-03-09", "09:00"),
		at("after window", "2024-03-17", "09:00"),
	}
	got := Filter(tasks, day(t, "2024-03-15"), ModeWeek)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks in week window, got %d: %+v", len(got), got)
	}
	if got[0].Title != "window start" || got[1].Title != "window end" {
		t.Fatalf("wrong tasks in window: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestFilterAllIgnoresDateAndStatus(t *testing.T) {
	done := at("done task", "2020-01-01", "09:00")
	done.Status = task.StatusDone
	tasks := []*task.Task{
		done,
		at("far future", "2030-12-31", "09:00"),
	}
	got := Filter(tasks, day(t, "2024-03-15"), ModeAll)
	if len(got) != 2 {
		t.Fatalf("all mode must not filter, got %d of %d", len(got), len(tasks))
	}
}

func TestGroupOrdersDaysAndStartTimes(t *testing.T) {
	tasks := []*task.Task{
		at("late", "2024-03-15", "14:00"),
		at("next day", "2024-03-16", "08:00"),
		at("early", "2024-03-15", "09:00"),
	}
	days := Group(tasks)
	if len(days) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(days))
	}
	if days[0].Date != "2024-03-15" || days[1].Date != "2024-03-16" {
		t.Fatalf("groups out of order: %s, %s", days[0].Date, days[1].Date)
	}
	first := days[0].Tasks
	if len(first) != 2 || first[0].Title != "early" || first[1].Title != "late" {
		t.Fatalf("tasks out of order within day: %+v", first)
	}
}

func TestGroupIsTotalAndStable(t *testing.T) {
	// Two tasks share a start time; encounter order must hold.
	a := at("first at nine", "2024-03-15", "09:00")
	b := at("second at nine", "2024-03-15", "09:00")
	tasks := []*task.Task{a, b, at("elsewhere", "2024-03-20", "10:00")}

	days := Group(tasks)
	total := 0
	for _, d := range days {
		for _, tk := range d.Tasks {
			if tk.Date != d.Date {
				t.Fatalf("task %q grouped under %s but dated %s", tk.Title, d.Date, tk.Date)
			}
			total++
		}
	}
	if total != len(tasks) {
		t.Fatalf("grouping lost tasks: %d of %d", total, len(tasks))
	}
	if days[0].Tasks[0] != a || days[0].Tasks[1] != b {
		t.Fatal("equal start times must keep encounter order")
	}

	for _, d := range days {
		for i := 1; i < len(d.Tasks); i++ {
			if d.Tasks[i-1].StartTime > d.Tasks[i].StartTime {
				t.Fatalf("day %s not ordered by start time", d.Date)
			}
		}
	}
}

func TestAggregateTodayCountUsesRealToday(t *testing.T) {
	now := day(t, "2024-03-15")
	selected := day(t, "2024-06-01")
	tasks := []*task.Task{
		at("today a", "2024-03-15", "09:00"),
		at("today b", "2024-03-15", "10:00"),
		at("selected day", "2024-06-01", "09:00"),
	}
	s := Aggregate(tasks, now, selected)
	if s.TodayCount != 2 {
		t.Fatalf("today count = %d, want 2", s.TodayCount)
	}
}

func TestAggregateWeekCompletion(t *testing.T) {
	selected := day(t, "2024-03-15")
	done := at("shipped", "2024-03-11", "09:00")
	done.Status = task.StatusDone
	tasks := []*task.Task{
		done,
		at("pending", "2024-03-12", "09:00"),
		at("outside window", "2024-03-09", "09:00"),
	}
	s := Aggregate(tasks, day(t, "2024-03-15"), selected)
	if s.WeekCompletion != 50 {
		t.Fatalf("week completion = %d, want 50", s.WeekCompletion)
	}
	if s.WeekCompletion < 0 || s.WeekCompletion > 100 {
		t.Fatalf("completion out of range: %d", s.WeekCompletion)
	}
}

func TestAggregateEmptyWindowIsZero(t *testing.T) {
	tasks := []*task.Task{at("far away", "2020-01-01", "09:00")}
	s := Aggregate(tasks, day(t, "2024-03-15"), day(t, "2024-03-15"))
	if s.WeekCompletion != 0 {
		t.Fatalf("empty window completion = %d, want 0", s.WeekCompletion)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"day": ModeDay, "d": ModeDay, "": ModeDay,
		"week": ModeWeek, "w": ModeWeek,
		"all": ModeAll, "A": ModeAll,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseMode("month"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
