// Package timeutil centralizes the calendar math shared by the view layer
// and the CLI so the "what day is it" logic lives in one place.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DayLayout is the ISO calendar date format used for Task.Date.
	DayLayout = "2006-01-02"

	// ClockLayout is the zero-padded local time-of-day format used for
	// Task.StartTime and Task.EndTime. Fixed width makes lexicographic
	// comparison chronological.
	ClockLayout = "15:04"
)

// Today returns the current local calendar date as an ISO date string.
func Today() string {
	return time.Now().Format(DayLayout)
}

// ParseDay parses an ISO calendar date. The aliases "today", "tomorrow" and
// "yesterday" are accepted for CLI convenience.
func ParseDay(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return midnight(time.Now()), nil
	case "tomorrow":
		return midnight(time.Now().AddDate(0, 0, 1)), nil
	case "yesterday":
		return midnight(time.Now().AddDate(0, 0, -1)), nil
	}
	t, err := time.ParseInLocation(DayLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: bad date %q: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time as an ISO calendar date.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// ValidDay reports whether s is a well-formed ISO calendar date.
func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}

// ValidClock reports whether s is a well-formed zero-padded HH:MM time.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// WeekStart returns the Sunday on or before the given day at midnight. The
// 7-day window starting there is the week that contains day.
func WeekStart(day time.Time) time.Time {
	day = midnight(day)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
