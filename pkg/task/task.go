package task

import (
	"strings"

	"github.com/google/uuid"
)

// Task is a single schedulable item on a day plan. The JSON shape is the
// snapshot wire format, so field tags are load-bearing.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime,omitempty"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// New creates a pending, medium-priority task scheduled on the given day.
func New(title, date, start string) *Task {
	return &Task{
		ID:        NewID(),
		Title:     strings.TrimSpace(title),
		Date:      date,
		StartTime: start,
		Priority:  PriorityMedium,
		Status:    StatusPending,
	}
}

// NewID returns a fresh opaque task identifier.
func NewID() string {
	return uuid.NewString()
}

// Clone returns an independent copy so callers can hand tasks across
// boundaries without sharing mutable state.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func (t *Task) Done() bool {
	return t.Status == StatusDone
}

// Window renders the task's time window for display, eg "09:00–10:30" or
// "09:00" when no end time is set.
func (t *Task) Window() string {
	if t.EndTime == "" {
		return t.StartTime
	}
	return t.StartTime + "–" + t.EndTime
}
