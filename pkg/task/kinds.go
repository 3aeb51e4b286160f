package task

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a task. Values are stable wire strings.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Priority ranks a task within its day.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParseStatus maps user input (including a few aliases) onto a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "todo", "open":
		return StatusPending, nil
	case "in-progress", "inprogress", "started", "doing":
		return StatusInProgress, nil
	case "done", "complete", "completed":
		return StatusDone, nil
	}
	return "", fmt.Errorf("task: unknown status %q", s)
}

// ParsePriority maps user input onto a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "med", "m", "":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("task: unknown priority %q", s)
}

// Normalize fills zero values so tasks read from older snapshots still have
// a complete shape.
func (t *Task) Normalize() {
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}
