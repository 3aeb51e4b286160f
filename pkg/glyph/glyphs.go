package glyph

import (
	"fmt"

	"tableflip.dev/dayplan/pkg/task"
)

// Glyph pairs a schedule marker with the key users type for it and what it
// means, for printers and the `key` legend command.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var statuses = map[task.Status]Glyph{
	task.StatusPending:    {Key: "p", Symbol: "●", Meaning: "task pending"},
	task.StatusInProgress: {Key: "s", Symbol: "◐", Meaning: "task in progress"},
	task.StatusDone:       {Key: "x", Symbol: "✘", Meaning: "task done"},
}

var priorities = map[task.Priority]Glyph{
	task.PriorityHigh:   {Key: "h", Symbol: "✷", Meaning: "high priority"},
	task.PriorityMedium: {Key: "m", Symbol: " ", Meaning: "medium priority"},
	task.PriorityLow:    {Key: "l", Symbol: "⌄", Meaning: "low priority"},
}

// ForStatus returns the glyph for a status, falling back to pending for
// values this build does not know.
func ForStatus(s task.Status) Glyph {
	if g, ok := statuses[s]; ok {
		return g
	}
	return statuses[task.StatusPending]
}

// ForPriority returns the glyph for a priority.
func ForPriority(p task.Priority) Glyph {
	if g, ok := priorities[p]; ok {
		return g
	}
	return priorities[task.PriorityMedium]
}

// Statuses lists status glyphs in lifecycle order.
func Statuses() []Glyph {
	return []Glyph{
		statuses[task.StatusPending],
		statuses[task.StatusInProgress],
		statuses[task.StatusDone],
	}
}

// Priorities lists priority glyphs from most to least urgent.
func Priorities() []Glyph {
	return []Glyph{
		priorities[task.PriorityHigh],
		priorities[task.PriorityMedium],
		priorities[task.PriorityLow],
	}
}

func (g Glyph) String() string {
	return g.Symbol
}
