package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Day prints one date group as a table of ordered tasks.
func (pp *PrettyPrint) Day(d view.Day) {
	pp.TitleWithCount(d.Date, len(d.Tasks))

	if len(d.Tasks) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range d.Tasks {
		title := t.Title
		if t.Done() {
			title = glyph.Strike(title)
		}
		cells := []interface{}{
			glyph.ForStatus(t.Status).Symbol,
			glyph.ForPriority(t.Priority).Symbol,
			t.Window(),
			title,
			t.Category,
		}
		if pp.ShowID {
			cells = append([]interface{}{y.Sprint(shortID(t.ID))}, cells...)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Schedule prints the full grouped view.
func (pp *PrettyPrint) Schedule(days []view.Day) {
	if len(days) == 0 {
		pp.none()
		return
	}
	for _, d := range days {
		pp.Day(d)
	}
}

// Stats prints the summary footer: today's load and the week completion.
func (pp *PrettyPrint) Stats(s view.Stats) {
	f := color.New(color.Faint)
	_, _ = f.Printf("today: %d task", s.TodayCount)
	if s.TodayCount != 1 {
		_, _ = f.Print("s")
	}
	_, _ = f.Printf("  ·  week done: %d%%\n", s.WeekCompletion)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// shortID trims uuids down to their first group for display; full ids still
// work everywhere ids are accepted.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
