// Package key provides CLI helpers to display the schedule legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/glyph"
)

// Key prints a glyph legend describing statuses and priorities.
type Key struct{}

// Do renders the status and priority keys to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	k.Key(ctx, "Status", glyph.Statuses())
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, "Priority", glyph.Priorities())

	fmt.Println("")
	return nil
}

// Key renders one glyph table under the given heading.
func (k *Key) Key(_ context.Context, heading string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(heading), bold.Sprint("Key"), bold.Sprint("Meaning"))
	for _, g := range glyfs {
		tbl.AddRow(g.Symbol, g.Key, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
