package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/add"
	"tableflip.dev/dayplan/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the plan",
		Example: `
dayplan add "walk the dog" --start 07:30 --end 08:00
dayplan add "standup" --on tomorrow --start 09:15 --priority high
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       strings.Join(args, " "),
				On:          so.On,
				Start:       fo.Start,
				End:         fo.End,
				Category:    fo.Category,
				Priority:    fo.Priority,
				Description: fo.Description,
				Notes:       fo.Notes,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, so)
	options.AddFieldArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
