package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/edit"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func addEdit(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	fo := &options.FieldOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Long: "Change fields of a task. Only the provided flags change; the\n" +
			"task's status is preserved.",
		Example: `
dayplan edit 171dff69 --start 10:00
dayplan edit 171dff69 --title "review PRs" --priority high
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := fo.Set(cmd)
			if cmd.Flags().Changed("title") {
				fields["title"] = strings.TrimSpace(title)
			}
			if cmd.Flags().Changed("on") {
				d, err := timeutil.ParseDay(so.On)
				if err != nil {
					return err
				}
				fields["date"] = timeutil.FormatDay(d)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				Fields:      fields,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title.")
	options.AddOnArgs(cmd, so)
	options.AddFieldArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
