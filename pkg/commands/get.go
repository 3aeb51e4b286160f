package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/get"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/view"
)

func addGet(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Print the schedule for a date and view",
		Example: `
dayplan get
dayplan get --on 2024-03-15 --view week
dayplan get --view all --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := view.ParseMode(so.View)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				On:          so.On,
				Mode:        mode,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, so)
	options.AddViewArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
