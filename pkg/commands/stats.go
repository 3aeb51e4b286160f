package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/stats"
	"tableflip.dev/dayplan/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print today's load and the week completion",
		Example: `
dayplan stats
dayplan stats --on 2024-03-15
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				On:          so.On,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
