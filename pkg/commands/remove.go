package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/remove"
	"tableflip.dev/dayplan/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          args[0],
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
