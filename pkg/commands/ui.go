package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}

	topLevel.AddCommand(cmd)
}
