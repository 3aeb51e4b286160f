package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the status and priority legend",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := key.Key{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
