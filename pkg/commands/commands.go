package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("Plan your day on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addStatus(topLevel)
	addRemove(topLevel)
	addStats(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
