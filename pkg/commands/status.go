package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/status"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

func addStatus(topLevel *cobra.Command) {
	transitions := []struct {
		use     string
		aliases []string
		short   string
		to      task.Status
	}{
		{"done <id>", []string{"complete", "x"}, "Mark a task done", task.StatusDone},
		{"start <id>", []string{"begin"}, "Mark a task in progress", task.StatusInProgress},
		{"reopen <id>", []string{"pending"}, "Put a task back to pending", task.StatusPending},
	}

	for _, tr := range transitions {
		to := tr.to
		cmd := &cobra.Command{
			Use:     tr.use,
			Aliases: tr.aliases,
			Short:   tr.short,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := store.Load(nil)
				if err != nil {
					return err
				}
				s := status.Status{
					ID:          args[0],
					To:          to,
					Persistence: p,
				}
				return s.Do(context.Background())
			},
		}
		topLevel.AddCommand(cmd)
	}
}
