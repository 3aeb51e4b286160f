// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions captures date and view selection flags.
type ScheduleOptions struct {
	On   string
	View string
}

// AddOnArgs wires the date selection flag on the provided command.
func AddOnArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVarP(&o.On, "on", "o", "today",
		"Select the date (YYYY-MM-DD, today, tomorrow, yesterday).")
}

// AddViewArgs wires the view mode flag on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVarP(&o.View, "view", "v", "day",
		"Select the view mode: day, week, or all.")
}
