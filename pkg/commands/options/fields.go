package options

import (
	"github.com/spf13/cobra"
)

// FieldOptions captures task field flags shared by add and edit.
type FieldOptions struct {
	Start       string
	End         string
	Category    string
	Priority    string
	Description string
	Notes       string
}

// AddFieldArgs wires the task field flags on the provided command.
func AddFieldArgs(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVarP(&o.Start, "start", "s", "",
		"Start time (HH:MM).")
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		"End time (HH:MM), optional.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Free-form category label.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: high, medium, or low.")
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		"Longer description.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes.")
}

// Set returns the editor field map for the flags that were provided.
func (o *FieldOptions) Set(cmd *cobra.Command) map[string]string {
	fields := make(map[string]string)
	add := func(flag, field, value string) {
		if cmd.Flags().Changed(flag) {
			fields[field] = value
		}
	}
	add("start", "start", o.Start)
	add("end", "end", o.End)
	add("category", "category", o.Category)
	add("priority", "priority", o.Priority)
	add("desc", "description", o.Description)
	add("notes", "notes", o.Notes)
	return fields
}
