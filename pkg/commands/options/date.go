// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/entry"
)

// DateOptions captures an optional date override.
type DateOptions struct {
	OnString string
}

// AddDateArgs wires the date override flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date instead of today, example: --on="2025-02-28".`)
}

// GetOn returns the parsed date override, or the zero date when unset.
func (o *DateOptions) GetOn() (entry.Date, error) {
	if o.OnString == "" {
		return entry.Date{}, nil
	}
	return entry.ParseDate(o.OnString)
}
