package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions captures terminal rendering flags.
type DisplayOptions struct {
	Width int
	Days  int
}

// AddWidthArgs registers the word-wrap width flag.
func AddWidthArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().IntVar(&o.Width, "width", 100,
		"Word-wrap width for terminal rendering.")
}

// AddDaysArgs registers the day-window flag for stat tables.
func AddDaysArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().IntVar(&o.Days, "days", 30,
		"Limit the daily table to the most recent N days.")
}
