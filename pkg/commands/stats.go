package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/commands/options"
	"tableflip.dev/jlog/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print daily and weekly work-time tables from time tracking.",
		Example: `
jlog stats
jlog stats --days 7
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stats.Stats{
				Days: do.Days,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDaysArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
