package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/commands/options"
	"tableflip.dev/jlog/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Create today's entry from the daily template.",
		Example: `
jlog today
jlog today --on="2025-02-28"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := do.GetOn()
			if err != nil {
				return err
			}
			s := today.Today{
				Date: on,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
