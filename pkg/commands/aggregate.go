package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/runner/aggregate"
)

func addAggregate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "aggregate",
		Aliases: []string{"agg"},
		Short:   "Rebuild the category tables and the aggregate document.",
		Example: `
jlog aggregate
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := aggregate.Aggregate{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
