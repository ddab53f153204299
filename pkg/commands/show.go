package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/commands/options"
	"tableflip.dev/jlog/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the aggregate document in the terminal.",
		Example: `
jlog show
jlog show --width 80
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := show.Show{
				Width: do.Width,
			}
			return s.Do(context.Background())
		},
	}

	options.AddWidthArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
