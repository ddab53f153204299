package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/runner/initialize"
)

func addInit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactive setup of the journal folder structure and git repo.",
		Example: `
jlog init
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := initialize.Initialize{
				In: cmd.InOrStdin(),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
