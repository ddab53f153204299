package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jlog/pkg/runner/push"
)

func addPush(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Aggregate, then git add, commit, and push the journal.",
		Example: `
jlog push
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := push.Push{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
