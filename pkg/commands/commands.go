package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "jlog",
		Short: base.Wrap80("Markdown journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addInit(topLevel)
	addToday(topLevel)
	addAggregate(topLevel)
	addPush(topLevel)
	addShow(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
}
