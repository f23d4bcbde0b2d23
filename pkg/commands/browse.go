package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/runner/browse"
)

func addBrowse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ui"},
		Short:   "Browse and edit a palette interactively.",
		Example: `
rampeditor browse
rampeditor ui --palette sunset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			err = browse.Run(cmd.Context(), s.service, s.palette())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
