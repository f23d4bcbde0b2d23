package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/runner/add"
)

func addUndo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last operation.",
		Example: `
rampeditor undo
rampeditor undo --palette sunset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStep(cmd, false)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addRedo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "redo",
		Short: "Redo the last undone operation.",
		Example: `
rampeditor redo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStep(cmd, true)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func runStep(cmd *cobra.Command, redo bool) error {
	cmd.SilenceUsage = true
	s, err := loadSession()
	if err != nil {
		return oo.HandleError(err)
	}
	step := add.Step{
		Palette: s.palette(),
		Redo:    redo,
		Quiet:   oo.JSON,
		Service: s.service,
	}
	err = step.Do(cmd.Context())
	return oo.HandleError(err)
}
