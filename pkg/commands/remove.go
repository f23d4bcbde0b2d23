package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/palette"
)

func addRemove(topLevel *cobra.Command) {
	var targets []address.Address

	cmd := &cobra.Command{
		Use:     "remove <address>...",
		Aliases: []string{"rm"},
		Short:   "Remove elements from a palette.",
		Long: base.Wrap80("Remove the elements at each address. Removing several addresses " +
			"is one operation, undone in a single step."),
		Example: `
rampeditor remove 00:00:03
rampeditor rm 00:00:03 00:00:04 00:00:05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("expected at least one address")
			}
			var err error
			targets, err = options.ParseAddresses(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, removeOperation(targets))
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func removeOperation(targets []address.Address) palette.Operation {
	if len(targets) == 1 {
		return &palette.RemoveElement{Location: targets[0]}
	}
	ops := make([]palette.Operation, 0, len(targets))
	for _, a := range targets {
		ops = append(ops, &palette.RemoveElement{Location: a})
	}
	return &palette.Sequence{Name: "Remove Elements", Operations: ops}
}
