package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/logging"
)

func addNew(topLevel *cobra.Command) {
	bo := &options.BoundsOptions{}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create an empty palette.",
		Example: `
rampeditor new
rampeditor new sunset --pages 1 --lines 4 --columns 16
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			name := s.palette()
			if len(args) == 1 {
				name = args[0]
			}
			bounds := bo.Merge(s.config.Bounds())
			p, err := s.service.Create(cmd.Context(), name, bounds)
			if err != nil {
				return oo.HandleError(err)
			}
			logging.FromContext(cmd.Context()).Debug("palette created", "palette", name, "bounds", p.Bounds().String())
			_, _ = fmt.Fprintf(color.Output, "%s %s %s\n",
				color.GreenString("created"), name, color.HiBlackString(p.Bounds().String()))
			return nil
		},
	}

	options.AddBoundsArgs(cmd, bo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
