package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/format"
	"tableflip.dev/rampeditor/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a palette in another format.",
		Example: `
rampeditor export
rampeditor export --format zpl --file sunset.zpl --palette sunset
rampeditor export --format yaml > backup.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			e := export.Export{
				Palette: s.palette(),
				Format:  eo.Format,
				Path:    eo.Path,
				Out:     cmd.OutOrStdout(),
				Service: s.service,
			}
			err = e.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return format.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
