package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show"},
		Short:   "Print a palette.",
		Example: `
rampeditor get
rampeditor get --palette sunset --expressions
rampeditor get --all
rampeditor get --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if vo.Follow {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
			}

			g := get.Get{
				Palette:        s.palette(),
				ShowExpression: vo.Expressions,
				Follow:         vo.Follow,
				Service:        s.service,
			}
			if vo.All {
				g.Palette = ""
			}
			err = g.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
