package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/store"
)

var (
	oo = &base.OutputOptions{}
	po = &options.PaletteOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rampeditor",
		Short: base.Wrap80("Edit color palettes built from ramps and watchers, with full undo and redo."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddPaletteArgs(cmd, po)
	_ = cmd.RegisterFlagCompletionFunc("palette", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return paletteCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addUndo(topLevel)
	addRedo(topLevel)
	addGet(topLevel)
	addExport(topLevel)
	addBrowse(topLevel)
	addDelete(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// session is the loaded configuration plus a service over its store.
type session struct {
	config  store.Config
	service *app.Service
}

func (s *session) palette() string {
	return po.Resolve(s.config.DefaultPalette())
}

func loadSession() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		config:  cfg,
		service: &app.Service{Persistence: p, Bounds: cfg.Bounds()},
	}, nil
}
