package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/rampeditor/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(rampeditor completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(rampeditor completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func paletteCompletions(cmd *cobra.Command, toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	var names []string
	for _, name := range p.List(cmd.Context()) {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names
}
