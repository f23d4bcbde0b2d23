package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions
type ViewOptions struct {
	All         bool
	Expressions bool
	Follow      bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every stored palette.")
	cmd.Flags().BoolVarP(&o.Expressions, "expressions", "e", false,
		"Show the expression behind each slot.")
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false,
		"Keep running and reprint when the palette changes.")
}
