// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// PaletteOptions selects the palette a command works on.
type PaletteOptions struct {
	Name string
}

// AddPaletteArgs registers the persistent palette flag.
func AddPaletteArgs(cmd *cobra.Command, o *PaletteOptions) {
	cmd.PersistentFlags().StringVarP(&o.Name, "palette", "p", "",
		"Specify the palette, defaults to the configured palette.")
}

// Resolve returns the selected palette name, falling back to def.
func (o *PaletteOptions) Resolve(def string) string {
	if o == nil || o.Name == "" {
		return def
	}
	return o.Name
}
