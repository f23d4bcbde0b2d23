package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rampeditor/pkg/address"
)

// PlacementOptions control where an operation writes.
type PlacementOptions struct {
	At        address.Value
	Overwrite bool
}

func AddPlacementArgs(cmd *cobra.Command, o *PlacementOptions) {
	cmd.Flags().Var(&o.At, "at",
		`Target address, example: --at=00:01:0A. Defaults to the first free slot.`)
	cmd.Flags().BoolVar(&o.Overwrite, "overwrite", false,
		"Replace occupied slots instead of skipping them.")
}

// Location returns the requested address, or nil when --at was not given.
func (o *PlacementOptions) Location() *address.Address {
	return o.At.Ptr()
}
