package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rampeditor/pkg/address"
)

// BoundsOptions size a new palette. Unset flags fall back to the config.
type BoundsOptions struct {
	Pages   int
	Lines   int
	Columns int
}

func AddBoundsArgs(cmd *cobra.Command, o *BoundsOptions) {
	cmd.Flags().IntVar(&o.Pages, "pages", 0, "Number of pages.")
	cmd.Flags().IntVar(&o.Lines, "lines", 0, "Lines per page.")
	cmd.Flags().IntVar(&o.Columns, "columns", 0, "Columns per line.")
}

// Merge overlays the set flags on def.
func (o *BoundsOptions) Merge(def address.Bounds) address.Bounds {
	if o.Pages > 0 {
		def.Pages = o.Pages
	}
	if o.Lines > 0 {
		def.Lines = o.Lines
	}
	if o.Columns > 0 {
		def.Columns = o.Columns
	}
	return def
}
