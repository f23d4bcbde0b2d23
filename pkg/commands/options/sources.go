package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/rampeditor/pkg/address"
)

// SourceOptions
type SourceOptions struct {
	Make bool
}

func AddMakeSourcesArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().BoolVar(&o.Make, "make-sources", false,
		"Create missing sources as black placeholders.")
}

// ParseAddresses reads each argument as an address, naming the offending
// argument on failure.
func ParseAddresses(args []string) ([]address.Address, error) {
	out := make([]address.Address, 0, len(args))
	for _, arg := range args {
		a, err := address.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		out = append(out, a)
	}
	return out, nil
}
