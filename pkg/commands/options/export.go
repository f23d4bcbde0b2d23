package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/rampeditor/pkg/format"
)

// ExportOptions
type ExportOptions struct {
	Format string
	Path   string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "F", "text",
		fmt.Sprintf("Output format. One of %s.", strings.Join(format.Names(), ", ")))
	cmd.Flags().StringVarP(&o.Path, "file", "f", "",
		`Write to a file instead of stdout, "-" means stdout.`)
}
