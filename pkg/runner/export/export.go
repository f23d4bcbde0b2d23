// Package export writes palettes to files in external formats.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/format"
	"tableflip.dev/rampeditor/pkg/logging"
)

type Export struct {
	Palette string
	Format  string
	// Path to write; empty or "-" writes to Out.
	Path string
	Out  io.Writer

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) (err error) {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	write, err := format.Lookup(n.Format)
	if err != nil {
		return err
	}
	p, err := n.Service.Open(ctx, n.Palette)
	if err != nil {
		return err
	}

	w := n.Out
	if w == nil {
		w = os.Stdout
	}
	if n.Path != "" && n.Path != "-" {
		f, err := os.Create(n.Path)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if err := write(w, p); err != nil {
		return fmt.Errorf("export %s: %w", n.Format, err)
	}
	logging.FromContext(ctx).Debug("palette exported", "palette", n.Palette, "format", n.Format, "path", n.Path)
	return nil
}
