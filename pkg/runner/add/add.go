// Package add applies palette operations from the command line.
package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/palette"
	"tableflip.dev/rampeditor/pkg/printers"
)

// Add applies Operation to the named palette and prints the result.
type Add struct {
	Palette   string
	Operation palette.Operation
	Quiet     bool

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Operation == nil {
		return errors.New("can not add, no operation")
	}
	entry, err := n.Service.Apply(ctx, n.Palette, n.Operation)
	if err != nil {
		return err
	}
	return report(ctx, n.Service, n.Palette, entry, n.Quiet)
}

// Step undoes or redoes the last operation on the named palette.
type Step struct {
	Palette string
	Redo    bool
	Quiet   bool

	Service *app.Service
}

func (n *Step) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not step history, no service")
	}
	step := n.Service.Undo
	if n.Redo {
		step = n.Service.Redo
	}
	entry, err := step(ctx, n.Palette)
	if err != nil {
		return err
	}
	return report(ctx, n.Service, n.Palette, entry, n.Quiet)
}

func report(ctx context.Context, svc *app.Service, name string, entry palette.HistoryEntry, quiet bool) error {
	_, _ = color.New(color.FgGreen).Fprintln(color.Output, entry.Info.String())
	if quiet {
		return nil
	}
	p, err := svc.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("reload %q: %w", name, err)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Palette(p)
	return nil
}
