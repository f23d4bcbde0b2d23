// Package get lists palettes and their colors.
package get

import (
	"context"
	"errors"

	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/logging"
	"tableflip.dev/rampeditor/pkg/printers"
	"tableflip.dev/rampeditor/pkg/store"
)

type Get struct {
	// Palette to list; empty lists every stored palette.
	Palette        string
	ShowExpression bool
	// Follow reprints the palette whenever it changes on disk.
	Follow bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	pp := printers.PrettyPrint{ShowExpression: n.ShowExpression}
	pp.NewLine()

	if n.Palette == "" {
		names, err := n.Service.Palettes(ctx)
		if err != nil {
			return err
		}
		pp.TitleWithCount("palettes", len(names))
		for _, name := range names {
			if err := n.print(ctx, &pp, name); err != nil {
				return err
			}
		}
		return nil
	}

	if err := n.print(ctx, &pp, n.Palette); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}
	return n.follow(ctx, &pp)
}

func (n *Get) print(ctx context.Context, pp *printers.PrettyPrint, name string) error {
	p, err := n.Service.Open(ctx, name)
	if err != nil {
		return err
	}
	pp.Palette(p)
	return nil
}

func (n *Get) follow(ctx context.Context, pp *printers.PrettyPrint) error {
	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx).With("palette", n.Palette)
	logger.Debug("following palette")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventPaletteChanged && ev.Palette != n.Palette {
				continue
			}
			if err := n.print(ctx, pp, n.Palette); err != nil {
				if errors.Is(err, store.ErrPaletteNotFound) {
					logger.Info("palette removed")
					return nil
				}
				logger.Warn("reload failed", "err", err)
			}
		}
	}
}
