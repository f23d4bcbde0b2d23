// Package info reports where palettes are stored and what they hold.
package info

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/glyph"
	"tableflip.dev/rampeditor/pkg/palette"
	"tableflip.dev/rampeditor/pkg/printers"
	"tableflip.dev/rampeditor/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	// Palette to summarize; empty summarizes the configuration only.
	Palette string
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output
	if override := os.Getenv("RAMPEDITOR_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "RAMPEDITOR_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "RAMPEDITOR_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:   ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.palette:", n.Config.DefaultPalette())
	_, _ = fmt.Fprintln(out, "Config.bounds: ", n.Config.Bounds())

	if n.Service == nil {
		return fmt.Errorf("failed to create palette service")
	}

	if n.Palette == "" {
		names, err := n.Service.Palettes(ctx)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "Palettes:")
		for _, name := range names {
			_, _ = fmt.Fprintf(out, "  %s\n", name)
		}
		if len(names) == 0 {
			_, _ = fmt.Fprintf(out, "  %s\n", "no palettes")
		}
		return nil
	}

	r, err := n.Service.Report(ctx, n.Palette)
	if err != nil {
		return err
	}
	Print(r)
	return nil
}

// Print renders a palette report.
func Print(r app.ReportResult) {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount(r.Name, r.Total)

	kinds := make([]palette.ExpressionKind, 0, len(r.Kinds))
	for k := range r.Kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return glyph.ForKind(kinds[i]).Order < glyph.ForKind(kinds[j]).Order })

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("bounds", r.Bounds.String())
	tbl.AddRow("lines", fmt.Sprintf("%d", len(r.Sections)))
	for _, k := range kinds {
		g := glyph.ForKind(k)
		tbl.AddRow(g.Symbol+" "+string(k), fmt.Sprintf("%d", r.Kinds[k]))
	}
	if r.Unresolved > 0 {
		tbl.AddRow(glyph.Broken+" unresolved", fmt.Sprintf("%d (%v)", r.Unresolved, r.FirstError()))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
	pp.History(r.History, r.RedoDepth)
}
