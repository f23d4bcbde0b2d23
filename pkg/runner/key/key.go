// Package key provides CLI helpers to display the element legend.
package key

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/rampeditor/pkg/glyph"
)

// Key prints a glyph legend describing element kinds.
type Key struct{}

// Do renders the element key to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	gl := glyph.DefaultGlyphs()
	sort.Sort(glyph.ByOrder(gl))
	k.Key(ctx, gl)

	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}

// Key renders a glyph table, followed by the markers for empty and broken
// slots.
func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Elements"), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.AddRow(glyph.Empty, "empty slot")
	tbl.AddRow(glyph.Broken, "unresolvable (missing source or cycle)")
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
