package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/rampeditor/pkg/glyph"
	"tableflip.dev/rampeditor/pkg/palette"
)

type PrettyPrint struct {
	// ShowExpression adds the stored expression of each slot.
	ShowExpression bool
	// Out defaults to color.Output.
	Out io.Writer

	term *termenv.Output
}

const swatchWidth = 4

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// swatches are only drawn on a terminal; piped output stays plain text.
func (pp *PrettyPrint) termOutput() *termenv.Output {
	if pp.term != nil {
		return pp.term
	}
	if pp.Out == nil && isatty.IsTerminal(os.Stdout.Fd()) {
		pp.term = termenv.NewOutput(os.Stdout)
	} else {
		pp.term = termenv.NewOutput(pp.out(), termenv.WithProfile(termenv.Ascii))
	}
	return pp.term
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " color")
	default:
		_, _ = c.Fprintln(pp.out(), " colors")
	}
}

// Swatch renders a block filled with the hex color, or spaces when the
// output has no color support.
func (pp *PrettyPrint) Swatch(hex string) string {
	out := pp.termOutput()
	block := strings.Repeat(" ", swatchWidth)
	if out.Profile == termenv.Ascii {
		return block
	}
	return out.String(block).Background(out.Color(hex)).String()
}

// Slots prints one row per slot. expr looks up the stored expression for
// the slot's address.
func (pp *PrettyPrint) Slots(slots []palette.Slot, expr func(palette.Slot) (palette.Expression, bool)) {
	if len(slots) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " empty\n\n")
		return
	}

	faint := color.New(color.Faint)
	bad := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range slots {
		x, _ := expr(s)
		g := glyph.ForKind(x.Kind)

		if s.Err != nil {
			row := []interface{}{faint.Sprint(s.Address.Hex()), bad.Sprint(glyph.Broken), strings.Repeat(" ", swatchWidth), bad.Sprint(s.Err.Error())}
			if pp.ShowExpression {
				row = append(row, x.String())
			}
			tbl.AddRow(row...)
			continue
		}
		row := []interface{}{faint.Sprint(s.Address.Hex()), g.Symbol, pp.Swatch(s.Color.Hex()), s.Color.Hex()}
		if pp.ShowExpression {
			row = append(row, faint.Sprint(x.String()))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Palette prints a titled listing of every slot in p.
func (pp *PrettyPrint) Palette(p *palette.Palette) {
	pp.TitleWithCount(p.Name(), p.Len())
	pp.Slots(p.Slots(), func(s palette.Slot) (palette.Expression, bool) {
		return p.Expression(s.Address)
	})
}

// History prints the undo stack, most recent first.
func (pp *PrettyPrint) History(history []palette.OperationInfo, redo int) {
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for i := len(history) - 1; i >= 0; i-- {
		tbl.AddRow(faint.Sprintf("%d", i+1), history[i].Name, faint.Sprint(history[i].Details))
	}
	if len(history) == 0 {
		tbl.AddRow(faint.Sprint("-"), faint.Sprint("no history"))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	if redo > 0 {
		_, _ = faint.Fprintf(pp.out(), "%d undone, redo available\n", redo)
	}
}
