package palette

import (
	"fmt"
	"testing"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

func at(page uint16, line, column uint8) *address.Address {
	a := address.New(page, line, column)
	return &a
}

// observe captures everything a reader can see: occupied addresses, their
// expressions and their resolved colors.
func observe(t *testing.T, d *Data) map[address.Address]string {
	t.Helper()
	out := make(map[address.Address]string, d.Len())
	for _, s := range d.Slots() {
		c, _ := d.Cell(s.Address)
		out[s.Address] = fmt.Sprintf("%s => %s (err=%v)", Express(c.Element()), s.Color, s.Err)
	}
	return out
}

func assertSameStore(t *testing.T, want, got map[address.Address]string) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("store size differs: want %d cells, got %d\nwant=%v\ngot=%v", len(want), len(got), want, got)
	}
	for a, w := range want {
		if g, ok := got[a]; !ok || g != w {
			t.Fatalf("cell %s differs: want %q, got %q", a.Hex(), w, g)
		}
	}
}

func mustApply(t *testing.T, d *Data, op Operation) HistoryEntry {
	t.Helper()
	entry, err := op.Apply(d)
	if err != nil {
		t.Fatalf("%s: %v", op.Info(), err)
	}
	return entry
}

func seeded(t *testing.T, colors ...color.Color) *Data {
	t.Helper()
	d := NewData(address.Bounds{Pages: 2, Lines: 4, Columns: 8})
	for _, c := range colors {
		mustApply(t, d, &InsertColor{Color: c})
	}
	return d
}
