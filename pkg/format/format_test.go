package format

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/palette"
)

func at(page uint16, line, column uint8) *address.Address {
	a := address.New(page, line, column)
	return &a
}

func testPalette(t *testing.T) *palette.Palette {
	t.Helper()
	p := palette.New("Super Duper", palette.WithBounds(address.Bounds{Pages: 1, Lines: 2, Columns: 16}))
	for _, op := range []palette.Operation{
		&palette.InsertColor{Color: color.RGB(0, 0, 0)},
		&palette.InsertColor{Color: color.RGB(150, 100, 50)},
		&palette.InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 0, 1), Count: 1},
		&palette.InsertColor{Color: color.RGB(255, 128, 4), Location: at(0, 1, 2)},
	} {
		if _, err := p.Apply(op); err != nil {
			t.Fatalf("apply %s: %v", op.Info(), err)
		}
	}
	return p
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testPalette(t)); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"#00:00:00 000000",
		"#00:00:01 966432",
		"#00:00:02 4B3219",
		"#00:01:02 FF8004",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteZPL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteZPL(&buf, testPalette(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	bodySize := 2*zplCSetSize + zplNameSize + 2
	if len(out) != 8+bodySize {
		t.Fatalf("expected %d bytes, got %d", 8+bodySize, len(out))
	}
	if v := binary.LittleEndian.Uint16(out[0:]); v != zplSectionVersion {
		t.Fatalf("section version %d", v)
	}
	if v := binary.LittleEndian.Uint16(out[2:]); v != zplCVersion {
		t.Fatalf("cversion %d", v)
	}
	if v := binary.LittleEndian.Uint32(out[4:]); int(v) != bodySize {
		t.Fatalf("section size %d, want %d", v, bodySize)
	}

	body := out[8:]
	if got := body[3:6]; !bytes.Equal(got, []byte{150 >> 2, 100 >> 2, 50 >> 2}) {
		t.Fatalf("0:0:1 = %v", got)
	}
	if got := body[zplCSetSize+6 : zplCSetSize+9]; !bytes.Equal(got, []byte{63, 32, 1}) {
		t.Fatalf("0:1:2 = %v", got)
	}
	name := body[2*zplCSetSize : 2*zplCSetSize+zplNameSize]
	if string(bytes.TrimRight(name, "\x00")) != "Super Duper" {
		t.Fatalf("name = %q", name)
	}
	if cycles := binary.LittleEndian.Uint16(body[len(body)-2:]); cycles != 0 {
		t.Fatalf("cycle count %d", cycles)
	}
}

func TestWriteZPLRejectsWideLines(t *testing.T) {
	p := palette.New("wide")
	if _, err := p.Apply(&palette.InsertColor{Color: color.RGB(1, 1, 1), Location: at(0, 0, 16)}); err != nil {
		t.Fatal(err)
	}
	if err := WriteZPL(&bytes.Buffer{}, p); !errors.Is(err, ErrUnsupportedLayout) {
		t.Fatalf("expected ErrUnsupportedLayout, got %v", err)
	}
}

func TestWriteFailsOnCycle(t *testing.T) {
	p := palette.New("cycle")
	if _, err := p.Apply(&palette.InsertColor{Color: color.RGB(1, 1, 1)}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Apply(&palette.InsertWatcher{Source: address.New(0, 0, 0), Location: at(0, 0, 1)}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Apply(&palette.InsertWatcher{Source: address.New(0, 0, 1), Location: at(0, 0, 0), Overwrite: true}); err != nil {
		t.Fatal(err)
	}
	if err := WriteText(&bytes.Buffer{}, p); !errors.Is(err, palette.ErrCyclicDependency) {
		t.Fatalf("expected ErrCyclicDependency, got %v", err)
	}
}

func TestSnapshotFormatsRoundTrip(t *testing.T) {
	p := testPalette(t)
	for _, name := range []string{"json", "yaml"} {
		t.Run(name, func(t *testing.T) {
			w, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := w(&buf, p); err != nil {
				t.Fatal(err)
			}
			s, err := ReadSnapshot(&buf)
			if err != nil {
				t.Fatal(err)
			}
			q, err := palette.Restore(s)
			if err != nil {
				t.Fatal(err)
			}
			if q.Len() != p.Len() || q.UndoDepth() != p.UndoDepth() {
				t.Fatalf("restored len=%d undo=%d", q.Len(), q.UndoDepth())
			}
			if c, _ := q.GetColor(address.New(0, 0, 2)); c != color.RGB(75, 50, 25) {
				t.Fatalf("restored ramp resolved to %s", c)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, err := Lookup("TEXT"); err != nil {
		t.Fatalf("lookup should ignore case: %v", err)
	}
	if _, err := Lookup("gpl"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
