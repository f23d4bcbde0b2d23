package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/palette"
)

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	pal := palette.New("warm/colors", palette.WithBounds(address.Bounds{Pages: 1, Lines: 4, Columns: 16}))
	for _, op := range []palette.Operation{
		&palette.InsertColor{Color: color.RGB(0, 0, 0)},
		&palette.InsertColor{Color: color.RGB(150, 100, 50)},
		&palette.InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 0, 1), Count: 5},
	} {
		if _, err := pal.Apply(op); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	want, err := pal.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if err := p.Store(want); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := p.Load(ctx, "warm/colors")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("round trip mismatch\nwant=%+v\ngot=%+v", want, got)
	}

	restored, err := palette.Restore(got)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if c, ok := restored.GetColor(address.New(0, 0, 4)); !ok || c != color.RGB(75, 50, 25) {
		t.Fatalf("restored ramp resolved to %s", c)
	}

	if names := p.List(ctx); !reflect.DeepEqual(names, []string{"warm/colors"}) {
		t.Fatalf("list = %v", names)
	}
}

func TestPersistenceMissing(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.Load(ctx, "nope"); !errors.Is(err, ErrPaletteNotFound) {
		t.Fatalf("expected ErrPaletteNotFound, got %v", err)
	}
	if err := p.Delete("nope"); !errors.Is(err, ErrPaletteNotFound) {
		t.Fatalf("expected ErrPaletteNotFound, got %v", err)
	}
	if err := p.Store(palette.Snapshot{}); err == nil {
		t.Fatalf("expected an error storing an unnamed palette")
	}
}

func TestPersistenceDelete(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, name := range []string{"b", "a"} {
		s, _ := palette.New(name).Snapshot()
		if err := p.Store(s); err != nil {
			t.Fatalf("store: %v", err)
		}
	}
	if names := p.List(ctx); !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Fatalf("list = %v", names)
	}
	if err := p.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if names := p.List(ctx); !reflect.DeepEqual(names, []string{"b"}) {
		t.Fatalf("list after delete = %v", names)
	}
}
