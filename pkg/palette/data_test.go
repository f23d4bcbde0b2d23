package palette

import (
	"errors"
	"testing"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

func TestCreateAndRemoveCell(t *testing.T) {
	d := NewData(address.Full)
	a := address.New(0, 1, 2)

	if _, err := d.CreateCell(a); err != nil {
		t.Fatalf("CreateCell: %v", err)
	}
	_, err := d.CreateCell(a)
	if !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	var ae *AddressError
	if !errors.As(err, &ae) || ae.Address != a {
		t.Fatalf("expected address in error, got %v", err)
	}

	expr, err := d.RemoveCell(a)
	if err != nil {
		t.Fatalf("RemoveCell: %v", err)
	}
	if expr.Kind != KindColor || *expr.Color != (color.Color{}) {
		t.Fatalf("unexpected removed expression %v", expr)
	}
	if _, err := d.RemoveCell(a); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
	if _, ok := d.Cell(a); ok {
		t.Fatalf("cell should be gone")
	}
}

func TestFirstFreeAddressAfter(t *testing.T) {
	d := NewData(address.Bounds{Pages: 1, Lines: 1, Columns: 4})
	for _, col := range []uint8{0, 1, 3} {
		if _, err := d.CreateCell(address.New(0, 0, col)); err != nil {
			t.Fatal(err)
		}
	}
	got, err := d.FirstFreeAddressAfter(address.New(0, 0, 3))
	if err != nil {
		t.Fatalf("FirstFreeAddressAfter: %v", err)
	}
	if got != address.New(0, 0, 2) {
		t.Fatalf("expected wrap to 0:0:2, got %s", got)
	}
	if _, err := d.CreateCell(got); err != nil {
		t.Fatal(err)
	}
	if _, err := d.FirstFreeAddressAfter(address.Address{}); !errors.Is(err, ErrPaletteFull) {
		t.Fatalf("expected ErrPaletteFull, got %v", err)
	}
}

func TestFindTargets(t *testing.T) {
	d := NewData(address.Bounds{Pages: 1, Lines: 2, Columns: 4})
	occupied := []address.Address{address.New(0, 0, 1), address.New(0, 0, 3)}
	for _, a := range occupied {
		if _, err := d.CreateCell(a); err != nil {
			t.Fatal(err)
		}
	}
	exclude := address.Of(address.New(0, 0, 2), address.New(0, 1, 0))

	targets, err := d.FindTargets(3, address.Address{}, false, exclude)
	if err != nil {
		t.Fatalf("FindTargets: %v", err)
	}
	want := []address.Address{address.New(0, 0, 0), address.New(0, 1, 1), address.New(0, 1, 2)}
	if len(targets) != len(want) {
		t.Fatalf("got %v, want %v", targets, want)
	}
	for i, a := range targets {
		if a != want[i] {
			t.Fatalf("target %d = %s, want %s", i, a, want[i])
		}
		if exclude.Contains(a) {
			t.Fatalf("target %s is excluded", a)
		}
		if _, ok := d.Cell(a); ok {
			t.Fatalf("target %s is occupied", a)
		}
		if i > 0 && !targets[i-1].Less(a) {
			t.Fatalf("targets not ascending: %v", targets)
		}
	}

	// Only 4 addresses qualify: 0:0:0, 0:1:1, 0:1:2, 0:1:3.
	if _, err := d.FindTargets(5, address.Address{}, false, exclude); !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}

	overwrite, err := d.FindTargets(3, address.Address{}, true, exclude)
	if err != nil {
		t.Fatalf("FindTargets overwrite: %v", err)
	}
	if overwrite[1] != address.New(0, 0, 1) {
		t.Fatalf("overwrite should include occupied addresses, got %v", overwrite)
	}

	if none, err := d.FindTargets(0, address.Address{}, false, nil); err != nil || len(none) != 0 {
		t.Fatalf("zero count should be empty, got %v %v", none, err)
	}
}

func TestResolveSelfReferenceIsCyclic(t *testing.T) {
	d := NewData(address.Full)
	a := address.New(0, 0, 0)
	c, _ := d.CreateCell(a)
	c.Set(Mixed(Watch{}, a))

	_, err := d.Color(a)
	if !errors.Is(err, ErrCyclicDependency) {
		t.Fatalf("expected ErrCyclicDependency, got %v", err)
	}
}

func TestResolveIndirectCycle(t *testing.T) {
	d := NewData(address.Full)
	a, b, c := address.New(0, 0, 0), address.New(0, 0, 1), address.New(0, 0, 2)
	ca, _ := d.CreateCell(a)
	cb, _ := d.CreateCell(b)
	cc, _ := d.CreateCell(c)
	ca.Set(Mixed(Watch{}, b))
	cb.Set(Mixed(Ramp{Amount: 0.5}, c, a))
	cc.Set(Terminal(color.RGB(1, 2, 3)))

	if _, err := d.Color(a); !errors.Is(err, ErrCyclicDependency) {
		t.Fatalf("expected ErrCyclicDependency, got %v", err)
	}
	if got, err := d.Color(c); err != nil || got != color.RGB(1, 2, 3) {
		t.Fatalf("acyclic cell should still resolve, got %v %v", got, err)
	}
}

func TestResolveDiamondIsNotCyclic(t *testing.T) {
	d := NewData(address.Full)
	base, left, right, top := address.New(0, 0, 0), address.New(0, 0, 1), address.New(0, 0, 2), address.New(0, 0, 3)
	cb, _ := d.CreateCell(base)
	cl, _ := d.CreateCell(left)
	cr, _ := d.CreateCell(right)
	ct, _ := d.CreateCell(top)
	cb.Set(Terminal(color.RGB(100, 100, 100)))
	cl.Set(Mixed(Watch{}, base))
	cr.Set(Mixed(Watch{}, base))
	ct.Set(Mixed(Ramp{Amount: 0.5}, left, right))

	got, err := d.Color(top)
	if err != nil {
		t.Fatalf("diamond: %v", err)
	}
	if got != color.RGB(100, 100, 100) {
		t.Fatalf("got %s", got)
	}
}

func TestResolveDanglingSource(t *testing.T) {
	d := NewData(address.Full)
	a := address.New(0, 0, 0)
	c, _ := d.CreateCell(a)
	c.Set(Mixed(Watch{}, address.New(0, 0, 9)))
	if _, err := d.Color(a); !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
	if _, err := d.Color(address.New(1, 1, 1)); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestSlotsAscending(t *testing.T) {
	d := NewData(address.Full)
	for _, a := range []address.Address{address.New(1, 0, 0), address.New(0, 5, 0), address.New(0, 0, 7)} {
		c, _ := d.CreateCell(a)
		c.Set(Terminal(color.RGB(a.Column, a.Line, uint8(a.Page))))
	}
	slots := d.Slots()
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Address.Less(slots[i].Address) {
			t.Fatalf("slots not ascending")
		}
	}
	if slots[0].Color != color.RGB(7, 0, 0) || slots[0].Err != nil {
		t.Fatalf("unexpected first slot %+v", slots[0])
	}
}
