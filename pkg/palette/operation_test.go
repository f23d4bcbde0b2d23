package palette

import (
	"errors"
	"strings"
	"testing"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

func TestInsertRampExample(t *testing.T) {
	d := seeded(t, color.RGB(0, 0, 0), color.RGB(150, 100, 50))

	mustApply(t, d, &InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 0, 1), Count: 5})

	if d.Len() != 7 {
		t.Fatalf("expected 7 cells, got %d", d.Len())
	}
	got, err := d.Color(address.New(0, 0, 4))
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if got != color.RGB(75, 50, 25) {
		t.Fatalf("0:0:4 resolved to %s, want (75,50,25)", got)
	}
	for i, col := range []uint8{2, 3, 4, 5, 6} {
		c, _ := d.Cell(address.New(0, 0, col))
		ramp, ok := c.Element().Mixer.(Ramp)
		if !ok {
			t.Fatalf("0:0:%d is not a ramp element", col)
		}
		if want := float64(i+1) / 6; ramp.Amount < want-1e-9 || ramp.Amount > want+1e-9 {
			t.Fatalf("target %d amount %v, want %v", i, ramp.Amount, want)
		}
	}
}

func TestInsertRampTracksSourceChanges(t *testing.T) {
	d := seeded(t, color.RGB(0, 0, 0), color.RGB(200, 200, 200))
	mustApply(t, d, &InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 0, 1), Count: 1})

	mustApply(t, d, &InsertColor{Color: color.RGB(100, 0, 0), Location: at(0, 0, 0), Overwrite: true})
	got, err := d.Color(address.New(0, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if got != color.RGB(150, 100, 100) {
		t.Fatalf("ramp did not follow its source, got %s", got)
	}
}

func TestInsertRampMakeSources(t *testing.T) {
	d := NewData(address.Bounds{Pages: 1, Lines: 1, Columns: 16})
	from, to := address.New(0, 0, 0), address.New(0, 0, 5)
	before := observe(t, d)

	_, err := (&InsertRamp{From: from, To: to, Count: 3}).Apply(d)
	if !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
	if d.Len() != 0 {
		t.Fatalf("nothing should be created before the source check, got %d cells", d.Len())
	}

	entry := mustApply(t, d, &InsertRamp{From: from, To: to, Count: 3, MakeSources: true})
	if d.Len() != 5 {
		t.Fatalf("expected 2 sources and 3 targets, got %d", d.Len())
	}
	for _, col := range []uint8{1, 2, 3} {
		if c, ok := d.Cell(address.New(0, 0, col)); !ok || c.Element().IsTerminal() {
			t.Fatalf("expected ramp element at 0:0:%d", col)
		}
	}
	if _, err := entry.Undo.Apply(d); err != nil {
		t.Fatalf("undo: %v", err)
	}
	assertSameStore(t, before, observe(t, d))
}

func TestInsertRampOverwriteAndExclusion(t *testing.T) {
	d := seeded(t, color.RGB(0, 0, 0), color.RGB(10, 10, 10), color.RGB(20, 20, 20))
	entry := mustApply(t, d, &InsertRamp{
		From:      address.New(0, 0, 0),
		To:        address.New(0, 0, 2),
		Count:     2,
		Location:  at(0, 0, 0),
		Overwrite: true,
	})
	// 0:0:0 and 0:0:2 are sources, so the targets are 0:0:1 and 0:0:3.
	if c, _ := d.Cell(address.New(0, 0, 0)); !c.Element().IsTerminal() {
		t.Fatalf("source was overwritten")
	}
	if c, _ := d.Cell(address.New(0, 0, 1)); c.Element().IsTerminal() {
		t.Fatalf("0:0:1 should have been overwritten")
	}
	u := entry.Undo.(*Undo)
	if saved, ok := u.Saved(address.New(0, 0, 1)); !ok || saved == nil || *saved.Color != color.RGB(10, 10, 10) {
		t.Fatalf("overwritten value not recorded: %v", saved)
	}
	if saved, ok := u.Saved(address.New(0, 0, 3)); !ok || saved != nil {
		t.Fatalf("created target should be recorded as empty")
	}
}

func TestInsertColor(t *testing.T) {
	d := NewData(address.Full)
	mustApply(t, d, &InsertColor{Color: color.RGB(1, 1, 1)})
	mustApply(t, d, &InsertColor{Color: color.RGB(2, 2, 2)})
	if got, _ := d.Color(address.New(0, 0, 1)); got != color.RGB(2, 2, 2) {
		t.Fatalf("second insert should land on first free address, got %s", got)
	}

	_, err := (&InsertColor{Color: color.RGB(3, 3, 3), Location: at(0, 0, 0)}).Apply(d)
	if !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	mustApply(t, d, &InsertColor{Color: color.RGB(3, 3, 3), Location: at(0, 0, 0), Overwrite: true})
	if got, _ := d.Color(address.New(0, 0, 0)); got != color.RGB(3, 3, 3) {
		t.Fatalf("overwrite failed, got %s", got)
	}
}

func TestRemoveElement(t *testing.T) {
	d := seeded(t, color.RGB(9, 9, 9))
	if _, err := (&RemoveElement{Location: address.New(0, 0, 5)}).Apply(d); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
	mustApply(t, d, &RemoveElement{Location: address.New(0, 0, 0)})
	if d.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestCopyColor(t *testing.T) {
	d := seeded(t, color.RGB(0, 0, 0), color.RGB(100, 100, 100))
	mustApply(t, d, &InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 0, 1), Count: 1})

	mustApply(t, d, &CopyColor{Source: address.New(0, 0, 2), Location: at(0, 1, 0)})
	mustApply(t, d, &CopyColor{Source: address.New(0, 0, 2), Location: at(0, 1, 1), Resolve: true})

	element, _ := d.Cell(address.New(0, 1, 0))
	if element.Element().IsTerminal() {
		t.Fatalf("element copy should keep the mixer")
	}
	resolved, _ := d.Cell(address.New(0, 1, 1))
	if !resolved.Element().IsTerminal() || resolved.Element().Color != color.RGB(50, 50, 50) {
		t.Fatalf("resolved copy should be a terminal color, got %v", Express(resolved.Element()))
	}

	mustApply(t, d, &InsertColor{Color: color.RGB(200, 200, 200), Location: at(0, 0, 1), Overwrite: true})
	if got, _ := d.Color(address.New(0, 1, 0)); got != color.RGB(100, 100, 100) {
		t.Fatalf("element copy should follow sources, got %s", got)
	}
	if got, _ := d.Color(address.New(0, 1, 1)); got != color.RGB(50, 50, 50) {
		t.Fatalf("resolved copy should not follow sources, got %s", got)
	}

	mustApply(t, d, &CopyColor{Source: address.New(0, 0, 0)})
	if _, ok := d.Cell(address.New(0, 0, 3)); !ok {
		t.Fatalf("copy without location should land after the source")
	}
	if _, err := (&CopyColor{Source: address.New(1, 0, 0)}).Apply(d); !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
	if _, err := (&CopyColor{Source: address.New(0, 0, 0), Location: at(0, 0, 1)}).Apply(d); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
}

func TestInsertWatcher(t *testing.T) {
	d := seeded(t, color.RGB(5, 6, 7))
	mustApply(t, d, &InsertWatcher{Source: address.New(0, 0, 0)})

	w, ok := d.Cell(address.New(0, 0, 1))
	if !ok || w.Element().Order() != 1 {
		t.Fatalf("expected an order one watcher at 0:0:1")
	}
	mustApply(t, d, &InsertColor{Color: color.RGB(8, 8, 8), Location: at(0, 0, 0), Overwrite: true})
	if got, _ := d.Color(address.New(0, 0, 1)); got != color.RGB(8, 8, 8) {
		t.Fatalf("watcher did not track its source, got %s", got)
	}
	if got, _ := d.Color(address.New(0, 0, 0)); got != color.RGB(8, 8, 8) {
		t.Fatalf("watcher must not change its source, got %s", got)
	}

	_, err := (&InsertWatcher{Source: address.New(0, 0, 0), Location: at(0, 0, 0), Overwrite: true}).Apply(d)
	if !errors.Is(err, ErrCyclicDependency) {
		t.Fatalf("watching itself should be rejected, got %v", err)
	}

	_, err = (&InsertWatcher{Source: address.New(1, 0, 0)}).Apply(d)
	if !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
	entry := mustApply(t, d, &InsertWatcher{Source: address.New(1, 0, 0), MakeSource: true})
	if _, ok := d.Cell(address.New(1, 0, 0)); !ok {
		t.Fatalf("source placeholder not created")
	}
	if saved, ok := entry.Undo.(*Undo).Saved(address.New(1, 0, 0)); !ok || saved != nil {
		t.Fatalf("placeholder creation not recorded for undo")
	}
}

func TestSequenceUndoReversesOrder(t *testing.T) {
	d := seeded(t, color.RGB(1, 2, 3))
	before := observe(t, d)
	a := at(0, 2, 0)

	seq := &Sequence{Operations: []Operation{
		&InsertColor{Color: color.RGB(4, 5, 6), Location: a},
		&RemoveElement{Location: *a},
	}}
	entry := mustApply(t, d, seq)
	assertSameStore(t, before, observe(t, d))

	undo, ok := entry.Undo.(*Sequence)
	if !ok || len(undo.Operations) != 2 {
		t.Fatalf("expected a two step composite undo, got %T", entry.Undo)
	}
	if got := undo.Operations[0].Info().Name; got != "Undo Remove Element" {
		t.Fatalf("first undo step = %q, want the remove's undo", got)
	}

	redo := mustApply(t, d, entry.Undo)
	assertSameStore(t, before, observe(t, d))
	mustApply(t, d, redo.Undo)
	assertSameStore(t, before, observe(t, d))
}

func TestSequenceDoesNotRollBack(t *testing.T) {
	d := NewData(address.Full)
	a := at(0, 0, 0)
	seq := &Sequence{Operations: []Operation{
		&InsertColor{Color: color.RGB(1, 1, 1), Location: a},
		&InsertColor{Color: color.RGB(2, 2, 2), Location: a},
		&InsertColor{Color: color.RGB(3, 3, 3), Location: at(0, 0, 1)},
	}}
	_, err := seq.Apply(d)
	if !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	if !strings.Contains(err.Error(), "Insert Color") {
		t.Fatalf("error should name the failing step: %v", err)
	}
	if got, _ := d.Color(*a); got != color.RGB(1, 1, 1) || d.Len() != 1 {
		t.Fatalf("steps before the failure must stay applied, later ones must not run")
	}
}

func TestRepeat(t *testing.T) {
	d := NewData(address.Full)
	entry := mustApply(t, d, &Repeat{Operation: &InsertColor{Color: color.RGB(7, 7, 7)}, Count: 4})
	if d.Len() != 4 {
		t.Fatalf("expected 4 cells, got %d", d.Len())
	}
	mustApply(t, d, entry.Undo)
	if d.Len() != 0 {
		t.Fatalf("expected undo to clear all repeats, got %d", d.Len())
	}
	if _, err := (&Repeat{Operation: &RemoveElement{}, Count: 1}).Apply(d); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestUndoRoundTripAndRedo(t *testing.T) {
	ops := []func() Operation{
		func() Operation { return &InsertColor{Color: color.RGB(9, 9, 9)} },
		func() Operation { return &InsertColor{Color: color.RGB(9, 9, 9), Location: at(0, 0, 0), Overwrite: true} },
		func() Operation { return &RemoveElement{Location: address.New(0, 0, 1)} },
		func() Operation { return &CopyColor{Source: address.New(0, 0, 2), Location: at(0, 0, 0), Overwrite: true} },
		func() Operation { return &InsertWatcher{Source: address.New(0, 0, 2), MakeSource: true} },
		func() Operation {
			return &InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 3, 7), Count: 4, MakeSources: true}
		},
		func() Operation {
			return &InsertRamp{From: address.New(0, 0, 0), To: address.New(0, 0, 1), Count: 3, Location: at(0, 0, 0), Overwrite: true}
		},
		func() Operation {
			return &Sequence{Operations: []Operation{
				&InsertColor{Color: color.RGB(1, 0, 0), Location: at(1, 0, 0)},
				&InsertColor{Color: color.RGB(2, 0, 0), Location: at(1, 0, 0), Overwrite: true},
				&InsertWatcher{Source: address.New(1, 0, 0), Location: at(1, 0, 1)},
			}}
		},
		func() Operation { return &Repeat{Operation: &InsertColor{Color: color.RGB(3, 3, 3)}, Count: 3} },
	}
	for _, mk := range ops {
		op := mk()
		t.Run(op.Info().String(), func(t *testing.T) {
			d := seeded(t, color.RGB(0, 0, 0), color.RGB(150, 100, 50), color.RGB(30, 60, 90))
			before := observe(t, d)

			entry := mustApply(t, d, op)
			after := observe(t, d)

			redo := mustApply(t, d, entry.Undo)
			assertSameStore(t, before, observe(t, d))

			again := mustApply(t, d, redo.Undo)
			assertSameStore(t, after, observe(t, d))

			mustApply(t, d, again.Undo)
			assertSameStore(t, before, observe(t, d))
		})
	}
}

func TestUndoRecordFirstWins(t *testing.T) {
	u := NewUndo(OperationInfo{Name: "Test"})
	a := address.New(0, 0, 0)
	x := Express(Terminal(color.RGB(1, 1, 1)))
	y := Express(Terminal(color.RGB(2, 2, 2)))

	u.Record(a, nil)
	u.Record(a, &x)
	if saved, _ := u.Saved(a); saved != nil {
		t.Fatalf("empty record must not be overwritten")
	}

	b := address.New(0, 0, 1)
	u.Record(b, &x)
	u.Record(b, &y)
	u.Record(b, nil)
	if saved, _ := u.Saved(b); saved == nil || *saved.Color != color.RGB(1, 1, 1) {
		t.Fatalf("first record should win, got %v", saved)
	}
	if u.Len() != 2 || u.Info().Name != "Undo Test" {
		t.Fatalf("unexpected undo state: %d %q", u.Len(), u.Info().Name)
	}
}

func TestUndoCreateThenModifyDeletes(t *testing.T) {
	d := NewData(address.Full)
	a := at(0, 0, 0)
	entry := mustApply(t, d, &Sequence{Operations: []Operation{
		&InsertColor{Color: color.RGB(1, 1, 1), Location: a},
		&InsertColor{Color: color.RGB(2, 2, 2), Location: a, Overwrite: true},
	}})
	mustApply(t, d, entry.Undo)
	if d.Len() != 0 {
		t.Fatalf("undo should delete the created cell, store has %d cells", d.Len())
	}
}

func TestUndoInvalidStatePanics(t *testing.T) {
	u := NewUndo(OperationInfo{Name: "Broken"})
	u.Record(address.New(0, 0, 0), nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for an empty record over an empty slot")
		}
	}()
	_, _ = u.Apply(NewData(address.Full))
}

func TestUndoNames(t *testing.T) {
	d := NewData(address.Full)
	entry := mustApply(t, d, &InsertColor{Color: color.RGB(1, 1, 1)})
	if entry.Undo.Info().Name != "Undo Insert Color" {
		t.Fatalf("got %q", entry.Undo.Info().Name)
	}
	redo := mustApply(t, d, entry.Undo)
	if redo.Undo.Info().Name != "Redo Insert Color" {
		t.Fatalf("got %q", redo.Undo.Info().Name)
	}
	back := mustApply(t, d, redo.Undo)
	if back.Undo.Info().Name != "Undo Insert Color" {
		t.Fatalf("got %q", back.Undo.Info().Name)
	}
}
