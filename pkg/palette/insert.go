package palette

import (
	"fmt"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

// InsertColor places a terminal color at Location, or at the first free
// address when Location is nil.
type InsertColor struct {
	Color     color.Color
	Location  *address.Address
	Overwrite bool
}

func (op *InsertColor) Info() OperationInfo {
	return OperationInfo{
		Name:    "Insert Color",
		Details: fmt.Sprintf("%s at %s", op.Color.Hex(), describeLocation(op.Location)),
	}
}

func (op *InsertColor) Apply(d *Data) (HistoryEntry, error) {
	target, err := targetFor(d, op.Location, op.Overwrite, nil)
	if err != nil {
		return HistoryEntry{}, err
	}
	undo := NewUndo(op.Info())
	if err := setTarget(d, target, Terminal(op.Color), undo); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// RemoveElement deletes the cell at Location.
type RemoveElement struct {
	Location address.Address
}

func (op *RemoveElement) Info() OperationInfo {
	return OperationInfo{Name: "Remove Element", Details: op.Location.Hex()}
}

func (op *RemoveElement) Apply(d *Data) (HistoryEntry, error) {
	prev, err := d.RemoveCell(op.Location)
	if err != nil {
		return HistoryEntry{}, err
	}
	undo := NewUndo(op.Info())
	undo.Record(op.Location, &prev)
	return HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// CopyColor duplicates the element at Source into Location, or into the
// first free address after Source when Location is nil. With Resolve set the
// copy is a terminal color holding the source's current resolved value
// instead of a second reference to the same sources.
type CopyColor struct {
	Source    address.Address
	Location  *address.Address
	Overwrite bool
	Resolve   bool
}

func (op *CopyColor) Info() OperationInfo {
	mode := "element"
	if op.Resolve {
		mode = "resolved"
	}
	return OperationInfo{
		Name:    "Copy Color",
		Details: fmt.Sprintf("%s %s to %s", mode, op.Source.Hex(), describeLocation(op.Location)),
	}
}

func (op *CopyColor) Apply(d *Data) (HistoryEntry, error) {
	src, ok := d.Cell(op.Source)
	if !ok {
		return HistoryEntry{}, addressError(ErrMissingSource, op.Source)
	}
	element := src.Element()
	if op.Resolve {
		c, err := d.Color(op.Source)
		if err != nil {
			return HistoryEntry{}, err
		}
		element = Terminal(c)
	} else {
		element.Sources = cloneAddresses(element.Sources)
	}

	var target address.Address
	if op.Location != nil {
		if _, occupied := d.Cell(*op.Location); occupied && !op.Overwrite {
			return HistoryEntry{}, addressError(ErrSlotOccupied, *op.Location)
		}
		target = *op.Location
	} else {
		free, err := d.FirstFreeAddressAfter(op.Source)
		if err != nil {
			return HistoryEntry{}, err
		}
		target = free
	}

	undo := NewUndo(op.Info())
	if err := setTarget(d, target, element, undo); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// InsertWatcher places an order one element tracking Source. The watcher
// never writes to its source; it resolves to whatever the source resolves
// to at query time.
type InsertWatcher struct {
	Source     address.Address
	Location   *address.Address
	Overwrite  bool
	MakeSource bool
}

func (op *InsertWatcher) Info() OperationInfo {
	return OperationInfo{
		Name:    "Insert Watcher",
		Details: fmt.Sprintf("%s watching %s", describeLocation(op.Location), op.Source.Hex()),
	}
}

func (op *InsertWatcher) Apply(d *Data) (HistoryEntry, error) {
	target, err := targetFor(d, op.Location, op.Overwrite, op.Source.Selection())
	if err != nil {
		return HistoryEntry{}, err
	}
	undo := NewUndo(op.Info())
	if err := getSource(d, op.Source, op.MakeSource, undo); err != nil {
		return HistoryEntry{}, err
	}
	if err := setTarget(d, target, Mixed(Watch{}, op.Source), undo); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{Info: op.Info(), Undo: undo}, nil
}
