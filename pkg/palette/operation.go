package palette

import (
	"fmt"
	"strings"

	"tableflip.dev/rampeditor/pkg/address"
)

// OperationInfo describes an operation for history listings.
type OperationInfo struct {
	Name    string `json:"name"`
	Details string `json:"details,omitempty"`
}

func (i OperationInfo) String() string {
	if i.Details == "" {
		return i.Name
	}
	return fmt.Sprintf("%s (%s)", i.Name, i.Details)
}

// Operation is a reversible mutation of the store. Apply either succeeds and
// returns an entry whose Undo reverses every change it made, or fails with
// the first error encountered. Cells changed before the failure stay
// changed; callers needing atomicity must snapshot first.
type Operation interface {
	Info() OperationInfo
	Apply(d *Data) (HistoryEntry, error)
}

// HistoryEntry pairs a description of an applied operation with the
// operation that reverses it. Applying Undo yields a further entry whose
// Undo is the redo.
type HistoryEntry struct {
	Info OperationInfo
	Undo Operation
}

// invertName maps "X" to "Undo X", and flips between "Undo X" and "Redo X".
func invertName(name string) string {
	if rest, ok := strings.CutPrefix(name, "Undo "); ok {
		return "Redo " + rest
	}
	if rest, ok := strings.CutPrefix(name, "Redo "); ok {
		return "Undo " + rest
	}
	return "Undo " + name
}

func describeLocation(loc *address.Address) string {
	if loc == nil {
		return "first free"
	}
	return loc.Hex()
}

// targetFor picks where a single new element goes: the explicit location if
// given, otherwise the first free address outside exclude.
func targetFor(d *Data, loc *address.Address, overwrite bool, exclude address.Selection) (address.Address, error) {
	if loc == nil {
		if len(exclude) == 0 {
			return d.FirstFreeAddressAfter(address.Address{})
		}
		targets, err := d.FindTargets(1, address.Address{}, false, exclude)
		if err != nil {
			return address.Address{}, err
		}
		return targets[0], nil
	}
	if exclude.Contains(*loc) {
		return address.Address{}, addressError(ErrCyclicDependency, *loc)
	}
	if _, occupied := d.Cell(*loc); occupied && !overwrite {
		return address.Address{}, addressError(ErrSlotOccupied, *loc)
	}
	return *loc, nil
}

// getSource ensures a source cell exists at a, creating a black placeholder
// when makeSource is set.
func getSource(d *Data, a address.Address, makeSource bool, undo *Undo) error {
	if _, ok := d.Cell(a); ok {
		return nil
	}
	if !makeSource {
		return addressError(ErrMissingSource, a)
	}
	if _, err := d.CreateCell(a); err != nil {
		return err
	}
	undo.Record(a, nil)
	return nil
}

// setTarget stores e at a, creating the cell if needed, and records the
// prior state.
func setTarget(d *Data, a address.Address, e Element, undo *Undo) error {
	if c, ok := d.Cell(a); ok {
		prev := Express(c.Set(e))
		undo.Record(a, &prev)
		return nil
	}
	c, err := d.CreateCell(a)
	if err != nil {
		return err
	}
	c.Set(e)
	undo.Record(a, nil)
	return nil
}
