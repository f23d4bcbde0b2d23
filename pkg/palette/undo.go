package palette

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/rampeditor/pkg/address"
)

// Undo restores a saved set of expressions.
//
// Only the first record per address is kept, so an operation that creates
// and then modifies a cell still deletes it on undo instead of restoring the
// intermediate value.
type Undo struct {
	info  OperationInfo
	saved map[address.Address]*Expression
}

// NewUndo returns an empty Undo reversing the described operation.
func NewUndo(undoing OperationInfo) *Undo {
	return &Undo{
		info:  OperationInfo{Name: invertName(undoing.Name), Details: undoing.Details},
		saved: make(map[address.Address]*Expression),
	}
}

// Record saves the state of a before a change. A nil expression means the
// cell did not exist and must be removed when the Undo is applied.
func (u *Undo) Record(a address.Address, e *Expression) {
	if _, ok := u.saved[a]; ok {
		return
	}
	u.saved[a] = e
}

// Saved returns the recorded state of a.
func (u *Undo) Saved(a address.Address) (*Expression, bool) {
	e, ok := u.saved[a]
	return e, ok
}

// Len returns the number of recorded addresses.
func (u *Undo) Len() int {
	return len(u.saved)
}

func (u *Undo) addresses() []address.Address {
	out := make([]address.Address, 0, len(u.saved))
	for a := range u.saved {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (u *Undo) Info() OperationInfo {
	return u.info
}

// Apply restores every saved expression and records the replaced state in
// the returned entry's Undo, which acts as the redo.
//
// Apply panics if an address recorded as empty has no cell: that can only
// happen when record keeping itself is corrupt.
func (u *Undo) Apply(d *Data) (HistoryEntry, error) {
	redo := &Undo{
		info:  OperationInfo{Name: invertName(u.info.Name), Details: u.info.Details},
		saved: make(map[address.Address]*Expression, len(u.saved)),
	}

	addrs := u.addresses()
	elements := make(map[address.Address]Element, len(addrs))
	for _, a := range addrs {
		if saved := u.saved[a]; saved != nil {
			e, err := saved.Element()
			if err != nil {
				return HistoryEntry{}, addressError(err, a)
			}
			elements[a] = e
		}
	}

	for _, a := range addrs {
		saved := u.saved[a]
		cell, exists := d.Cell(a)
		switch {
		case saved != nil && exists:
			prev := Express(cell.Set(elements[a]))
			redo.Record(a, &prev)
		case saved != nil && !exists:
			created, err := d.CreateCell(a)
			if err != nil {
				return HistoryEntry{}, err
			}
			created.Set(elements[a])
			redo.Record(a, nil)
		case saved == nil && exists:
			prev, err := d.RemoveCell(a)
			if err != nil {
				return HistoryEntry{}, err
			}
			redo.Record(a, &prev)
		default:
			panic(fmt.Sprintf("palette: invalid undo state: %X recorded as empty but holds no cell", a))
		}
	}

	return HistoryEntry{Info: u.Info(), Undo: redo}, nil
}

func (u *Undo) String() string {
	var b strings.Builder
	b.WriteString(u.info.String())
	for _, a := range u.addresses() {
		if e := u.saved[a]; e != nil {
			fmt.Fprintf(&b, "\n  %s <- %s", a.Hex(), e)
		} else {
			fmt.Fprintf(&b, "\n  %s <- empty", a.Hex())
		}
	}
	return b.String()
}
