package palette

import (
	"fmt"

	"tableflip.dev/rampeditor/pkg/address"
)

// Snapshot is the serializable state of a palette: its cells and both
// history stacks.
type Snapshot struct {
	Name   string         `json:"name"`
	Bounds address.Bounds `json:"bounds"`
	Cells  []CellRecord   `json:"cells"`
	Undo   []EntryRecord  `json:"undo,omitempty"`
	Redo   []EntryRecord  `json:"redo,omitempty"`
}

// CellRecord is one occupied cell.
type CellRecord struct {
	Address address.Address `json:"address"`
	Expression
}

// EntryRecord is one history entry.
type EntryRecord struct {
	Info OperationInfo   `json:"info"`
	Undo OperationRecord `json:"undo"`
}

// Operation record types.
const (
	RecordUndo     = "undo"
	RecordSequence = "sequence"
)

// OperationRecord encodes the inverse operations history can hold: an Undo,
// or a Sequence of further records.
type OperationRecord struct {
	Type  string            `json:"type"`
	Info  OperationInfo     `json:"info"`
	Saved []SavedRecord     `json:"saved,omitempty"`
	Steps []OperationRecord `json:"steps,omitempty"`
}

// SavedRecord is one address of an Undo. A nil Expression means the cell
// is removed when the undo is applied.
type SavedRecord struct {
	Address    address.Address `json:"address"`
	Expression *Expression     `json:"expression"`
}

// Snapshot captures the palette state.
func (p *Palette) Snapshot() (Snapshot, error) {
	s := Snapshot{
		Name:   p.name,
		Bounds: p.data.Bounds(),
		Cells:  make([]CellRecord, 0, p.data.Len()),
	}
	for _, a := range p.data.Addresses() {
		c, _ := p.data.Cell(a)
		s.Cells = append(s.Cells, CellRecord{Address: a, Expression: Express(c.Element())})
	}
	var err error
	if s.Undo, err = encodeEntries(p.undo); err != nil {
		return Snapshot{}, err
	}
	if s.Redo, err = encodeEntries(p.redo); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Restore builds a palette from a snapshot.
func Restore(s Snapshot, opts ...Option) (*Palette, error) {
	opts = append([]Option{WithBounds(s.Bounds)}, opts...)
	p := New(s.Name, opts...)
	for _, rec := range s.Cells {
		e, err := rec.Expression.Element()
		if err != nil {
			return nil, addressError(err, rec.Address)
		}
		c, err := p.data.CreateCell(rec.Address)
		if err != nil {
			return nil, err
		}
		c.Set(e)
	}
	var err error
	if p.undo, err = decodeEntries(s.Undo); err != nil {
		return nil, err
	}
	if p.redo, err = decodeEntries(s.Redo); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeEntries(entries []HistoryEntry) ([]EntryRecord, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]EntryRecord, len(entries))
	for i, e := range entries {
		rec, err := encodeOperation(e.Undo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Info.Name, err)
		}
		out[i] = EntryRecord{Info: e.Info, Undo: rec}
	}
	return out, nil
}

func decodeEntries(records []EntryRecord) ([]HistoryEntry, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]HistoryEntry, len(records))
	for i, rec := range records {
		op, err := decodeOperation(rec.Undo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Info.Name, err)
		}
		out[i] = HistoryEntry{Info: rec.Info, Undo: op}
	}
	return out, nil
}

func encodeOperation(op Operation) (OperationRecord, error) {
	switch op := op.(type) {
	case *Undo:
		rec := OperationRecord{Type: RecordUndo, Info: op.info}
		for _, a := range op.addresses() {
			var saved *Expression
			if e := op.saved[a]; e != nil {
				cp := *e
				saved = &cp
			}
			rec.Saved = append(rec.Saved, SavedRecord{Address: a, Expression: saved})
		}
		return rec, nil
	case *Sequence:
		rec := OperationRecord{Type: RecordSequence, Info: OperationInfo{Name: op.Name}}
		for _, step := range op.Operations {
			sub, err := encodeOperation(step)
			if err != nil {
				return OperationRecord{}, err
			}
			rec.Steps = append(rec.Steps, sub)
		}
		return rec, nil
	}
	return OperationRecord{}, fmt.Errorf("%w: %T", ErrNotPersistable, op)
}

func decodeOperation(rec OperationRecord) (Operation, error) {
	switch rec.Type {
	case RecordUndo:
		u := &Undo{info: rec.Info, saved: make(map[address.Address]*Expression, len(rec.Saved))}
		for _, s := range rec.Saved {
			u.saved[s.Address] = s.Expression
		}
		return u, nil
	case RecordSequence:
		seq := &Sequence{Name: rec.Info.Name}
		for _, step := range rec.Steps {
			op, err := decodeOperation(step)
			if err != nil {
				return nil, err
			}
			seq.Operations = append(seq.Operations, op)
		}
		return seq, nil
	}
	return nil, fmt.Errorf("%w: record type %q", ErrNotPersistable, rec.Type)
}
