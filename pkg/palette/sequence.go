package palette

import (
	"fmt"
	"strings"
)

// Sequence applies operations in order. Its undo applies the collected
// sub-undos in reverse order. A failing step aborts the sequence; steps
// already applied are not rolled back.
type Sequence struct {
	Name       string
	Operations []Operation
}

func (s *Sequence) Info() OperationInfo {
	name := s.Name
	if name == "" {
		name = "Sequence"
	}
	names := make([]string, len(s.Operations))
	for i, op := range s.Operations {
		names[i] = op.Info().Name
	}
	return OperationInfo{Name: name, Details: strings.Join(names, ", ")}
}

func (s *Sequence) Apply(d *Data) (HistoryEntry, error) {
	undos, err := applyAll(d, s.Operations)
	if err != nil {
		return HistoryEntry{}, err
	}
	info := s.Info()
	return HistoryEntry{
		Info: info,
		Undo: &Sequence{Name: invertName(info.Name), Operations: undos},
	}, nil
}

// Repeat applies Operation Count times, composing undos like Sequence.
type Repeat struct {
	Operation Operation
	Count     int
}

func (r *Repeat) Info() OperationInfo {
	return OperationInfo{
		Name:    "Repeat",
		Details: fmt.Sprintf("%s x%d", r.Operation.Info().Name, r.Count),
	}
}

func (r *Repeat) Apply(d *Data) (HistoryEntry, error) {
	ops := make([]Operation, 0, max(r.Count, 0))
	for i := 0; i < r.Count; i++ {
		ops = append(ops, r.Operation)
	}
	undos, err := applyAll(d, ops)
	if err != nil {
		return HistoryEntry{}, err
	}
	info := r.Info()
	return HistoryEntry{
		Info: info,
		Undo: &Sequence{Name: invertName(info.Name), Operations: undos},
	}, nil
}

// applyAll applies ops in order and returns their undos reversed.
func applyAll(d *Data, ops []Operation) ([]Operation, error) {
	undos := make([]Operation, len(ops))
	for i, op := range ops {
		entry, err := op.Apply(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Info().Name, err)
		}
		undos[len(ops)-1-i] = entry.Undo
	}
	return undos, nil
}
