package palette

import (
	"fmt"

	"tableflip.dev/rampeditor/pkg/address"
)

// InsertRamp creates a linear RGB ramp of Count second order elements
// between the colors at From and To.
//
// Targets start at Location, or at the first free address when Location is
// nil, and never include the source addresses. The i-th target (from zero)
// mixes its sources at (i+1)/(Count+1). When MakeSources is set, missing
// sources are created as black placeholders and removed again on undo.
type InsertRamp struct {
	From        address.Address
	To          address.Address
	Count       int
	Location    *address.Address
	Overwrite   bool
	MakeSources bool
}

func (op *InsertRamp) Info() OperationInfo {
	return OperationInfo{
		Name: "Insert Ramp",
		Details: fmt.Sprintf("%d from %s to %s at %s",
			op.Count, op.From.Hex(), op.To.Hex(), describeLocation(op.Location)),
	}
}

func (op *InsertRamp) Apply(d *Data) (HistoryEntry, error) {
	start := address.Address{}
	if op.Location != nil {
		start = *op.Location
	} else {
		free, err := d.FirstFreeAddressAfter(start)
		if err != nil {
			return HistoryEntry{}, err
		}
		start = free
	}

	targets, err := d.FindTargets(op.Count, start, op.Overwrite, address.Of(op.From, op.To))
	if err != nil {
		return HistoryEntry{}, err
	}

	undo := NewUndo(op.Info())
	if err := getSource(d, op.From, op.MakeSources, undo); err != nil {
		return HistoryEntry{}, err
	}
	if err := getSource(d, op.To, op.MakeSources, undo); err != nil {
		return HistoryEntry{}, err
	}

	step := 1.0 / float64(op.Count+1)
	for i, target := range targets {
		e := Mixed(Ramp{Amount: step * float64(i+1)}, op.From, op.To)
		if err := setTarget(d, target, e, undo); err != nil {
			return HistoryEntry{}, err
		}
	}
	return HistoryEntry{Info: op.Info(), Undo: undo}, nil
}
