// Package palette stores colors in an addressed collection of cells whose
// elements may be computed lazily from other cells, and mutates it through
// reversible operations with undo and redo.
package palette

import (
	"pkt.systems/pslog"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/logging"
)

// Palette is a named store plus its undo and redo history.
type Palette struct {
	name   string
	data   *Data
	undo   []HistoryEntry
	redo   []HistoryEntry
	logger pslog.Logger
}

// Option configures a Palette.
type Option func(*Palette)

// WithBounds sets the address bounds searches wrap within.
func WithBounds(b address.Bounds) Option {
	return func(p *Palette) {
		p.data = NewData(b)
	}
}

// WithLogger sets the logger operations are reported to.
func WithLogger(logger pslog.Logger) Option {
	return func(p *Palette) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New returns an empty palette.
func New(name string, opts ...Option) *Palette {
	p := &Palette{
		name: name,
		data: NewData(address.Full),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	p.logger = p.logger.With("palette", name)
	return p
}

// Name returns the palette name.
func (p *Palette) Name() string {
	return p.name
}

// Bounds returns the address bounds of the palette.
func (p *Palette) Bounds() address.Bounds {
	return p.data.Bounds()
}

// Apply runs op against the store and pushes the resulting entry onto the
// undo stack, clearing the redo stack. On failure neither stack changes.
func (p *Palette) Apply(op Operation) (HistoryEntry, error) {
	entry, err := op.Apply(p.data)
	if err != nil {
		p.logger.Debug("operation failed", "operation", op.Info().Name, "err", err)
		return HistoryEntry{}, err
	}
	p.undo = append(p.undo, entry)
	p.redo = nil
	p.logger.Debug("operation applied", "operation", entry.Info.String(), "cells", p.data.Len())
	return entry, nil
}

// Undo reverses the most recent entry and makes it available to Redo.
func (p *Palette) Undo() (HistoryEntry, error) {
	entry, err := p.step(&p.undo, &p.redo)
	if err != nil {
		return HistoryEntry{}, err
	}
	p.logger.Debug("operation undone", "operation", entry.Info.String())
	return entry, nil
}

// Redo reapplies the most recently undone entry.
func (p *Palette) Redo() (HistoryEntry, error) {
	entry, err := p.step(&p.redo, &p.undo)
	if err != nil {
		return HistoryEntry{}, err
	}
	p.logger.Debug("operation redone", "operation", entry.Info.String())
	return entry, nil
}

// step pops from one stack, applies the entry's inverse, and pushes the
// result onto the other.
func (p *Palette) step(from, to *[]HistoryEntry) (HistoryEntry, error) {
	n := len(*from)
	if n == 0 {
		return HistoryEntry{}, ErrNoHistory
	}
	top := (*from)[n-1]
	entry, err := top.Undo.Apply(p.data)
	if err != nil {
		return HistoryEntry{}, err
	}
	*from = (*from)[:n-1]
	*to = append(*to, entry)
	return entry, nil
}

// UndoDepth returns the number of entries that can be undone.
func (p *Palette) UndoDepth() int {
	return len(p.undo)
}

// RedoDepth returns the number of entries that can be redone.
func (p *Palette) RedoDepth() int {
	return len(p.redo)
}

// History returns the undo stack, oldest first.
func (p *Palette) History() []OperationInfo {
	out := make([]OperationInfo, len(p.undo))
	for i, e := range p.undo {
		out[i] = e.Info
	}
	return out
}

// Color resolves the color at a.
func (p *Palette) Color(a address.Address) (color.Color, error) {
	return p.data.Color(a)
}

// GetColor resolves the color at a, reporting false for empty slots and
// unresolvable elements.
func (p *Palette) GetColor(a address.Address) (color.Color, bool) {
	c, err := p.data.Color(a)
	if err != nil {
		return color.Color{}, false
	}
	return c, true
}

// Expression returns the expression stored at a.
func (p *Palette) Expression(a address.Address) (Expression, bool) {
	c, ok := p.data.Cell(a)
	if !ok {
		return Expression{}, false
	}
	return Express(c.Element()), true
}

// Len returns the number of occupied cells.
func (p *Palette) Len() int {
	return p.data.Len()
}

// Addresses returns every occupied address in ascending order.
func (p *Palette) Addresses() []address.Address {
	return p.data.Addresses()
}

// Slots returns every occupied address in ascending order with its
// resolved color.
func (p *Palette) Slots() []Slot {
	return p.data.Slots()
}
