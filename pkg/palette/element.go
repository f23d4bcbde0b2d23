package palette

import (
	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

// Mixer computes a color from the resolved colors of an element's sources.
// Mix is only called with exactly Order() colors. The set of mixers is closed
// so every element can be expressed for undo and persistence.
type Mixer interface {
	Mix(colors []color.Color) color.Color
	Order() int
	expression(sources []address.Address) Expression
}

// Ramp is a second order mixer returning the linear interpolation of its
// sources at Amount.
type Ramp struct {
	Amount float64
}

func (r Ramp) Mix(colors []color.Color) color.Color {
	return color.Lerp(colors[0], colors[1], r.Amount)
}

func (Ramp) Order() int { return 2 }

func (r Ramp) expression(sources []address.Address) Expression {
	return Expression{Kind: KindRamp, Amount: r.Amount, Sources: cloneAddresses(sources)}
}

// Watch is a first order mixer passing its source color through unchanged.
type Watch struct{}

func (Watch) Mix(colors []color.Color) color.Color {
	return colors[0]
}

func (Watch) Order() int { return 1 }

func (Watch) expression(sources []address.Address) Expression {
	return Expression{Kind: KindWatch, Sources: cloneAddresses(sources)}
}

// Element is the value held by a cell: either a terminal color (nil Mixer)
// or a mixer over other cells. Sources are addresses looked up in the store
// on every resolution, never live references.
type Element struct {
	Color   color.Color
	Mixer   Mixer
	Sources []address.Address
}

// Terminal returns an order zero element.
func Terminal(c color.Color) Element {
	return Element{Color: c}
}

// Mixed returns an element computed by m from the given sources.
func Mixed(m Mixer, sources ...address.Address) Element {
	return Element{Mixer: m, Sources: cloneAddresses(sources)}
}

// Order is the number of sources the element depends on.
func (e Element) Order() int {
	if e.Mixer == nil {
		return 0
	}
	return len(e.Sources)
}

// IsTerminal reports whether the element is a plain color.
func (e Element) IsTerminal() bool {
	return e.Mixer == nil
}

// Cell is a slot in the store holding one element.
type Cell struct {
	address address.Address
	element Element
}

// Address returns the cell's address.
func (c *Cell) Address() address.Address {
	return c.address
}

// Element returns the cell's current element.
func (c *Cell) Element() Element {
	return c.element
}

// Set replaces the cell's element and returns the previous one.
func (c *Cell) Set(e Element) Element {
	prev := c.element
	c.element = e
	return prev
}

func cloneAddresses(in []address.Address) []address.Address {
	if len(in) == 0 {
		return nil
	}
	out := make([]address.Address, len(in))
	copy(out, in)
	return out
}
