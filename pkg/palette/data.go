package palette

import (
	"sort"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

// Data owns every cell of a palette, keyed by address. Mixed elements refer
// to their sources by address, so the store is the only owner of record and
// a cell written here is immediately visible to every element reading it.
//
// Data is not safe for concurrent use.
type Data struct {
	bounds address.Bounds
	cells  map[address.Address]*Cell
}

// NewData returns an empty store wrapping within the given bounds.
func NewData(bounds address.Bounds) *Data {
	return &Data{
		bounds: bounds.Normalize(),
		cells:  make(map[address.Address]*Cell),
	}
}

// Bounds returns the wrapping bounds used by address searches.
func (d *Data) Bounds() address.Bounds {
	return d.bounds
}

// Cell looks up the cell at a.
func (d *Data) Cell(a address.Address) (*Cell, bool) {
	c, ok := d.cells[a]
	return c, ok
}

// CreateCell adds an empty cell holding a black terminal color.
func (d *Data) CreateCell(a address.Address) (*Cell, error) {
	if _, ok := d.cells[a]; ok {
		return nil, addressError(ErrSlotOccupied, a)
	}
	c := &Cell{address: a}
	d.cells[a] = c
	return c, nil
}

// RemoveCell deletes the cell at a and returns its last expression.
func (d *Data) RemoveCell(a address.Address) (Expression, error) {
	c, ok := d.cells[a]
	if !ok {
		return Expression{}, addressError(ErrSlotEmpty, a)
	}
	delete(d.cells, a)
	return Express(c.element), nil
}

// Len returns the number of occupied cells.
func (d *Data) Len() int {
	return len(d.cells)
}

// Addresses returns every occupied address in ascending order.
func (d *Data) Addresses() []address.Address {
	out := make([]address.Address, 0, len(d.cells))
	for a := range d.cells {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// FirstFreeAddressAfter returns the first unoccupied address at or after
// start, walking the bounded space once before giving up.
func (d *Data) FirstFreeAddressAfter(start address.Address) (address.Address, error) {
	a := start
	for i, n := 0, d.bounds.Size(); i < n; i++ {
		if _, ok := d.cells[a]; !ok {
			return a, nil
		}
		a = a.WrappedNext(d.bounds)
	}
	return address.Address{}, addressError(ErrPaletteFull, start)
}

// FindTargets collects count addresses starting at start. Occupied addresses
// are skipped unless overwrite is set; excluded addresses are always
// skipped. Addresses are returned in visit order, which is ascending unless
// the walk wrapped past the end of the bounds.
func (d *Data) FindTargets(count int, start address.Address, overwrite bool, exclude address.Selection) ([]address.Address, error) {
	if count <= 0 {
		return nil, nil
	}
	targets := make([]address.Address, 0, count)
	a := start
	for i, n := 0, d.bounds.Size(); i < n && len(targets) < count; i++ {
		if !exclude.Contains(a) {
			if _, occupied := d.cells[a]; overwrite || !occupied {
				targets = append(targets, a)
			}
		}
		a = a.WrappedNext(d.bounds)
	}
	if len(targets) < count {
		return nil, addressError(ErrInsufficientSpace, start)
	}
	return targets, nil
}

// Color resolves the color of the cell at a, recursively evaluating its
// sources. Nothing is cached; every call walks the dependency graph again.
func (d *Data) Color(a address.Address) (color.Color, error) {
	if _, ok := d.cells[a]; !ok {
		return color.Color{}, addressError(ErrSlotEmpty, a)
	}
	return d.resolve(a, make(map[address.Address]struct{}))
}

func (d *Data) resolve(a address.Address, visiting map[address.Address]struct{}) (color.Color, error) {
	c, ok := d.cells[a]
	if !ok {
		return color.Color{}, addressError(ErrMissingSource, a)
	}
	e := c.element
	if e.Mixer == nil {
		return e.Color, nil
	}
	if _, busy := visiting[a]; busy {
		return color.Color{}, addressError(ErrCyclicDependency, a)
	}
	visiting[a] = struct{}{}
	defer delete(visiting, a)

	colors := make([]color.Color, len(e.Sources))
	for i, src := range e.Sources {
		resolved, err := d.resolve(src, visiting)
		if err != nil {
			return color.Color{}, err
		}
		colors[i] = resolved
	}
	return e.Mixer.Mix(colors), nil
}

// Slot pairs an occupied address with its resolved color.
type Slot struct {
	Address address.Address
	Color   color.Color
	Err     error
}

// Slots resolves every occupied cell in ascending address order.
func (d *Data) Slots() []Slot {
	addrs := d.Addresses()
	out := make([]Slot, 0, len(addrs))
	for _, a := range addrs {
		c, err := d.resolve(a, make(map[address.Address]struct{}))
		out = append(out, Slot{Address: a, Color: c, Err: err})
	}
	return out
}
