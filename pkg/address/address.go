// Package address identifies and groups palette slots in a page:line:column
// coordinate space.
package address

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxPages is the number of pages in the full address space.
	MaxPages = 1 << 16
	// MaxLines is the number of lines on a page.
	MaxLines = 1 << 8
	// MaxColumns is the number of columns on a line.
	MaxColumns = 1 << 8
)

// ErrInvalidAddress is returned when an address or group cannot be parsed.
var ErrInvalidAddress = errors.New("address: invalid address")

// Address names a single palette slot.
type Address struct {
	Page   uint16 `json:"page"`
	Line   uint8  `json:"line"`
	Column uint8  `json:"column"`
}

// New creates an Address.
func New(page uint16, line, column uint8) Address {
	return Address{Page: page, Line: line, Column: column}
}

// Max is the last address of the full address space.
func Max() Address {
	return Address{Page: MaxPages - 1, Line: MaxLines - 1, Column: MaxColumns - 1}
}

// Compare orders addresses by page, then line, then column.
func (a Address) Compare(b Address) int {
	switch {
	case a.Page != b.Page:
		return cmp3(int(a.Page), int(b.Page))
	case a.Line != b.Line:
		return cmp3(int(a.Line), int(b.Line))
	default:
		return cmp3(int(a.Column), int(b.Column))
	}
}

// Less reports whether a sorts before b.
func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}

func cmp3(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// WrappedNext returns the address after a, wrapping the column into the line
// and the line into the page within the given bounds. The page wraps back to
// zero when it reaches the page bound.
func (a Address) WrappedNext(b Bounds) Address {
	b = b.Normalize()
	next := a

	column := int(a.Column) + 1
	if column < b.Columns {
		next.Column = uint8(column)
		return next
	}
	next.Column = 0

	line := int(a.Line) + 1
	if line < b.Lines {
		next.Line = uint8(line)
		return next
	}
	next.Line = 0

	page := int(a.Page) + 1
	if page >= b.Pages {
		page = 0
	}
	next.Page = uint16(page)
	return next
}

// PageGroup returns the page group containing the address.
func (a Address) PageGroup() Group {
	return PageGroup(a.Page)
}

// LineGroup returns the line group containing the address.
func (a Address) LineGroup() Group {
	return LineGroup(a.Page, a.Line)
}

// Selection returns a selection holding only this address.
func (a Address) Selection() Selection {
	return Selection{Closed(a, a)}
}

func (a Address) String() string {
	return fmt.Sprintf("%d:%d:%d", a.Page, a.Line, a.Column)
}

// Hex renders the address as upper case, zero padded hex fields.
func (a Address) Hex() string {
	return fmt.Sprintf("%02X:%02X:%02X", a.Page, a.Line, a.Column)
}

// Format implements fmt.Formatter so %x and %X print hex fields.
func (a Address) Format(f fmt.State, verb rune) {
	switch verb {
	case 'X':
		_, _ = fmt.Fprint(f, a.Hex())
	case 'x':
		_, _ = fmt.Fprintf(f, "%02x:%02x:%02x", a.Page, a.Line, a.Column)
	default:
		_, _ = fmt.Fprint(f, a.String())
	}
}

// Parse reads an address in the hex display form, e.g. "00:01:0A".
func Parse(s string) (Address, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	page, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: page: %v", ErrInvalidAddress, s, err)
	}
	line, err := strconv.ParseUint(parts[1], 16, 8)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: line: %v", ErrInvalidAddress, s, err)
	}
	column, err := strconv.ParseUint(parts[2], 16, 8)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: column: %v", ErrInvalidAddress, s, err)
	}
	return New(uint16(page), uint8(line), uint8(column)), nil
}

// Bounds limits the address space a palette wraps within. A zero or
// out-of-range field means the full width of that field.
type Bounds struct {
	Pages   int `json:"pages" mapstructure:"pages"`
	Lines   int `json:"lines" mapstructure:"lines"`
	Columns int `json:"columns" mapstructure:"columns"`
}

// Full is the unrestricted address space.
var Full = Bounds{Pages: MaxPages, Lines: MaxLines, Columns: MaxColumns}

// Normalize replaces zero and out-of-range fields with their maximum.
func (b Bounds) Normalize() Bounds {
	if b.Pages <= 0 || b.Pages > MaxPages {
		b.Pages = MaxPages
	}
	if b.Lines <= 0 || b.Lines > MaxLines {
		b.Lines = MaxLines
	}
	if b.Columns <= 0 || b.Columns > MaxColumns {
		b.Columns = MaxColumns
	}
	return b
}

// Size is the number of addresses inside the bounds.
func (b Bounds) Size() int {
	b = b.Normalize()
	return b.Pages * b.Lines * b.Columns
}

// Contains reports whether a lies inside the bounds.
func (b Bounds) Contains(a Address) bool {
	b = b.Normalize()
	return int(a.Page) < b.Pages && int(a.Line) < b.Lines && int(a.Column) < b.Columns
}

func (b Bounds) String() string {
	b = b.Normalize()
	return fmt.Sprintf("%dx%dx%d", b.Pages, b.Lines, b.Columns)
}
