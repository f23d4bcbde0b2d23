package address

import (
	"fmt"
	"strconv"
	"strings"
)

// GroupKind tags the region a Group covers.
type GroupKind int

const (
	// KindAll covers every address.
	KindAll GroupKind = iota
	// KindPage covers a single page.
	KindPage
	// KindLine covers a single line of a page.
	KindLine
)

// Group is a named region of addresses: a line, a page, or everything.
type Group struct {
	Kind GroupKind
	Page uint16
	Line uint8
}

// LineGroup returns the group of a single line.
func LineGroup(page uint16, line uint8) Group {
	return Group{Kind: KindLine, Page: page, Line: line}
}

// PageGroup returns the group of a single page.
func PageGroup(page uint16) Group {
	return Group{Kind: KindPage, Page: page}
}

// AllGroup returns the group of the whole address space.
func AllGroup() Group {
	return Group{Kind: KindAll}
}

// BaseAddress returns the first address located within the group.
func (g Group) BaseAddress() Address {
	switch g.Kind {
	case KindLine:
		return New(g.Page, g.Line, 0)
	case KindPage:
		return New(g.Page, 0, 0)
	default:
		return Address{}
	}
}

// Contains reports whether the address is inside the group.
func (g Group) Contains(a Address) bool {
	switch g.Kind {
	case KindLine:
		return a.Page == g.Page && a.Line == g.Line
	case KindPage:
		return a.Page == g.Page
	default:
		return true
	}
}

// Selection converts the group to intervals covering exactly its region.
// Line and page groups are half open up to the next group's base address;
// groups at the top edge of the space use a closed interval instead.
func (g Group) Selection() Selection {
	switch g.Kind {
	case KindLine:
		base := g.BaseAddress()
		if g.Line < MaxLines-1 {
			return Selection{RightOpen(base, New(g.Page, g.Line+1, 0))}
		}
		if g.Page < MaxPages-1 {
			return Selection{RightOpen(base, New(g.Page+1, 0, 0))}
		}
		return Selection{Closed(base, Max())}
	case KindPage:
		base := g.BaseAddress()
		if g.Page < MaxPages-1 {
			return Selection{RightOpen(base, New(g.Page+1, 0, 0))}
		}
		return Selection{Closed(base, Max())}
	default:
		return Selection{Closed(Address{}, Max())}
	}
}

func (g Group) String() string {
	switch g.Kind {
	case KindLine:
		return fmt.Sprintf("%d:%d:*", g.Page, g.Line)
	case KindPage:
		return fmt.Sprintf("%d:*:*", g.Page)
	default:
		return "*:*:*"
	}
}

// Hex renders the group with zero padded hex fields.
func (g Group) Hex() string {
	switch g.Kind {
	case KindLine:
		return fmt.Sprintf("%02X:%02X:*", g.Page, g.Line)
	case KindPage:
		return fmt.Sprintf("%02X:*:*", g.Page)
	default:
		return "*:*:*"
	}
}

// ParseGroup reads a group in its hex display form: "PP:LL:*", "PP:*:*" or
// "*:*:*". A bare "*" is accepted for the whole space.
func ParseGroup(s string) (Group, error) {
	s = strings.TrimSpace(s)
	if s == "*" || s == "*:*:*" {
		return AllGroup(), nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[2] != "*" {
		return Group{}, fmt.Errorf("%w: group %q", ErrInvalidAddress, s)
	}
	page, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return Group{}, fmt.Errorf("%w: group %q: %v", ErrInvalidAddress, s, err)
	}
	if parts[1] == "*" {
		return PageGroup(uint16(page)), nil
	}
	line, err := strconv.ParseUint(parts[1], 16, 8)
	if err != nil {
		return Group{}, fmt.Errorf("%w: group %q: %v", ErrInvalidAddress, s, err)
	}
	return LineGroup(uint16(page), uint8(line)), nil
}
