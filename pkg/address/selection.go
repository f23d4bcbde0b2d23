package address

// Interval is a closed or right-open range of addresses.
type Interval struct {
	Lower     Address `json:"lower"`
	Upper     Address `json:"upper"`
	RightOpen bool    `json:"right_open,omitempty"`
}

// Closed returns the interval [lower, upper].
func Closed(lower, upper Address) Interval {
	return Interval{Lower: lower, Upper: upper}
}

// RightOpen returns the interval [lower, upper).
func RightOpen(lower, upper Address) Interval {
	return Interval{Lower: lower, Upper: upper, RightOpen: true}
}

// Valid reports whether the bounds are ordered.
func (i Interval) Valid() bool {
	return !i.Upper.Less(i.Lower)
}

// Contains reports whether a lies within the interval.
func (i Interval) Contains(a Address) bool {
	if a.Less(i.Lower) {
		return false
	}
	if i.RightOpen {
		return a.Less(i.Upper)
	}
	return !i.Upper.Less(a)
}

// Selection is an ordered list of intervals. Intervals may overlap; they are
// never coalesced.
type Selection []Interval

// Of returns a selection of single-address intervals.
func Of(addresses ...Address) Selection {
	s := make(Selection, 0, len(addresses))
	for _, a := range addresses {
		s = append(s, Closed(a, a))
	}
	return s
}

// Union concatenates selections.
func Union(selections ...Selection) Selection {
	var out Selection
	for _, s := range selections {
		out = append(out, s...)
	}
	return out
}

// Contains reports whether any interval holds a.
func (s Selection) Contains(a Address) bool {
	for _, i := range s {
		if i.Contains(a) {
			return true
		}
	}
	return false
}

// Valid reports whether every interval is well formed.
func (s Selection) Valid() bool {
	for _, i := range s {
		if !i.Valid() {
			return false
		}
	}
	return true
}
