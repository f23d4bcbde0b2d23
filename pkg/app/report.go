package app

import (
	"context"
	"sort"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/palette"
)

// ReportSection groups the cells of one line.
type ReportSection struct {
	Group address.Group
	Slots []palette.Slot
}

// ReportResult summarizes a palette: cells per line, element kinds and the
// history stacks.
type ReportResult struct {
	Name       string
	Bounds     address.Bounds
	Sections   []ReportSection
	Kinds      map[palette.ExpressionKind]int
	Unresolved int
	Total      int
	History    []palette.OperationInfo
	RedoDepth  int
}

// Report summarizes the named palette.
func (s *Service) Report(ctx context.Context, name string) (ReportResult, error) {
	p, err := s.Open(ctx, name)
	if err != nil {
		return ReportResult{}, err
	}
	return Summarize(p), nil
}

// Summarize builds a report for p.
func Summarize(p *palette.Palette) ReportResult {
	res := ReportResult{
		Name:      p.Name(),
		Bounds:    p.Bounds(),
		Kinds:     make(map[palette.ExpressionKind]int),
		History:   p.History(),
		RedoDepth: p.RedoDepth(),
	}

	grouped := make(map[address.Group]*ReportSection)
	for _, slot := range p.Slots() {
		g := slot.Address.LineGroup()
		sec, ok := grouped[g]
		if !ok {
			sec = &ReportSection{Group: g}
			grouped[g] = sec
		}
		sec.Slots = append(sec.Slots, slot)

		if x, ok := p.Expression(slot.Address); ok {
			res.Kinds[x.Kind]++
		}
		if slot.Err != nil {
			res.Unresolved++
		}
		res.Total++
	}

	res.Sections = make([]ReportSection, 0, len(grouped))
	for _, sec := range grouped {
		res.Sections = append(res.Sections, *sec)
	}
	sort.Slice(res.Sections, func(i, j int) bool {
		return res.Sections[i].Group.BaseAddress().Less(res.Sections[j].Group.BaseAddress())
	})
	return res
}

// FirstError returns the first resolution failure in the report, if any.
func (r ReportResult) FirstError() error {
	for _, sec := range r.Sections {
		for _, slot := range sec.Slots {
			if slot.Err != nil {
				return slot.Err
			}
		}
	}
	return nil
}
