// Package glyph maps palette element kinds to the symbols used in listings.
package glyph

import (
	"tableflip.dev/rampeditor/pkg/palette"
)

type Glyph struct {
	Kind    palette.ExpressionKind
	Symbol  string
	Meaning string
	Order   int
}

const (
	// Empty marks an unoccupied slot.
	Empty = "·"
	// Broken marks a slot whose color cannot be resolved.
	Broken = "✘"
)

func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Kind:    palette.KindColor,
		Symbol:  "■",
		Meaning: "color",
		Order:   0,
	}, {
		Kind:    palette.KindRamp,
		Symbol:  "◧",
		Meaning: "ramp between two sources",
		Order:   1,
	}, {
		Kind:    palette.KindWatch,
		Symbol:  "◎",
		Meaning: "watcher of one source",
		Order:   2,
	}}
}

// ForKind returns the glyph for an expression kind.
func ForKind(k palette.ExpressionKind) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Kind == k {
			return g
		}
	}
	return Glyph{Kind: k, Symbol: "?", Meaning: string(k), Order: 99}
}

func (g Glyph) String() string {
	return g.Symbol
}

type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
