package palette

import (
	"fmt"
	"strings"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
)

// ExpressionKind tags the variant an Expression encodes.
type ExpressionKind string

const (
	KindColor ExpressionKind = "color"
	KindRamp  ExpressionKind = "ramp"
	KindWatch ExpressionKind = "watch"
)

// Expression is the serializable form of an Element. Undo records store a
// *Expression where nil means the address held no cell.
type Expression struct {
	Kind    ExpressionKind    `json:"kind"`
	Color   *color.Color      `json:"color,omitempty"`
	Amount  float64           `json:"amount,omitempty"`
	Sources []address.Address `json:"sources,omitempty"`
}

// Express captures an element as an Expression.
func Express(e Element) Expression {
	if e.Mixer == nil {
		c := e.Color
		return Expression{Kind: KindColor, Color: &c}
	}
	return e.Mixer.expression(e.Sources)
}

// Element rebuilds the element described by the expression.
func (x Expression) Element() (Element, error) {
	switch x.Kind {
	case KindColor:
		if x.Color == nil {
			return Element{}, fmt.Errorf("%w: color expression without a color", ErrUnknownExpression)
		}
		return Terminal(*x.Color), nil
	case KindRamp:
		if len(x.Sources) != 2 {
			return Element{}, fmt.Errorf("%w: ramp needs 2 sources, got %d", ErrUnknownExpression, len(x.Sources))
		}
		return Mixed(Ramp{Amount: x.Amount}, x.Sources...), nil
	case KindWatch:
		if len(x.Sources) != 1 {
			return Element{}, fmt.Errorf("%w: watch needs 1 source, got %d", ErrUnknownExpression, len(x.Sources))
		}
		return Mixed(Watch{}, x.Sources...), nil
	}
	return Element{}, fmt.Errorf("%w: kind %q", ErrUnknownExpression, x.Kind)
}

func (x Expression) String() string {
	switch x.Kind {
	case KindColor:
		if x.Color != nil {
			return x.Color.Hex()
		}
	case KindRamp:
		return fmt.Sprintf("ramp(%s, %.3f)", joinSources(x.Sources), x.Amount)
	case KindWatch:
		return fmt.Sprintf("watch(%s)", joinSources(x.Sources))
	}
	return string(x.Kind)
}

func joinSources(sources []address.Address) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = s.Hex()
	}
	return strings.Join(parts, ", ")
}
