// Package mcp serves palettes and their operations over the Model Context
// Protocol.
package mcp

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/format"
	"tableflip.dev/rampeditor/pkg/palette"
)

// Service adapts the palette service to transport-friendly values.
type Service struct {
	App *app.Service
	// DefaultPalette is used when a request names no palette.
	DefaultPalette string
}

// PaletteSummary describes a stored palette.
type PaletteSummary struct {
	Name      string         `json:"name"`
	Bounds    address.Bounds `json:"bounds"`
	Slots     int            `json:"slots"`
	History   int            `json:"history"`
	RedoDepth int            `json:"redoDepth"`
}

// SlotDTO is one occupied slot with its resolved color.
type SlotDTO struct {
	Address    string              `json:"address"`
	Color      string              `json:"color,omitempty"`
	Expression *palette.Expression `json:"expression,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// PaletteDTO is a transport-friendly projection of a palette.
type PaletteDTO struct {
	Name      string                  `json:"name"`
	Bounds    address.Bounds          `json:"bounds"`
	Slots     []SlotDTO               `json:"slots"`
	History   []palette.OperationInfo `json:"history"`
	RedoDepth int                     `json:"redoDepth"`
}

// StepDTO reports an applied, undone or redone operation.
type StepDTO struct {
	Operation palette.OperationInfo `json:"operation"`
	Palette   *PaletteDTO           `json:"palette"`
}

// NewService wraps svc, using def for requests that name no palette.
func NewService(svc *app.Service, def string) *Service {
	return &Service{App: svc, DefaultPalette: def}
}

func (s *Service) name(n string) string {
	if n == "" {
		return s.DefaultPalette
	}
	return n
}

func (s *Service) ready() error {
	if s == nil || s.App == nil {
		return errors.New("palette service is not configured")
	}
	return nil
}

// ListPalettes summarizes every stored palette, sorted by name.
func (s *Service) ListPalettes(ctx context.Context) ([]PaletteSummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	names, err := s.App.Palettes(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	out := make([]PaletteSummary, 0, len(names))
	for _, n := range names {
		p, err := s.App.Open(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, PaletteSummary{
			Name:      n,
			Bounds:    p.Bounds(),
			Slots:     len(p.Slots()),
			History:   p.UndoDepth(),
			RedoDepth: p.RedoDepth(),
		})
	}
	return out, nil
}

// GetPalette returns the named palette with every slot resolved.
func (s *Service) GetPalette(ctx context.Context, name string) (*PaletteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	p, err := s.App.Open(ctx, s.name(name))
	if err != nil {
		return nil, err
	}
	return toPaletteDTO(p), nil
}

// CreatePalette stores a new empty palette.
func (s *Service) CreatePalette(ctx context.Context, name string, bounds address.Bounds) (*PaletteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	p, err := s.App.Create(ctx, s.name(name), bounds)
	if err != nil {
		return nil, err
	}
	return toPaletteDTO(p), nil
}

// Apply runs op against the named palette.
func (s *Service) Apply(ctx context.Context, name string, op palette.Operation) (*StepDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.step(ctx, name, func(ctx context.Context, n string) (palette.HistoryEntry, error) {
		return s.App.Apply(ctx, n, op)
	})
}

// Undo reverts the last operation of the named palette.
func (s *Service) Undo(ctx context.Context, name string) (*StepDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.step(ctx, name, s.App.Undo)
}

// Redo reapplies the last undone operation of the named palette.
func (s *Service) Redo(ctx context.Context, name string) (*StepDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.step(ctx, name, s.App.Redo)
}

// Export renders the named palette with a registered writer.
func (s *Service) Export(ctx context.Context, name, formatName string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	write, err := format.Lookup(formatName)
	if err != nil {
		return "", err
	}
	p, err := s.App.Open(ctx, s.name(name))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := write(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Service) step(ctx context.Context, name string, fn func(context.Context, string) (palette.HistoryEntry, error)) (*StepDTO, error) {
	n := s.name(name)
	entry, err := fn(ctx, n)
	if err != nil {
		return nil, err
	}
	p, err := s.App.Open(ctx, n)
	if err != nil {
		return nil, err
	}
	return &StepDTO{Operation: entry.Info, Palette: toPaletteDTO(p)}, nil
}

func toPaletteDTO(p *palette.Palette) *PaletteDTO {
	dto := &PaletteDTO{
		Name:      p.Name(),
		Bounds:    p.Bounds(),
		Slots:     []SlotDTO{},
		History:   p.History(),
		RedoDepth: p.RedoDepth(),
	}
	for _, slot := range p.Slots() {
		s := SlotDTO{Address: slot.Address.Hex()}
		if slot.Err != nil {
			s.Error = slot.Err.Error()
		} else {
			s.Color = slot.Color.Hex()
		}
		if x, ok := p.Expression(slot.Address); ok {
			s.Expression = &x
		}
		dto.Slots = append(dto.Slots, s)
	}
	return dto
}
