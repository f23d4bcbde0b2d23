package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/logging"
	"tableflip.dev/rampeditor/pkg/palette"
	"tableflip.dev/rampeditor/pkg/store"
)

// Service provides high-level palette operations on top of persistence so
// the CLI and the browser share one load/apply/save cycle.
type Service struct {
	Persistence store.Persistence
	// Bounds is used for palettes created by Create when none are given.
	Bounds address.Bounds
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrPaletteExists = errors.New("app: palette already exists")
)

// Palettes returns the sorted names of stored palettes.
func (s *Service) Palettes(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.List(ctx), nil
}

// Create stores a new empty palette.
func (s *Service) Create(ctx context.Context, name string, bounds address.Bounds) (*palette.Palette, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("app: palette name required")
	}
	if _, err := s.Persistence.Load(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrPaletteExists, name)
	} else if !errors.Is(err, store.ErrPaletteNotFound) {
		return nil, err
	}
	if bounds == (address.Bounds{}) {
		bounds = s.Bounds
	}
	p := palette.New(name, palette.WithBounds(bounds), palette.WithLogger(logging.FromContext(ctx)))
	if err := s.save(p); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("palette created", "palette", name, "bounds", p.Bounds().String())
	return p, nil
}

// Open loads a palette with its history.
func (s *Service) Open(ctx context.Context, name string) (*palette.Palette, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	snap, err := s.Persistence.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	p, err := palette.Restore(snap, palette.WithLogger(logging.FromContext(ctx)))
	if err != nil {
		return nil, fmt.Errorf("app: restore %q: %w", name, err)
	}
	return p, nil
}

// Apply runs op against the named palette and saves the result.
func (s *Service) Apply(ctx context.Context, name string, op palette.Operation) (palette.HistoryEntry, error) {
	return s.mutate(ctx, name, func(p *palette.Palette) (palette.HistoryEntry, error) {
		return p.Apply(op)
	})
}

// Undo reverses the last operation on the named palette and saves it.
func (s *Service) Undo(ctx context.Context, name string) (palette.HistoryEntry, error) {
	return s.mutate(ctx, name, (*palette.Palette).Undo)
}

// Redo reapplies the last undone operation on the named palette and saves it.
func (s *Service) Redo(ctx context.Context, name string) (palette.HistoryEntry, error) {
	return s.mutate(ctx, name, (*palette.Palette).Redo)
}

// Delete removes the named palette.
func (s *Service) Delete(ctx context.Context, name string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Delete(name); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("palette deleted", "palette", name)
	return nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// mutate loads, changes and saves a palette. Nothing is saved when fn
// fails, so a failed operation never reaches disk half applied.
func (s *Service) mutate(ctx context.Context, name string, fn func(*palette.Palette) (palette.HistoryEntry, error)) (palette.HistoryEntry, error) {
	p, err := s.Open(ctx, name)
	if err != nil {
		return palette.HistoryEntry{}, err
	}
	entry, err := fn(p)
	if err != nil {
		return palette.HistoryEntry{}, err
	}
	if err := s.save(p); err != nil {
		return palette.HistoryEntry{}, err
	}
	return entry, nil
}

func (s *Service) save(p *palette.Palette) error {
	snap, err := p.Snapshot()
	if err != nil {
		return fmt.Errorf("app: snapshot %q: %w", p.Name(), err)
	}
	return s.Persistence.Store(snap)
}
