package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/rampeditor/pkg/logging"
	"tableflip.dev/rampeditor/pkg/palette"
)

// ErrPaletteNotFound indicates no palette is stored under the name.
var ErrPaletteNotFound = errors.New("store: palette not found")

// Persistence defines the persistence contract for palettes.
type Persistence interface {
	List(ctx context.Context) []string
	Load(ctx context.Context, name string) (palette.Snapshot, error)
	Store(s palette.Snapshot) error
	Delete(name string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const paletteFile = "palette.json"

func (p *persistence) List(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		name, err := fromKey(key)
		if err != nil {
			logging.FromContext(ctx).Warn("store: skipping unreadable key", "key", key, "err", err)
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *persistence) Load(ctx context.Context, name string) (palette.Snapshot, error) {
	key := toKey(name)
	if !p.d.Has(key) {
		return palette.Snapshot{}, fmt.Errorf("%w: %q", ErrPaletteNotFound, name)
	}
	val, err := p.d.Read(key)
	if err != nil {
		return palette.Snapshot{}, fmt.Errorf("store: read %q: %w", name, err)
	}
	var s palette.Snapshot
	if err := json.Unmarshal(val, &s); err != nil {
		logging.FromContext(ctx).Error("store: corrupt palette", "palette", name, "err", err)
		return palette.Snapshot{}, fmt.Errorf("store: decode %q: %w", name, err)
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

func (p *persistence) Store(s palette.Snapshot) error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("store: palette name required")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", s.Name, err)
	}
	if err := p.d.Write(toKey(s.Name), data); err != nil {
		return fmt.Errorf("store: write %q: %w", s.Name, err)
	}
	return nil
}

func (p *persistence) Delete(name string) error {
	key := toKey(name)
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrPaletteNotFound, name)
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %q: %w", name, err)
	}
	return nil
}

// Each palette lives in its own directory named by the encoded palette name,
// so the watcher can map a changed file back to its palette.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{key},
		FileName: paletteFile,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return ""
	}
	return pathKey.Path[0]
}

func toKey(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name))
}

func fromKey(key string) (string, error) {
	name, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return "", err
	}
	return string(name), nil
}
