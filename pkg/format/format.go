// Package format writes palettes out in external file formats.
package format

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/palette"
)

// ErrUnknownFormat indicates no writer is registered under the name.
var ErrUnknownFormat = errors.New("format: unknown format")

// Source is the read-only view writers need: every occupied address in
// ascending order paired with its resolved color.
type Source interface {
	Name() string
	Bounds() address.Bounds
	Slots() []palette.Slot
}

// Writer serializes a palette to w.
type Writer func(w io.Writer, p *palette.Palette) error

var writers = map[string]Writer{
	"text": func(w io.Writer, p *palette.Palette) error { return WriteText(w, p) },
	"zpl":  func(w io.Writer, p *palette.Palette) error { return WriteZPL(w, p) },
	"json": WriteJSON,
	"yaml": WriteYAML,
}

// Lookup returns the writer registered for name.
func Lookup(name string) (Writer, error) {
	w, ok := writers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return w, nil
}

// Names lists the registered formats.
func Names() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolved returns the slots of src, failing on the first one that cannot
// be resolved.
func resolved(src Source) ([]palette.Slot, error) {
	slots := src.Slots()
	for _, s := range slots {
		if s.Err != nil {
			return nil, fmt.Errorf("format: resolve %s: %w", s.Address.Hex(), s.Err)
		}
	}
	return slots, nil
}
