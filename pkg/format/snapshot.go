package format

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"tableflip.dev/rampeditor/pkg/palette"
)

// WriteJSON writes the palette snapshot, history included, as indented JSON.
func WriteJSON(w io.Writer, p *palette.Palette) error {
	s, err := p.Snapshot()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML writes the palette snapshot as YAML.
func WriteYAML(w io.Writer, p *palette.Palette) error {
	s, err := p.Snapshot()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("format: yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// ReadSnapshot decodes a snapshot written by WriteJSON or WriteYAML.
func ReadSnapshot(r io.Reader) (palette.Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return palette.Snapshot{}, err
	}
	var s palette.Snapshot
	// JSON is a subset of YAML, so one decoder serves both.
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return palette.Snapshot{}, fmt.Errorf("format: decode snapshot: %w", err)
	}
	return s, nil
}
