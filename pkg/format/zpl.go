package format

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/rampeditor/pkg/palette"
)

// ZPL color data section layout.
const (
	zplSectionVersion = 4
	zplCVersion       = 1
	zplColumns        = 16
	zplCSetSize       = zplColumns * 3
	zplNameSize       = 17
)

// ErrUnsupportedLayout indicates the palette cannot be expressed in the
// target format.
var ErrUnsupportedLayout = errors.New("format: unsupported layout")

// WriteZPL writes the palette as a ZPL color data section: a header
// (section version, cversion, section size), one 48 byte cset per line of
// 16 RGB triples with 6 bit channels, the palette name and an empty
// palette cycle table. Lines are written up to the last occupied one. All
// integers are little endian.
func WriteZPL(w io.Writer, src Source) error {
	slots, err := resolved(src)
	if err != nil {
		return err
	}
	b := src.Bounds()
	lineOf := func(s palette.Slot) int {
		return int(s.Address.Page)*b.Lines + int(s.Address.Line)
	}
	lines := 1
	if n := len(slots); n > 0 {
		lines = lineOf(slots[n-1]) + 1
	}

	body := make([]byte, lines*zplCSetSize)
	for _, s := range slots {
		a := s.Address
		if int(a.Column) >= zplColumns {
			return fmt.Errorf("%w: column %d at %s exceeds %d columns per line", ErrUnsupportedLayout, a.Column, a.Hex(), zplColumns)
		}
		off := lineOf(s)*zplCSetSize + int(a.Column)*3
		body[off] = s.Color.R >> 2
		body[off+1] = s.Color.G >> 2
		body[off+2] = s.Color.B >> 2
	}

	var buf bytes.Buffer
	buf.Write(body)

	name := make([]byte, zplNameSize)
	copy(name[:zplNameSize-1], src.Name())
	buf.Write(name)

	// Palette cycle count.
	if err := binary.Write(&buf, binary.LittleEndian, uint16(0)); err != nil {
		return err
	}

	header := struct {
		Version  uint16
		CVersion uint16
		Size     uint32
	}{zplSectionVersion, zplCVersion, uint32(buf.Len())}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
