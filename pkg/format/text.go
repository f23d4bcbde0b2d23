package format

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText writes one line per occupied slot, `#pp:ll:cc RRGGBB`, with
// address fields and channels in hex.
func WriteText(w io.Writer, src Source) error {
	slots, err := resolved(src)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, s := range slots {
		if _, err := fmt.Fprintf(bw, "#%s %02X%02X%02X\n", s.Address.Hex(), s.Color.R, s.Color.G, s.Color.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}
