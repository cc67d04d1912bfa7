// Package dump renders byte sequences as line-oriented human-readable
// text. It consumes read-only buffer snapshots and has no dependency back
// into the packing core.
package dump

import (
	"fmt"
	"io"
)

const bytesPerLine = 16

// Hex writes a classic hex dump of data to w: a hex offset, two columns of
// 8 byte values and an ASCII gutter, 16 bytes per line.
func Hex(w io.Writer, data []byte) error {
	for offset := 0; offset < len(data); offset += bytesPerLine {
		line := data[offset:min(offset+bytesPerLine, len(data))]

		if _, err := fmt.Fprintf(w, "%08x ", offset); err != nil {
			return err
		}
		for i := 0; i < bytesPerLine; i++ {
			if i%8 == 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if i < len(line) {
				if _, err := fmt.Fprintf(w, "%02x ", line[i]); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprint(w, "   "); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintf(w, " |%s|\n", printable(line)); err != nil {
			return err
		}
	}
	return nil
}

// Binary writes a bit-level dump of data to w: a hex offset followed by 8
// bit-groups per line, each byte expanded MSB-first.
func Binary(w io.Writer, data []byte) error {
	const groupsPerLine = 8

	for offset := 0; offset < len(data); offset += groupsPerLine {
		line := data[offset:min(offset+groupsPerLine, len(data))]

		if _, err := fmt.Fprintf(w, "%08x ", offset); err != nil {
			return err
		}
		for _, v := range line {
			if _, err := fmt.Fprintf(w, " %08b", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func printable(line []byte) []byte {
	out := make([]byte, len(line))
	for i, v := range line {
		if v >= 0x20 && v <= 0x7e {
			out[i] = v
		} else {
			out[i] = '.'
		}
	}
	return out
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
