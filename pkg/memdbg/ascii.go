package memdbg

import "strings"

// isGraphic reports whether c is a printable ASCII character other than space.
func isGraphic(c byte) bool {
	return c > ' ' && c < 0x7f
}

func writeASCII(out *strings.Builder, b []byte) {
	for _, c := range b {
		if !isGraphic(c) {
			c = '.'
		}
		out.WriteByte(c)
	}
}
