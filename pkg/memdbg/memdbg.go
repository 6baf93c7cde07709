// Package memdbg renders byte buffers as word-aligned hex/ASCII dumps for
// diagnostic output.
package memdbg

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// lineWidth is the number of bytes a full line targets.
const lineWidth = 32

// WordSize is the native pointer width in bytes.
const WordSize = bits.UintSize / 8

// MaxAlign is the largest accepted word size.
const MaxAlign = 1 << 16

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Align is the word size used to group bytes, in [1, MaxAlign].
	Align int
	// Offset is the number of leading bytes that precede the first word
	// boundary. Values past the end of the buffer are clamped.
	Offset int
}

func DefaultConfig() Config {
	return Config{Align: WordSize}
}

func (c Config) Validate() error {
	if c.Align <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "align must be positive, got %d", c.Align)
	}
	if c.Align > MaxAlign {
		return errors.Wrapf(ErrInvalidConfig, "align must be at most %d, got %d", MaxAlign, c.Align)
	}
	if c.Offset < 0 {
		return errors.Wrapf(ErrInvalidConfig, "offset must not be negative, got %d", c.Offset)
	}

	return nil
}

// Dump formats b with c. The output holds one line per aligned group; every
// aligned line is preceded by a line break, so the returned string starts
// with "\n" unless a prefix run is rendered first.
func (c Config) Dump(b []byte) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var out strings.Builder
	dump(&out, b, c.Align, c.Offset)

	return out.String(), nil
}

// Dump formats b grouped in words of align bytes, treating the first offset
// bytes as an unaligned prefix run.
func Dump(b []byte, align, offset int) (string, error) {
	return Config{Align: align, Offset: offset}.Dump(b)
}

func dump(out *strings.Builder, b []byte, align, offset int) {
	chunksPerLine := lineWidth / align
	if chunksPerLine == 0 {
		chunksPerLine = 1
	}
	perLine := align * chunksPerLine

	offset = min(offset, len(b))
	pre, rest := b[:offset], b[offset:]

	for _, c := range pre {
		writeHex(out, c)
	}
	if len(pre) > 0 {
		out.WriteString(" |")
	}
	writeASCII(out, pre)

	for len(rest) > 0 {
		line := rest[:min(perLine, len(rest))]
		rest = rest[len(line):]

		out.WriteByte('\n')
		for i := 0; i < len(line); i += align {
			out.WriteString(" |")
			for _, c := range line[i:min(i+align, len(line))] {
				writeHex(out, c)
			}
		}

		// pad so the ascii column lines up with full lines
		fill := perLine - len(line)
		fill = 3*fill + 2*(fill/align)
		out.WriteString(strings.Repeat(" ", fill))

		out.WriteString(" | ")
		writeASCII(out, line)
	}
}

const hexDigits = "0123456789ABCDEF"

func writeHex(out *strings.Builder, c byte) {
	out.WriteByte(' ')
	out.WriteByte(hexDigits[c>>4])
	out.WriteByte(hexDigits[c&0x0f])
}

// Buf is a byte buffer that prints as a dump with DefaultConfig.
type Buf []byte

func (b Buf) String() string {
	s, err := DefaultConfig().Dump(b)
	if err != nil {
		return badDump(err)
	}

	return s
}

func (b Buf) GoString() string {
	return b.String()
}

func badDump(err error) string {
	return fmt.Sprintf("%%!memdbg(%v)", err)
}
