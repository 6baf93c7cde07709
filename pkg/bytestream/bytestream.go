// Package bytestream encodes fixed-layout values into the raw byte form
// dumped by memdbg.
package bytestream

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

type Writer struct {
	*bytes.Buffer
	binary.ByteOrder
}

func New(endian binary.ByteOrder) *Writer {
	w := Writer{
		Buffer:    bytes.NewBuffer([]byte{}),
		ByteOrder: endian,
	}

	if w.ByteOrder == nil {
		w.ByteOrder = binary.LittleEndian
	}

	return &w
}

func (out *Writer) WriteUint16(v uint16) {
	data := make([]byte, 2)
	out.ByteOrder.PutUint16(data, v)
	out.Write(data)
}

func (out *Writer) WriteUint32(v uint32) {
	data := make([]byte, 4)
	out.ByteOrder.PutUint32(data, v)
	out.Write(data)
}

func (out *Writer) WriteUint64(v uint64) {
	data := make([]byte, 8)
	out.ByteOrder.PutUint64(data, v)
	out.Write(data)
}

// WriteZeroString writes s followed by a zero byte.
func (out *Writer) WriteZeroString(s string) {
	out.WriteString(s)
	out.WriteByte(0)
}

// WriteFixedString writes s into a zero-padded field of n bytes.
func (out *Writer) WriteFixedString(s string, n int) error {
	if len(s) > n {
		return errors.Errorf("string too long for field: expected at most %d, got %d", n, len(s))
	}

	field := make([]byte, n)
	copy(field, s)
	out.Write(field)

	return nil
}

// WriteStruct appends the binary encoding of v, which must be a fixed-size
// value: no pointers, maps, strings or slices of structs holding those.
func (out *Writer) WriteStruct(v interface{}) error {
	if err := binary.Write(out.Buffer, out.ByteOrder, v); err != nil {
		return errors.Wrap(err, "binary.Write")
	}

	return nil
}
