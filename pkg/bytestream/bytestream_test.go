package bytestream

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Integers(t *testing.T) {
	out := New(nil)
	out.WriteUint16(0x0102)
	out.WriteUint32(0x03040506)
	out.WriteUint64(0x0708090a0b0c0d0e)

	assert.Equal(t, []byte{
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07,
	}, out.Bytes())

	big := New(binary.BigEndian)
	big.WriteUint32(0x03040506)
	assert.Equal(t, []byte{0x03, 0x04, 0x05, 0x06}, big.Bytes())
}

func TestWriter_Strings(t *testing.T) {
	out := New(nil)
	out.WriteZeroString("ssc")
	require.NoError(t, out.WriteFixedString("zone", 6))

	assert.Equal(t, []byte{'s', 's', 'c', 0, 'z', 'o', 'n', 'e', 0, 0}, out.Bytes())

	err := out.WriteFixedString("too long", 4)
	require.Error(t, err)
	assert.Equal(t, 10, out.Len())
}

func TestWriter_Struct(t *testing.T) {
	type entry struct {
		Port    uint16
		Players uint16
		Version uint32
	}

	out := New(binary.LittleEndian)
	require.NoError(t, out.WriteStruct(entry{Port: 5000, Players: 3, Version: 134}))
	assert.Equal(t, []byte{0x88, 0x13, 0x03, 0x00, 0x86, 0x00, 0x00, 0x00}, out.Bytes())

	type withPointer struct {
		Next *entry
	}
	require.Error(t, New(nil).WriteStruct(withPointer{}))

	type withString struct {
		Name string
	}
	require.Error(t, New(nil).WriteStruct(withString{Name: "x"}))
}
