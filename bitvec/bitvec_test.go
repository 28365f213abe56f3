package bitvec_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrightdylan/advent-of-code-2024/bitvec"
)

func TestReadBit_MSBFirst(t *testing.T) {
	r := bitvec.NewReader([]byte{0b1010_0001})
	want := []uint8{1, 0, 1, 0, 0, 0, 0, 1}
	for i, w := range want {
		got, err := r.ReadBit()
		require.NoError(t, err)
		assert.Equal(t, w, got, "bit %d", i)
	}
	_, err := r.ReadBit()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadByte_Unaligned(t *testing.T) {
	r := bitvec.NewReader([]byte{0xF0, 0x0F})

	// drop four bits, then read across the byte boundary
	for i := 0; i < 4; i++ {
		_, err := r.ReadBit()
		require.NoError(t, err)
	}
	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), b)
	assert.Equal(t, 4, r.Remaining())

	_, err = r.ReadByte()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadBits(t *testing.T) {
	r := bitvec.NewReader([]byte{0xAB, 0xCD})
	v, err := r.ReadBits(12)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xABC), v)

	v, err = r.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xD), v)

	_, err = r.ReadBits(1)
	assert.ErrorIs(t, err, io.EOF)

	v, err = r.ReadBits(0)
	require.NoError(t, err)
	assert.Zero(t, v)

	assert.Panics(t, func() { _, _ = r.ReadBits(65) })
}

// TestReader_ByteReader confirms Reader satisfies io.ByteReader.
func TestReader_ByteReader(t *testing.T) {
	var br io.ByteReader = bitvec.NewReader([]byte("hi"))
	b, err := br.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('h'), b)

	var zero bitvec.Reader
	assert.Zero(t, zero.Remaining())
}
