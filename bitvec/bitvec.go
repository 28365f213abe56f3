// Package bitvec reads a byte slice as a stream of bits, most significant
// bit first.
package bitvec

import "io"

// Reader walks data bit by bit. The zero value reads nothing.
type Reader struct {
	data    []byte
	byteIdx int
	bitIdx  uint8 // 0 is the MSB of data[byteIdx]
}

// NewReader returns a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit returns the next bit (0 or 1), or io.EOF once data is exhausted.
func (r *Reader) ReadBit() (uint8, error) {
	if r.byteIdx >= len(r.data) {
		return 0, io.EOF
	}
	bit := (r.data[r.byteIdx] >> (7 - r.bitIdx)) & 1
	r.bitIdx++
	if r.bitIdx == 8 {
		r.byteIdx++
		r.bitIdx = 0
	}

	return bit, nil
}

// ReadByte assembles the next eight bits. It need not be byte aligned.
// Returns io.EOF when no bits remain and io.ErrUnexpectedEOF when fewer
// than eight do.
func (r *Reader) ReadByte() (byte, error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// ReadBits assembles the next n bits (0 ≤ n ≤ 64) into the low end of a uint64.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		panic("bitvec: ReadBits width must be in [0,64]")
	}
	if n == 0 {
		return 0, nil
	}
	if r.Remaining() == 0 {
		return 0, io.EOF
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, io.ErrUnexpectedEOF
		}
		v = v<<1 | uint64(bit)
	}

	return v, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	if r.byteIdx >= len(r.data) {
		return 0
	}
	return (len(r.data)-r.byteIdx)*8 - int(r.bitIdx)
}
