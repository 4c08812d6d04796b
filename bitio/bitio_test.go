package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadBitsRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)

	require.NoError(t, w.WriteBits(3, 5))
	require.NoError(t, w.WriteBits(1, 1))
	require.NoError(t, w.WriteBits(12, 0xabc))
	require.NoError(t, w.Align())

	r := NewReader(w.Bytes())
	v, err := r.ReadBits(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	v, err = r.ReadBits(12)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xabc), v)
}

func TestWriteBitsAcrossByteBoundary(t *testing.T) {
	buf := make([]byte, 2)
	w := NewWriter(buf)
	require.NoError(t, w.WriteBits(4, 0xf))
	require.NoError(t, w.WriteBits(9, 0x1ab))
	// 13 bits: one whole byte committed, the second only partly filled.
	assert.Equal(t, 1, w.Len())

	r := NewReader(w.Bytes())
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xf), v)
	v, err = r.ReadBits(9)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1ab), v)
}

func TestWriteBitsOverflowReturnsEndOfData(t *testing.T) {
	buf := make([]byte, 1)
	w := NewWriter(buf)
	require.NoError(t, w.WriteBits(8, 0xff))
	err := w.WriteBits(1, 1)
	assert.ErrorIs(t, err, ErrBufferEndOfData)
}

func TestReadBitsUnderflowReturnsEndOfData(t *testing.T) {
	r := NewReader([]byte{0xff})
	_, err := r.ReadBits(8)
	require.NoError(t, err)
	_, err = r.ReadBits(1)
	assert.ErrorIs(t, err, ErrBufferEndOfData)
}

func TestAlignPadsToByteBoundary(t *testing.T) {
	buf := make([]byte, 2)
	w := NewWriter(buf)
	require.NoError(t, w.WriteBits(3, 0x5))
	require.NoError(t, w.Align())
	assert.True(t, w.IsByteAligned())
	assert.Equal(t, 1, w.Len())
}

func TestBitcountOutOfRange(t *testing.T) {
	buf := make([]byte, 8)
	w := NewWriter(buf)
	err := w.WriteBits(0, 0)
	assert.ErrorIs(t, err, ErrBitcountOutOfRange)
	err = w.WriteBits(33, 0)
	assert.ErrorIs(t, err, ErrBitcountOutOfRange)
}

func TestReaderRemaining(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00})
	assert.Equal(t, 16, r.Remaining())
	_, err := r.ReadBits(5)
	require.NoError(t, err)
	assert.Equal(t, 11, r.Remaining())
}
