package exi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v2gkit/iso15118exi/bitio"
)

func TestUnsignedRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40}
	for _, v := range cases {
		buf := make([]byte, 16)
		w := bitio.NewWriter(buf)
		require.NoError(t, WriteUnsigned(w, v))
		r := bitio.NewReader(w.Bytes())
		got, err := ReadUnsigned(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSignedRoundTripIncludingZero(t *testing.T) {
	cases := []int64{0, -1, 1, -100, 100, -32768, 32767}
	for _, v := range cases {
		buf := make([]byte, 16)
		w := bitio.NewWriter(buf)
		require.NoError(t, WriteSigned(w, v))
		r := bitio.NewReader(w.Bytes())
		got, err := ReadSigned(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEnumBitWidth(t *testing.T) {
	assert.Equal(t, 1, EnumBitWidth(1))
	assert.Equal(t, 1, EnumBitWidth(2))
	assert.Equal(t, 2, EnumBitWidth(3))
	assert.Equal(t, 2, EnumBitWidth(4))
	assert.Equal(t, 6, EnumBitWidth(34))
	assert.Equal(t, 7, EnumBitWidth(76))
}

func TestBytesRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	require.NoError(t, WriteBytes(w, data))

	r := bitio.NewReader(w.Bytes())
	dst := make([]byte, 8)
	out, err := ReadBytesInto(r, dst)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestReadBytesIntoRejectsOverCapacity(t *testing.T) {
	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	require.NoError(t, WriteBytes(w, []byte{1, 2, 3, 4}))

	r := bitio.NewReader(w.Bytes())
	dst := make([]byte, 2)
	_, err := ReadBytesInto(r, dst)
	assert.ErrorIs(t, err, BitcountOutOfRange)
}

func TestStringRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	s := []rune("DE*MAB*E123AB1*356")
	require.NoError(t, WriteString(w, s))

	r := bitio.NewReader(w.Bytes())
	dst := make([]rune, 0, 64)
	out, err := ReadStringInto(r, dst[:64])
	require.NoError(t, err)
	assert.Equal(t, string(s), string(out))
}

func TestHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	w := bitio.NewWriter(buf)
	require.NoError(t, WriteHeader(w))
	assert.Equal(t, []byte{0x80, 0x40}, w.Bytes())

	r := bitio.NewReader(w.Bytes())
	require.NoError(t, ReadHeader(r))
}

func TestHeaderMismatchReturnsHeaderStatus(t *testing.T) {
	r := bitio.NewReader([]byte{0x80, 0x00})
	err := ReadHeader(r)
	assert.ErrorIs(t, err, Header)
}
