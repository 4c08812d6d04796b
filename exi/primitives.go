package exi

import (
	"github.com/v2gkit/iso15118exi/bitio"
	Text "github.com/linkdotnet/golang-stringbuilder"
)

// continuation-group width for the EXI variable-length unsigned
// encoding (spec.md §4.2): 7 data bits, high bit is "more follows".
const varintGroupBits = 7
const varintContinuationMask = 0x80

// WriteBool writes a single EXI boolean as one bit.
func WriteBool(w *bitio.Writer, v bool) error {
	b := 0
	if v {
		b = 1
	}
	return w.WriteBit(b)
}

// ReadBool reads a single EXI boolean.
func ReadBool(r *bitio.Reader) (bool, error) {
	b, err := r.ReadBit()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// WriteNBit writes value as an n-bit unsigned integer (1 <= n <= 32),
// used for event codes, enum ordinals, and other schema-typed ranges
// (spec.md §4.2).
func WriteNBit(w *bitio.Writer, n int, value uint32) error {
	return w.WriteBits(n, value)
}

// ReadNBit reads an n-bit unsigned integer.
func ReadNBit(r *bitio.Reader, n int) (uint32, error) {
	return r.ReadBits(n)
}

// WriteUnsigned writes v using the EXI variable-length unsigned
// encoding: 7 data bits per octet, little-endian group order, high
// bit set iff another group follows (spec.md §4.2). Used for the
// unsigned 8/16/32/64 base types.
func WriteUnsigned(w *bitio.Writer, v uint64) error {
	for {
		group := byte(v & 0x7f)
		v >>= varintGroupBits
		if v != 0 {
			if err := w.WriteBits(8, uint32(group)|varintContinuationMask); err != nil {
				return err
			}
		} else {
			if err := w.WriteBits(8, uint32(group)); err != nil {
				return err
			}
			return nil
		}
	}
}

// ReadUnsigned reads a value written by WriteUnsigned.
func ReadUnsigned(r *bitio.Reader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		octet, err := r.ReadBits(8)
		if err != nil {
			return 0, err
		}
		result |= uint64(octet&0x7f) << shift
		if octet&varintContinuationMask == 0 {
			return result, nil
		}
		shift += varintGroupBits
	}
}

// WriteSigned writes a signed integer as a sign bit followed by the
// magnitude, encoded as WriteUnsigned. Negative values are biased by
// -1 so zero has a canonical positive form (spec.md §4.2 edge cases):
// wire magnitude = (-v) - 1 when v < 0.
func WriteSigned(w *bitio.Writer, v int64) error {
	if v < 0 {
		if err := w.WriteBit(1); err != nil {
			return err
		}
		return WriteUnsigned(w, uint64(-v-1))
	}
	if err := w.WriteBit(0); err != nil {
		return err
	}
	return WriteUnsigned(w, uint64(v))
}

// ReadSigned reads a value written by WriteSigned.
func ReadSigned(r *bitio.Reader) (int64, error) {
	neg, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	mag, err := ReadUnsigned(r)
	if err != nil {
		return 0, err
	}
	if neg != 0 {
		return -int64(mag) - 1, nil
	}
	return int64(mag), nil
}

// WriteEnum writes ordinal as an n-bit unsigned where n =
// ceil(log2(variants)), per spec.md §4.2 "enumerated string".
func WriteEnum(w *bitio.Writer, ordinal uint32, variants int) error {
	return WriteNBit(w, EnumBitWidth(variants), ordinal)
}

// ReadEnum reads an ordinal written by WriteEnum.
func ReadEnum(r *bitio.Reader, variants int) (uint32, error) {
	return ReadNBit(r, EnumBitWidth(variants))
}

// EnumBitWidth returns ceil(log2(variants)), the wire width of an
// enum ordinal; a single-variant enum (degenerate, not used by this
// schema) still costs one bit, consistent with how the grammar engine
// treats k=1 event sets (spec.md §4.3.1).
func EnumBitWidth(variants int) int {
	if variants <= 1 {
		return 1
	}
	n := 0
	for (1 << uint(n)) < variants {
		n++
	}
	return n
}

// WriteBytes writes a bounded octet string: a 16-bit length followed
// by that many raw bytes (spec.md §4.2). Fails with ErrBitcountOutOfRange
// mapped status if len(data) would overflow the 16-bit length field.
func WriteBytes(w *bitio.Writer, data []byte) error {
	if len(data) > 0xffff {
		return BitcountOutOfRange
	}
	if err := WriteNBit(w, 16, uint32(len(data))); err != nil {
		return err
	}
	for _, b := range data {
		if err := w.WriteBits(8, uint32(b)); err != nil {
			return err
		}
	}
	return nil
}

// ReadBytesInto reads a bounded octet string into dst (capacity cap(dst)),
// returning the slice trimmed to the decoded length. Fails if the wire
// length exceeds cap(dst), which would violate spec.md §3.3's
// "counter never exceeds the bound" invariant.
func ReadBytesInto(r *bitio.Reader, dst []byte) ([]byte, error) {
	n, err := ReadNBit(r, 16)
	if err != nil {
		return nil, err
	}
	if int(n) > cap(dst) {
		return nil, BitcountOutOfRange
	}
	out := dst[:n]
	for i := range out {
		b, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(b)
	}
	return out, nil
}

// WriteString writes a bounded character string: a 16-bit value equal
// to actual_length+2 (escaping the string-table hit codes 0 and 1,
// spec.md §4.2), followed by that many characters, each emitted via
// WriteUnsigned.
func WriteString(w *bitio.Writer, s []rune) error {
	if len(s) > 0xffff-2 {
		return BitcountOutOfRange
	}
	if err := WriteNBit(w, 16, uint32(len(s)+2)); err != nil {
		return err
	}
	for _, ch := range s {
		if err := WriteUnsigned(w, uint64(ch)); err != nil {
			return err
		}
	}
	return nil
}

// ReadStringInto reads a bounded character string into dst (capacity
// cap(dst)), returning the slice trimmed to the decoded length. The
// rune sequence is assembled with a Text.StringBuilder the same way
// the teacher library assembles decoded string values.
func ReadStringInto(r *bitio.Reader, dst []rune) ([]rune, error) {
	wireLen, err := ReadNBit(r, 16)
	if err != nil {
		return nil, err
	}
	if wireLen < 2 {
		return nil, Header
	}
	n := int(wireLen) - 2
	if n > cap(dst) {
		return nil, BitcountOutOfRange
	}

	sb := Text.StringBuilder{}
	for i := 0; i < n; i++ {
		cp, err := ReadUnsigned(r)
		if err != nil {
			return nil, err
		}
		sb.Append(string(rune(cp)))
	}

	out := dst[:0]
	for _, ch := range []rune(sb.ToString()) {
		out = append(out, ch)
	}
	return out, nil
}
