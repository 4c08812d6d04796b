package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
)

func u16Field(name string, used bool, val *uint16) Field {
	return Field{
		Optional: true,
		IsUsed:   func() bool { return used },
		SetUsed:  func(b bool) { used = b },
		Event: Event{Name: name, Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 16, uint32(*val))
		}, Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			if err != nil {
				return err
			}
			*val = uint16(v)
			return nil
		}},
	}
}

func TestEncodeDecodeRequiredOnlySequence(t *testing.T) {
	var a, b uint16 = 10, 20
	fields := []Field{
		{Event: Event{Name: "A", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 16, uint32(a))
		}, Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			a = uint16(v)
			return err
		}}},
		{Event: Event{Name: "B", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 16, uint32(b))
		}, Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			b = uint16(v)
			return err
		}}},
	}

	buf := make([]byte, 16)
	w := bitio.NewWriter(buf)
	require.NoError(t, Encode(w, fields))

	var da, db uint16
	fields2 := []Field{
		{Event: Event{Name: "A", Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			da = uint16(v)
			return err
		}}},
		{Event: Event{Name: "B", Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			db = uint16(v)
			return err
		}}},
	}
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, Decode(r, fields2))
	assert.Equal(t, uint16(10), da)
	assert.Equal(t, uint16(20), db)
}

func TestOptionalFieldSkippedWhenNotUsed(t *testing.T) {
	var skipped uint16 = 99
	var required uint16 = 7
	fields := []Field{
		u16Field("Skipped", false, &skipped),
		{Event: Event{Name: "Required", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 16, uint32(required))
		}, Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			required = uint16(v)
			return err
		}}},
	}

	buf := make([]byte, 16)
	w := bitio.NewWriter(buf)
	require.NoError(t, Encode(w, fields))

	var gotRequired uint16
	var gotSkippedUsed bool
	decodeFields := []Field{
		{
			Optional: true,
			IsUsed:   func() bool { return false },
			SetUsed:  func(b bool) { gotSkippedUsed = b },
			Event: Event{Name: "Skipped", Decode: func(r *bitio.Reader) error {
				_, err := exi.ReadNBit(r, 16)
				return err
			}},
		},
		{Event: Event{Name: "Required", Decode: func(r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 16)
			gotRequired = uint16(v)
			return err
		}}},
	}
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, Decode(r, decodeFields))
	assert.Equal(t, uint16(7), gotRequired)
	assert.False(t, gotSkippedUsed)
}

func TestChoiceFieldDispatchesSelectedBranch(t *testing.T) {
	var which string
	fields := []Field{
		{Choice: []Branch{
			{Event: Event{Name: "First", Encode: func(w *bitio.Writer) error { return nil }},
				IsUsed: func() bool { return false }, SetUsed: func(b bool) {
					if b {
						which = "First"
					}
				}},
			{Event: Event{Name: "Second", Encode: func(w *bitio.Writer) error { return nil }},
				IsUsed: func() bool { return true }, SetUsed: func(b bool) {
					if b {
						which = "Second"
					}
				}},
		}},
	}

	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, Encode(w, fields))

	r := bitio.NewReader(w.Bytes())
	require.NoError(t, Decode(r, fields))
	assert.Equal(t, "Second", which)
}

func TestEncodeWithNoBranchUsedFails(t *testing.T) {
	fields := []Field{
		{Choice: []Branch{
			{Event: Event{Name: "Only"}, IsUsed: func() bool { return false }, SetUsed: func(bool) {}},
		}},
	}
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	err := Encode(w, fields)
	assert.ErrorIs(t, err, exi.UnknownEventForEncoding)
}

func TestDecodeRejectsOutOfRangeEventCode(t *testing.T) {
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, w.WriteBit(0))
	require.NoError(t, exi.WriteNBit(w, 1, 1))

	r := bitio.NewReader(w.Bytes())
	fields := []Field{
		{Event: Event{Name: "Only", Decode: func(r *bitio.Reader) error { return nil }}},
	}
	err := Decode(r, fields)
	assert.ErrorIs(t, err, exi.UnknownEventCode)
}

func TestEncodeRepeatedRejectsOverMaxOccurs(t *testing.T) {
	spec := RepeatedList{
		MinOccurs: 0,
		MaxOccurs: 2,
		Len:       func() int { return 3 },
		SetLen:    func(int) {},
		EncodeItem: func(slot int, w *bitio.Writer) error { return nil },
		DecodeItem: func(slot int, r *bitio.Reader) error { return nil },
	}
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	err := EncodeRepeated(w, spec)
	assert.ErrorIs(t, err, exi.BitcountOutOfRange)
}

func TestRepeatedRoundTripMinOccursOne(t *testing.T) {
	items := []uint16{11, 22, 33}
	n := len(items)
	spec := func(out *[]uint16) RepeatedList {
		return RepeatedList{
			MinOccurs: 1,
			MaxOccurs: 8,
			Len:       func() int { return n },
			SetLen:    func(l int) { n = l },
			EncodeItem: func(slot int, w *bitio.Writer) error {
				return exi.WriteNBit(w, 16, uint32(items[slot]))
			},
			DecodeItem: func(slot int, r *bitio.Reader) error {
				v, err := exi.ReadNBit(r, 16)
				if err != nil {
					return err
				}
				*out = append(*out, uint16(v))
				return nil
			},
		}
	}

	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeRepeated(w, spec(nil)))

	var decoded []uint16
	r := bitio.NewReader(w.Bytes())
	s := spec(&decoded)
	require.NoError(t, DecodeRepeated(r, s))
	assert.Equal(t, items, decoded)
}

// TestEncodeRepeatedSaturatedArrayEmitsFinalEndMarker pins the exact
// wire bytes for a fully saturated array (Len() == MaxOccurs): the
// state past the last slot only admits END (k=1) but still costs its
// own deviation-marker bit and 1-bit event code, per spec.md §4.3.1.
// Two 4-bit items (0xA, 0x5) over MaxOccurs=2, MinOccurs=0 (no
// blocking slot) pack to exactly two bytes with no padding:
//
//	slot0: dev=0 code=0 attr=0 item=1010
//	slot1: dev=0 code=0 attr=0 item=0101
//	tail:  dev=0 code=0                      (forced END, k=1)
func TestEncodeRepeatedSaturatedArrayEmitsFinalEndMarker(t *testing.T) {
	items := []uint32{0xA, 0x5}
	spec := RepeatedList{
		MinOccurs: 0,
		MaxOccurs: 2,
		Len:       func() int { return len(items) },
		SetLen:    func(int) {},
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return exi.WriteNBit(w, 4, items[slot])
		},
		DecodeItem: func(slot int, r *bitio.Reader) error { return nil },
	}

	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeRepeated(w, spec))
	assert.Equal(t, []byte{0x14, 0x14}, w.Bytes())
}

// TestDecodeRepeatedSaturatedArrayRoundTrip confirms the decoder
// consumes that same forced-END tail rather than stopping early or
// misreading subsequent data as another item.
func TestDecodeRepeatedSaturatedArrayRoundTrip(t *testing.T) {
	items := []uint32{0xA, 0x5}
	encodeSpec := RepeatedList{
		MinOccurs: 0,
		MaxOccurs: 2,
		Len:       func() int { return len(items) },
		SetLen:    func(int) {},
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return exi.WriteNBit(w, 4, items[slot])
		},
		DecodeItem: func(slot int, r *bitio.Reader) error { return nil },
	}
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeRepeated(w, encodeSpec))

	var decoded []uint32
	var length int
	decodeSpec := RepeatedList{
		MinOccurs: 0,
		MaxOccurs: 2,
		Len:       func() int { return length },
		SetLen:    func(n int) { length = n },
		EncodeItem: func(slot int, w *bitio.Writer) error { return nil },
		DecodeItem: func(slot int, r *bitio.Reader) error {
			v, err := exi.ReadNBit(r, 4)
			if err != nil {
				return err
			}
			decoded = append(decoded, v)
			return nil
		},
	}
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeRepeated(r, decodeSpec))
	assert.Equal(t, 2, length)
	assert.Equal(t, items, decoded)
}
