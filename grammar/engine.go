package grammar

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
)

// resolvedEvent is one entry of the admissible-event list computed at
// a given grammar state: either a plain field or one branch of a
// choice field occupying that position.
type resolvedEvent struct {
	fieldIndex int
	isUsed     func() bool
	setUsed    func(bool)
	encode     func(w *bitio.Writer) error
	decode     func(r *bitio.Reader) error
}

// admissibleRun scans fields starting at index i and returns the
// events admissible at this grammar state, per spec.md §4.3.1/§4.3.2:
// every consecutive skippable (optional, or optional-choice) field
// contributes its event(s) and scanning continues; the first
// non-skippable field contributes its event(s) and scanning stops
// there (no END is reachable past a mandatory child); if scanning
// runs off the end of the table, END Element is admissible.
func admissibleRun(fields []Field, i int) (events []resolvedEvent, endAdmissible bool) {
	for ; i < len(fields); i++ {
		f := fields[i]

		if len(f.Choice) > 0 {
			for _, b := range f.Choice {
				events = append(events, resolvedEvent{
					fieldIndex: i,
					isUsed:     b.IsUsed,
					setUsed:    b.SetUsed,
					encode:     b.Encode,
					decode:     b.Decode,
				})
			}
			if f.Optional {
				continue
			}
			return events, false
		}

		events = append(events, resolvedEvent{
			fieldIndex: i,
			isUsed:     f.IsUsed,
			setUsed:    f.SetUsed,
			encode:     f.Encode,
			decode:     f.Decode,
		})
		if f.Optional {
			continue
		}
		return events, false
	}
	return events, true
}

// Encode runs the generic state-machine interpreter over fields: at
// each state it picks exactly one admissible event per spec.md
// §4.3.2's dispatch rules, emits the 0-bit deviation marker and the
// ceil(log2(k))-bit event code, and (for a START event) the 0-bit
// "no attributes" marker before delegating to that event's Encode.
// Returns once END Element has been chosen.
func Encode(w *bitio.Writer, fields []Field) error {
	i := 0
	for {
		events, endOK := admissibleRun(fields, i)
		k := len(events)
		if endOK {
			k++
		}

		chosen := -1
		for idx, ev := range events {
			if ev.isUsed == nil || ev.isUsed() {
				chosen = idx
				break
			}
		}

		width := exi.EnumBitWidth(k)
		if err := w.WriteBit(0); err != nil {
			return err
		}

		if chosen == -1 {
			if !endOK {
				return exi.UnknownEventForEncoding
			}
			if err := exi.WriteNBit(w, width, uint32(k-1)); err != nil {
				return err
			}
			return nil
		}

		if err := exi.WriteNBit(w, width, uint32(chosen)); err != nil {
			return err
		}
		if err := w.WriteBit(0); err != nil {
			return err
		}

		ev := events[chosen]
		if ev.encode != nil {
			if err := ev.encode(w); err != nil {
				return err
			}
		}
		i = ev.fieldIndex + 1
	}
}

// Decode mirrors Encode: read the deviation-marker bit, the event
// code, and (for a non-END event) the attribute-marker bit, then
// dispatch to the matching event's Decode and set its is_used flag
// (spec.md §4.3.3). An out-of-range index is UnknownEventCode.
func Decode(r *bitio.Reader, fields []Field) error {
	i := 0
	for {
		events, endOK := admissibleRun(fields, i)
		k := len(events)
		if endOK {
			k++
		}
		width := exi.EnumBitWidth(k)

		marker, err := r.ReadBit()
		if err != nil {
			return err
		}
		if marker != 0 {
			return exi.UnknownEventCode
		}

		idx, err := exi.ReadNBit(r, width)
		if err != nil {
			return err
		}
		if int(idx) >= k {
			return exi.UnknownEventCode
		}
		if endOK && int(idx) == k-1 {
			return nil
		}

		attr, err := r.ReadBit()
		if err != nil {
			return err
		}
		if attr != 0 {
			return exi.UnknownEventCode
		}

		ev := events[idx]
		if ev.setUsed != nil {
			ev.setUsed(true)
		}
		if ev.decode != nil {
			if err := ev.decode(r); err != nil {
				return err
			}
		}
		i = ev.fieldIndex + 1
	}
}

// RepeatedList describes a maxOccurs-bounded repeated child, unrolled
// into MaxOccurs sequential states per spec.md §4.3.4. The wrapping
// complex type (e.g. SelectedServiceList) has no other content, so
// this runs standalone rather than through a Field table: every slot
// after the first offers a binary {item, END Element} choice; the
// first offers only {item} when MinOccurs is 1.
type RepeatedList struct {
	MinOccurs  int
	MaxOccurs  int
	Len        func() int
	SetLen     func(int)
	EncodeItem func(slot int, w *bitio.Writer) error
	DecodeItem func(slot int, r *bitio.Reader) error
}

// EncodeRepeated writes the repeated child per spec.md §4.3.4. Fails
// with BitcountOutOfRange if the record's length exceeds MaxOccurs
// (spec.md §8 "An array whose array_len exceeds maxOccurs must fail
// the encoder").
func EncodeRepeated(w *bitio.Writer, spec RepeatedList) error {
	n := spec.Len()
	if n > spec.MaxOccurs {
		return exi.BitcountOutOfRange
	}

	for slot := 0; slot < spec.MaxOccurs; slot++ {
		blocking := slot == 0 && spec.MinOccurs == 1
		hasItem := slot < n

		if blocking {
			if err := w.WriteBit(0); err != nil {
				return err
			}
			if err := exi.WriteNBit(w, 1, 0); err != nil {
				return err
			}
			if err := w.WriteBit(0); err != nil {
				return err
			}
			if err := spec.EncodeItem(slot, w); err != nil {
				return err
			}
			continue
		}

		if err := w.WriteBit(0); err != nil {
			return err
		}
		if !hasItem {
			if err := exi.WriteNBit(w, 1, 1); err != nil {
				return err
			}
			return nil
		}
		if err := exi.WriteNBit(w, 1, 0); err != nil {
			return err
		}
		if err := w.WriteBit(0); err != nil {
			return err
		}
		if err := spec.EncodeItem(slot, w); err != nil {
			return err
		}
	}

	// The array is saturated at MaxOccurs: every slot held an item, so
	// the state past the last one admits only END (k=1). That state
	// still costs its own deviation-marker bit and event code, per
	// spec.md §4.3.1's "k=1 still costs 1 bit" rule — it is not free
	// just because MaxOccurs bounds the count.
	if err := w.WriteBit(0); err != nil {
		return err
	}
	return exi.WriteNBit(w, 1, 0)
}

// DecodeRepeated reads what EncodeRepeated wrote.
func DecodeRepeated(r *bitio.Reader, spec RepeatedList) error {
	for slot := 0; slot < spec.MaxOccurs; slot++ {
		blocking := slot == 0 && spec.MinOccurs == 1

		marker, err := r.ReadBit()
		if err != nil {
			return err
		}
		if marker != 0 {
			return exi.UnknownEventCode
		}

		if blocking {
			idx, err := exi.ReadNBit(r, 1)
			if err != nil {
				return err
			}
			if idx != 0 {
				return exi.UnknownEventCode
			}
			if attr, err := r.ReadBit(); err != nil {
				return err
			} else if attr != 0 {
				return exi.UnknownEventCode
			}
			if err := spec.DecodeItem(slot, r); err != nil {
				return err
			}
			continue
		}

		idx, err := exi.ReadNBit(r, 1)
		if err != nil {
			return err
		}
		if idx == 1 {
			spec.SetLen(slot)
			return nil
		}
		if attr, err := r.ReadBit(); err != nil {
			return err
		} else if attr != 0 {
			return exi.UnknownEventCode
		}
		if err := spec.DecodeItem(slot, r); err != nil {
			return err
		}
	}

	// Mirror of EncodeRepeated's saturated-array tail: consume the
	// forced END-only state past the last slot.
	marker, err := r.ReadBit()
	if err != nil {
		return err
	}
	if marker != 0 {
		return exi.UnknownEventCode
	}
	idx, err := exi.ReadNBit(r, 1)
	if err != nil {
		return err
	}
	if idx != 0 {
		return exi.UnknownEventCode
	}

	spec.SetLen(spec.MaxOccurs)
	return nil
}
