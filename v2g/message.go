package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
)

// rootEventWidth and rootEventCode are schema-fixed (spec.md §4.3.6,
// §6.1): V2G_Message is the only root element this schema's translator
// ever assigns, at index 76 of the combined root-element space shared
// across the three sibling ISO 15118-2 schemas (see SPEC_FULL.md's
// Non-goals — those sibling schemas are out of scope, but the index
// they reserve is not, since it fixes this schema's wire width).
const (
	rootEventWidth = 7
	rootEventCode  = 76
)

// V2GMessageType is the document entry point: the root element wrapping
// a Header and a Body (spec.md §4.4/§6.1).
type V2GMessageType struct {
	Header MessageHeaderType
	Body   BodyType
}

// EncodeMessage writes the EXI header, the fixed-width root event
// code, then the Header and Body in sequence, finally byte-aligning
// the stream (spec.md §4.1 "Immediately after, the 7-bit root-event
// index...followed by the body...zero-padded from the last bit
// position to a byte boundary"). A failure is returned as an
// exi.Status (see exi.StatusOf).
func EncodeMessage(w *bitio.Writer, msg *V2GMessageType) error {
	if err := exi.WriteHeader(w); err != nil {
		return exi.StatusOf(err)
	}
	if err := exi.WriteNBit(w, rootEventWidth, rootEventCode); err != nil {
		return exi.StatusOf(err)
	}
	if err := msg.Header.Encode(w); err != nil {
		return exi.StatusOf(err)
	}
	if err := msg.Body.Encode(w); err != nil {
		return exi.StatusOf(err)
	}
	if err := w.Align(); err != nil {
		return exi.StatusOf(err)
	}
	return nil
}

// DecodeMessage reads and validates the header, reads the root event
// code and rejects anything but V2G_Message, then dispatches to
// Header and Body in turn. A failure is returned as an exi.Status.
func DecodeMessage(r *bitio.Reader, msg *V2GMessageType) error {
	if err := exi.ReadHeader(r); err != nil {
		return exi.StatusOf(err)
	}
	idx, err := exi.ReadNBit(r, rootEventWidth)
	if err != nil {
		return exi.StatusOf(err)
	}
	if idx != rootEventCode {
		return exi.UnknownEventCode
	}
	if err := msg.Header.Decode(r); err != nil {
		return exi.StatusOf(err)
	}
	if err := msg.Body.Decode(r); err != nil {
		return exi.StatusOf(err)
	}
	return nil
}
