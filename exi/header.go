package exi

import "github.com/v2gkit/iso15118exi/bitio"

// HeaderBytes are the two fixed bytes every produced EXI frame begins
// with: the EXI distinguishing bits plus the "schema-informed, no
// options" profile for this schema (spec.md §4.2, §6.1).
var HeaderBytes = [2]byte{0x80, 0x40}

// WriteHeader writes the fixed two-byte EXI header.
func WriteHeader(w *bitio.Writer) error {
	for _, b := range HeaderBytes {
		if err := w.WriteBits(8, uint32(b)); err != nil {
			return err
		}
	}
	return nil
}

// ReadHeader reads and validates the two-byte EXI header. Anything
// other than HeaderBytes is a Header error (spec.md §4.2).
func ReadHeader(r *bitio.Reader) error {
	for _, want := range HeaderBytes {
		got, err := r.ReadBits(8)
		if err != nil {
			return err
		}
		if byte(got) != want {
			return Header
		}
	}
	return nil
}
