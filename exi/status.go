// Package exi implements the base-type primitive layer (L2) of the EXI
// codec: the symmetric encode/decode pair for every EXI base type this
// schema uses, plus the EXI header. It is built on top of bitio.
package exi

import (
	"errors"
	"fmt"

	"github.com/v2gkit/iso15118exi/bitio"
)

// Status is the small closed taxonomy of outcomes spec.md §6.2 and §7
// define for this codec. The zero value is OK.
type Status int

const (
	// OK indicates the call completed without error.
	OK Status = iota
	// BufferEndOfData indicates the encoder exceeded the output
	// capacity or the decoder ran off the input.
	BufferEndOfData
	// Header indicates the decoder saw the wrong EXI distinguishing
	// bytes.
	Header
	// UnknownGrammarID indicates an internal grammar-table lookup by
	// ID found nothing registered (used by abstract-root substitution
	// dispatch, see v2g package).
	UnknownGrammarID
	// UnknownEventCode indicates the decoder read an event index not
	// admissible at the current grammar state.
	UnknownEventCode
	// UnknownEventForEncoding indicates the encoder was asked to emit
	// a message whose required choice has no is_used branch set.
	UnknownEventForEncoding
	// BitcountOutOfRange indicates a primitive was asked to read or
	// write more bits than this implementation supports.
	BitcountOutOfRange
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case BufferEndOfData:
		return "BUFFER_END_OF_DATA"
	case Header:
		return "HEADER"
	case UnknownGrammarID:
		return "UNKNOWN_GRAMMAR_ID"
	case UnknownEventCode:
		return "UNKNOWN_EVENT_CODE"
	case UnknownEventForEncoding:
		return "UNKNOWN_EVENT_FOR_ENCODING"
	case BitcountOutOfRange:
		return "BITCOUNT_OUT_OF_RANGE"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Error makes Status satisfy the error interface, so callers can
// either switch on the Status value or treat it as a plain error.
func (s Status) Error() string {
	return s.String()
}

// Sentinel errors for use with errors.Is, one per non-OK Status.
var (
	ErrBufferEndOfData         = BufferEndOfData
	ErrHeader                  = Header
	ErrUnknownGrammarID        = UnknownGrammarID
	ErrUnknownEventCode        = UnknownEventCode
	ErrUnknownEventForEncoding = UnknownEventForEncoding
	ErrBitcountOutOfRange      = BitcountOutOfRange
)

// StatusOf classifies err into this codec's Status taxonomy. Errors
// originating in bitio are mapped onto the matching Status; anything
// already a Status passes through; anything else is reported as
// BufferEndOfData, the only I/O-shaped failure bitio can produce.
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	var st Status
	if errors.As(err, &st) {
		return st
	}
	if errors.Is(err, bitio.ErrBufferEndOfData) {
		return BufferEndOfData
	}
	if errors.Is(err, bitio.ErrBitcountOutOfRange) {
		return BitcountOutOfRange
	}
	return BufferEndOfData
}
