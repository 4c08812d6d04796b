// Package grammar implements the grammar state machine (L3) driving
// per-complex-type encoding and decoding: for each complex type, a
// deterministic finite automaton over START/END/CHARACTERS events
// whose transitions are selected by event codes (spec.md §4.3).
//
// Rather than one hand-expanded procedure per complex type (the shape
// spec.md §9 calls out in the source this core was distilled from),
// each complex type here contributes a short declarative Field table;
// one generic interpreter (Encode/Decode in engine.go) walks the table
// the same way for every type. This is the "declarative state table"
// alternative spec.md §9 recommends explicitly.
package grammar

import "github.com/v2gkit/iso15118exi/bitio"

// GrammarID is an identifier given to a complex type, mirroring
// spec.md §4.3's "IDs are globally unique across the schema". Only
// some complex types carry one, and the numbering has gaps. Nothing in
// the wire format depends on these values (spec.md §9); they key the
// names kept in a Registry.
type GrammarID int

// Sentinel IDs shared by every complex type (spec.md §4.3).
const (
	// GrammarAwaitingEnd is the generic "awaiting END-element" state
	// every complex type's field sequence passes through.
	GrammarAwaitingEnd GrammarID = 3
	// GrammarTerminal is reached once END-element has been
	// written/read.
	GrammarTerminal GrammarID = 4
)

// Event is one admissible transition out of a grammar state: a START
// of some child (Encode/Decode run its value). END Element is not an
// Event value; the engine reserves the index after the last admissible
// event for it.
type Event struct {
	// Name identifies the child for diagnostics (decode traces,
	// error messages); it plays no role on the wire.
	Name string

	// Encode writes this event's value (a primitive or a nested
	// grammar's full field sequence). A nil Encode writes no value.
	Encode func(w *bitio.Writer) error

	// Decode reads this event's value. It does not set the owning
	// field's is_used flag: engine.go calls SetUsed(true) on the
	// Field/Branch this event belongs to before calling Decode.
	Decode func(r *bitio.Reader) error
}

// Branch is one arm of a Choice field: exactly one branch's IsUsed
// must be true on encode (spec.md §3.3), and the engine sets exactly
// one branch's SetUsed on decode.
type Branch struct {
	Event
	IsUsed  func() bool
	SetUsed func(bool)
}

// Field is one declared child position of a complex type's content
// model, in schema order. Exactly one of the three shapes applies:
//
//   - Required scalar/element: IsUsed is nil (or always true), Choice is nil.
//   - Optional scalar/element: IsUsed/SetUsed manage the is_used flag.
//   - Choice: Choice holds 2+ mutually exclusive branches; IsUsed/SetUsed
//     are nil on the Field itself (they live on each Branch). Optional
//     marks whether the whole choice may be absent (minOccurs=0 choice,
//     spec.md §4.3.2 rule 4).
type Field struct {
	Event

	// Optional is true for a true optional child: the state may move
	// past this position without taking any of its events.
	Optional bool

	// IsUsed/SetUsed manage a scalar/element field's presence flag.
	// Unused when Choice is non-empty.
	IsUsed  func() bool
	SetUsed func(bool)

	// Choice, when non-empty, makes this a choice field: Event and
	// IsUsed/SetUsed on the Field itself are ignored in favor of the
	// branches.
	Choice []Branch
}
