package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

// multiplierBias biases the schema-semantically-signed Multiplier
// field (range -3..+3) so it can be written as a small unsigned n-bit
// value; the same bias is subtracted on decode (spec.md §4.2 "Edge
// cases"). Biases like this are schema constants, not universal.
const multiplierBias = 3
const multiplierRange = 7 // -3..3 inclusive, biased to 0..6
const multiplierBits = 3  // ceil(log2(7))

// PhysicalValueType is the {multiplier, unit, integer value} pattern
// used for every physical quantity in this schema (voltage, current,
// power, energy, time) — see spec.md GLOSSARY.
type PhysicalValueType struct {
	Multiplier int8 // -3..3
	Unit       UnitSymbolType
	Value      int16
}

const physicalValueGrammarID grammar.GrammarID = 10

func (v *PhysicalValueType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "Multiplier", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, multiplierBits, uint32(int(v.Multiplier)+multiplierBias))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadNBit(r, multiplierBits)
			if err != nil {
				return err
			}
			if int(ord) >= multiplierRange {
				return exi.UnknownEventCode
			}
			v.Multiplier = int8(int(ord) - multiplierBias)
			return nil
		}}},
		{Event: grammar.Event{Name: "Unit", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.Unit), int(unitSymbolVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(unitSymbolVariantCount))
			if err != nil {
				return err
			}
			v.Unit = UnitSymbolType(ord)
			return nil
		}}},
		{Event: grammar.Event{Name: "Value", Encode: func(w *bitio.Writer) error {
			return exi.WriteSigned(w, int64(v.Value))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadSigned(r)
			if err != nil {
				return err
			}
			v.Value = int16(val)
			return nil
		}}},
	}
}

// Encode writes this PhysicalValueType's own field sequence and END.
func (v *PhysicalValueType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }

// Decode reads what Encode wrote.
func (v *PhysicalValueType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// DCEVStatusType is the EV's DC-charging status, reported inside
// PreChargeReq, CableCheckReq, CurrentDemandReq and others.
type DCEVStatusType struct {
	EVReady     bool
	EVErrorCode DCEVErrorCodeType
	EVRESSSOC   int8 // 0..100
}

const dcEVStatusGrammarID grammar.GrammarID = 11

func (v *DCEVStatusType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "EVReady", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.EVReady)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.EVReady = b
			return nil
		}}},
		{Event: grammar.Event{Name: "EVErrorCode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.EVErrorCode), int(dcEVErrorVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(dcEVErrorVariantCount))
			if err != nil {
				return err
			}
			v.EVErrorCode = DCEVErrorCodeType(ord)
			return nil
		}}},
		{Event: grammar.Event{Name: "EVRESSSOC", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 7, uint32(v.EVRESSSOC))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadNBit(r, 7)
			if err != nil {
				return err
			}
			v.EVRESSSOC = int8(ord)
			return nil
		}}},
	}
}

func (v *DCEVStatusType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *DCEVStatusType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// EVSEStatusType is the base type DC_EVSEStatusType and AC_EVSEStatusType
// extend (spec.md §4.3.5): a NotificationMaxDelay and EVSENotification,
// inlined by every derived type's own field table ahead of its own
// particles.
type EVSEStatusType struct {
	NotificationMaxDelay uint16
	EVSENotification     EVSENotificationType
}

func (v *EVSEStatusType) baseFields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "NotificationMaxDelay", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, uint64(v.NotificationMaxDelay))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.NotificationMaxDelay = uint16(val)
			return nil
		}}},
		{Event: grammar.Event{Name: "EVSENotification", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.EVSENotification), int(evseNotificationVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(evseNotificationVariantCount))
			if err != nil {
				return err
			}
			v.EVSENotification = EVSENotificationType(ord)
			return nil
		}}},
	}
}

// ACEVSEStatusType extends EVSEStatusType with the AC-specific
// RCD (residual current device) trip flag.
type ACEVSEStatusType struct {
	EVSEStatusType
	RCD bool
}

const acEVSEStatusGrammarID grammar.GrammarID = 12

func (v *ACEVSEStatusType) fields() []grammar.Field {
	fields := v.baseFields()
	return append(fields, grammar.Field{Event: grammar.Event{Name: "RCD", Encode: func(w *bitio.Writer) error {
		return exi.WriteBool(w, v.RCD)
	}, Decode: func(r *bitio.Reader) error {
		b, err := exi.ReadBool(r)
		if err != nil {
			return err
		}
		v.RCD = b
		return nil
	}}})
}

func (v *ACEVSEStatusType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ACEVSEStatusType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// DCEVSEStatusType extends EVSEStatusType with the DC-specific,
// optional isolation-monitoring result. It carries no EVSE status or
// fault code field.
type DCEVSEStatusType struct {
	EVSEStatusType
	IsolationStatus       IsolationLevelType
	IsolationStatusIsUsed bool
}

const dcEVSEStatusGrammarID grammar.GrammarID = 13

func (v *DCEVSEStatusType) fields() []grammar.Field {
	fields := v.baseFields()
	fields = append(fields, grammar.Field{
		Optional: true,
		IsUsed:   func() bool { return v.IsolationStatusIsUsed },
		SetUsed:  func(b bool) { v.IsolationStatusIsUsed = b },
		Event: grammar.Event{Name: "IsolationStatus", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.IsolationStatus), int(isolationVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(isolationVariantCount))
			if err != nil {
				return err
			}
			v.IsolationStatus = IsolationLevelType(ord)
			return nil
		}},
	})
	return fields
}

func (v *DCEVSEStatusType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *DCEVSEStatusType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }
