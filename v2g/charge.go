package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

// evChargeParameterBase holds the fields EVChargeParameterType declares
// before AC_EVChargeParameterType / DC_EVChargeParameterType extend it
// with their own particles (spec.md §4.3.5 "Inheritance by extension").
type evChargeParameterBase struct {
	DepartureTime       uint32
	DepartureTimeIsUsed bool
	EAmount             PhysicalValueType
	EVMaxVoltage        PhysicalValueType
	EVMaxCurrent        PhysicalValueType
	EVMinCurrent        PhysicalValueType
}

func (v *evChargeParameterBase) baseFields() []grammar.Field {
	return []grammar.Field{
		{
			Optional: true,
			IsUsed:   func() bool { return v.DepartureTimeIsUsed },
			SetUsed:  func(b bool) { v.DepartureTimeIsUsed = b },
			Event: grammar.Event{Name: "DepartureTime", Encode: func(w *bitio.Writer) error {
				return exi.WriteUnsigned(w, uint64(v.DepartureTime))
			}, Decode: func(r *bitio.Reader) error {
				val, err := exi.ReadUnsigned(r)
				if err != nil {
					return err
				}
				v.DepartureTime = uint32(val)
				return nil
			}},
		},
		{Event: grammar.Event{Name: "EAmount", Encode: v.EAmount.Encode, Decode: v.EAmount.Decode}},
		{Event: grammar.Event{Name: "EVMaxVoltage", Encode: v.EVMaxVoltage.Encode, Decode: v.EVMaxVoltage.Decode}},
		{Event: grammar.Event{Name: "EVMaxCurrent", Encode: v.EVMaxCurrent.Encode, Decode: v.EVMaxCurrent.Decode}},
		{Event: grammar.Event{Name: "EVMinCurrent", Encode: v.EVMinCurrent.Encode, Decode: v.EVMinCurrent.Decode}},
	}
}

// ACEVChargeParameterType is the AC substitute for abstract
// EVChargeParameter (spec.md §4.3.6): it adds no particles of its own.
type ACEVChargeParameterType struct {
	evChargeParameterBase
}

const acEVChargeParameterGrammarID grammar.GrammarID = 30

func (v *ACEVChargeParameterType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.baseFields())
}
func (v *ACEVChargeParameterType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.baseFields())
}

// DCEVChargeParameterType is the DC substitute for abstract
// EVChargeParameter, adding the DC-specific power-limit particles.
type DCEVChargeParameterType struct {
	evChargeParameterBase
	DCEVStatus               DCEVStatusType
	EVMaximumCurrentLimit    PhysicalValueType
	EVMaximumPowerLimit      PhysicalValueType
	EVMaximumPowerLimitIsUsed bool
	EVMaximumVoltageLimit    PhysicalValueType
	EVEnergyCapacity         PhysicalValueType
	EVEnergyCapacityIsUsed   bool
	EVEnergyRequest          PhysicalValueType
	EVEnergyRequestIsUsed    bool
	FullSOC                  uint8
	FullSOCIsUsed            bool
	BulkSOC                  uint8
	BulkSOCIsUsed            bool
}

const dcEVChargeParameterGrammarID grammar.GrammarID = 31

func (v *DCEVChargeParameterType) fields() []grammar.Field {
	fields := v.baseFields()
	fields = append(fields,
		grammar.Field{Event: grammar.Event{Name: "DC_EVStatus", Encode: v.DCEVStatus.Encode, Decode: v.DCEVStatus.Decode}},
		grammar.Field{Event: grammar.Event{Name: "EVMaximumCurrentLimit", Encode: v.EVMaximumCurrentLimit.Encode, Decode: v.EVMaximumCurrentLimit.Decode}},
		grammar.Field{
			Optional: true,
			IsUsed:   func() bool { return v.EVMaximumPowerLimitIsUsed },
			SetUsed:  func(b bool) { v.EVMaximumPowerLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVMaximumPowerLimit", Encode: v.EVMaximumPowerLimit.Encode, Decode: v.EVMaximumPowerLimit.Decode},
		},
		grammar.Field{Event: grammar.Event{Name: "EVMaximumVoltageLimit", Encode: v.EVMaximumVoltageLimit.Encode, Decode: v.EVMaximumVoltageLimit.Decode}},
		grammar.Field{
			Optional: true,
			IsUsed:   func() bool { return v.EVEnergyCapacityIsUsed },
			SetUsed:  func(b bool) { v.EVEnergyCapacityIsUsed = b },
			Event:    grammar.Event{Name: "EVEnergyCapacity", Encode: v.EVEnergyCapacity.Encode, Decode: v.EVEnergyCapacity.Decode},
		},
		grammar.Field{
			Optional: true,
			IsUsed:   func() bool { return v.EVEnergyRequestIsUsed },
			SetUsed:  func(b bool) { v.EVEnergyRequestIsUsed = b },
			Event:    grammar.Event{Name: "EVEnergyRequest", Encode: v.EVEnergyRequest.Encode, Decode: v.EVEnergyRequest.Decode},
		},
		grammar.Field{
			Optional: true,
			IsUsed:   func() bool { return v.FullSOCIsUsed },
			SetUsed:  func(b bool) { v.FullSOCIsUsed = b },
			Event: grammar.Event{Name: "FullSOC", Encode: func(w *bitio.Writer) error {
				return exi.WriteNBit(w, 7, uint32(v.FullSOC))
			}, Decode: func(r *bitio.Reader) error {
				ord, err := exi.ReadNBit(r, 7)
				if err != nil {
					return err
				}
				v.FullSOC = uint8(ord)
				return nil
			}},
		},
		grammar.Field{
			Optional: true,
			IsUsed:   func() bool { return v.BulkSOCIsUsed },
			SetUsed:  func(b bool) { v.BulkSOCIsUsed = b },
			Event: grammar.Event{Name: "BulkSOC", Encode: func(w *bitio.Writer) error {
				return exi.WriteNBit(w, 7, uint32(v.BulkSOC))
			}, Decode: func(r *bitio.Reader) error {
				ord, err := exi.ReadNBit(r, 7)
				if err != nil {
					return err
				}
				v.BulkSOC = uint8(ord)
				return nil
			}},
		},
	)
	return fields
}

func (v *DCEVChargeParameterType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *DCEVChargeParameterType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// EVChargeParameterChoice realises the abstract EVChargeParameter
// substitution group (spec.md §4.3.6): the containing grammar offers
// both concrete substitutes as sibling START events, and exactly one
// is_used flag selects which.
type EVChargeParameterChoice struct {
	AC       ACEVChargeParameterType
	ACIsUsed bool
	DC       DCEVChargeParameterType
	DCIsUsed bool
}

func (v *EVChargeParameterChoice) branches() []grammar.Branch {
	return []grammar.Branch{
		{
			Event:   grammar.Event{Name: "AC_EVChargeParameter", Encode: v.AC.Encode, Decode: v.decodeAC},
			IsUsed:  func() bool { return v.ACIsUsed },
			SetUsed: func(b bool) { v.ACIsUsed = b },
		},
		{
			Event:   grammar.Event{Name: "DC_EVChargeParameter", Encode: v.DC.Encode, Decode: v.decodeDC},
			IsUsed:  func() bool { return v.DCIsUsed },
			SetUsed: func(b bool) { v.DCIsUsed = b },
		},
	}
}

func (v *EVChargeParameterChoice) decodeAC(r *bitio.Reader) error {
	if _, ok := typeRegistry.Lookup(acEVChargeParameterGrammarID); !ok {
		return exi.UnknownGrammarID
	}
	return v.AC.Decode(r)
}

func (v *EVChargeParameterChoice) decodeDC(r *bitio.Reader) error {
	if _, ok := typeRegistry.Lookup(dcEVChargeParameterGrammarID); !ok {
		return exi.UnknownGrammarID
	}
	return v.DC.Decode(r)
}

// RelativeTimeIntervalType bounds a PMaxScheduleEntryType's validity
// window.
type RelativeTimeIntervalType struct {
	Start           uint32
	Duration        uint32
	DurationIsUsed bool
}

func (v *RelativeTimeIntervalType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "start", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, uint64(v.Start))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.Start = uint32(val)
			return nil
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.DurationIsUsed },
			SetUsed:  func(b bool) { v.DurationIsUsed = b },
			Event: grammar.Event{Name: "duration", Encode: func(w *bitio.Writer) error {
				return exi.WriteUnsigned(w, uint64(v.Duration))
			}, Decode: func(r *bitio.Reader) error {
				val, err := exi.ReadUnsigned(r)
				if err != nil {
					return err
				}
				v.Duration = uint32(val)
				return nil
			}},
		},
	}
}

// PMaxScheduleEntryType is one (time window, max power) pair of a
// PMaxScheduleType.
type PMaxScheduleEntryType struct {
	TimeInterval RelativeTimeIntervalType
	PMax         int16
}

func (v *PMaxScheduleEntryType) fields() []grammar.Field {
	fields := v.TimeInterval.fields()
	return append(fields, grammar.Field{Event: grammar.Event{Name: "PMax", Encode: func(w *bitio.Writer) error {
		return exi.WriteSigned(w, int64(v.PMax))
	}, Decode: func(r *bitio.Reader) error {
		val, err := exi.ReadSigned(r)
		if err != nil {
			return err
		}
		v.PMax = int16(val)
		return nil
	}}})
}

func (v *PMaxScheduleEntryType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PMaxScheduleEntryType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// PMaxScheduleMax bounds PMaxScheduleType's repeated entries.
const PMaxScheduleMax = 24

// PMaxScheduleType wraps a SAScheduleTuple's repeated PMaxScheduleEntry.
type PMaxScheduleType struct {
	Entry    [PMaxScheduleMax]PMaxScheduleEntryType
	EntryLen int
}

func (v *PMaxScheduleType) repeated() grammar.RepeatedList {
	return grammar.RepeatedList{
		MinOccurs: 1,
		MaxOccurs: PMaxScheduleMax,
		Len:       func() int { return v.EntryLen },
		SetLen:    func(n int) { v.EntryLen = n },
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return v.Entry[slot].Encode(w)
		},
		DecodeItem: func(slot int, r *bitio.Reader) error {
			return v.Entry[slot].Decode(r)
		},
	}
}

func (v *PMaxScheduleType) Encode(w *bitio.Writer) error { return grammar.EncodeRepeated(w, v.repeated()) }
func (v *PMaxScheduleType) Decode(r *bitio.Reader) error { return grammar.DecodeRepeated(r, v.repeated()) }

// SalesTariffType is a simplified pass-through of the real schema's
// much larger SalesTariffType: an identifier and an optional
// human-readable description, enough to exercise an optional nested
// complex child inside SAScheduleTupleType.
const SalesTariffDescriptionMax = 32

type SalesTariffType struct {
	SalesTariffID          uint8
	SalesTariffDescription []rune
	SalesTariffDescriptionIsUsed bool
}

func (v *SalesTariffType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "SalesTariffID", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 8, uint32(v.SalesTariffID))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadNBit(r, 8)
			if err != nil {
				return err
			}
			v.SalesTariffID = uint8(ord)
			return nil
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.SalesTariffDescriptionIsUsed },
			SetUsed:  func(b bool) { v.SalesTariffDescriptionIsUsed = b },
			Event: grammar.Event{Name: "SalesTariffDescription", Encode: func(w *bitio.Writer) error {
				return exi.WriteString(w, v.SalesTariffDescription)
			}, Decode: func(r *bitio.Reader) error {
				buf := make([]rune, 0, SalesTariffDescriptionMax)
				out, err := exi.ReadStringInto(r, buf[:SalesTariffDescriptionMax])
				if err != nil {
					return err
				}
				v.SalesTariffDescription = append([]rune(nil), out...)
				return nil
			}},
		},
	}
}

func (v *SalesTariffType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *SalesTariffType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// SAScheduleTupleType pairs a schedule-of-record ID with its
// PMaxSchedule and an optional SalesTariff.
type SAScheduleTupleType struct {
	SAScheduleTupleID uint8
	PMaxSchedule      PMaxScheduleType
	SalesTariff       SalesTariffType
	SalesTariffIsUsed bool
}

const saScheduleTupleGrammarID grammar.GrammarID = 32

func (v *SAScheduleTupleType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "SAScheduleTupleID", Encode: func(w *bitio.Writer) error {
			return exi.WriteNBit(w, 8, uint32(v.SAScheduleTupleID))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadNBit(r, 8)
			if err != nil {
				return err
			}
			v.SAScheduleTupleID = uint8(ord)
			return nil
		}}},
		{Event: grammar.Event{Name: "PMaxSchedule", Encode: v.PMaxSchedule.Encode, Decode: v.PMaxSchedule.Decode}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.SalesTariffIsUsed },
			SetUsed:  func(b bool) { v.SalesTariffIsUsed = b },
			Event:    grammar.Event{Name: "SalesTariff", Encode: v.SalesTariff.Encode, Decode: v.SalesTariff.Decode},
		},
	}
}

func (v *SAScheduleTupleType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *SAScheduleTupleType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// SAScheduleListMax bounds SAScheduleListType.
const SAScheduleListMax = 3

// SAScheduleListType wraps up to SAScheduleListMax SAScheduleTupleType
// entries, offered by ChargeParameterDiscoveryRes.
type SAScheduleListType struct {
	Tuple    [SAScheduleListMax]SAScheduleTupleType
	TupleLen int
}

const saScheduleListGrammarID grammar.GrammarID = 33

func (v *SAScheduleListType) repeated() grammar.RepeatedList {
	return grammar.RepeatedList{
		MinOccurs: 1,
		MaxOccurs: SAScheduleListMax,
		Len:       func() int { return v.TupleLen },
		SetLen:    func(n int) { v.TupleLen = n },
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return v.Tuple[slot].Encode(w)
		},
		DecodeItem: func(slot int, r *bitio.Reader) error {
			return v.Tuple[slot].Decode(r)
		},
	}
}

func (v *SAScheduleListType) Encode(w *bitio.Writer) error { return grammar.EncodeRepeated(w, v.repeated()) }
func (v *SAScheduleListType) Decode(r *bitio.Reader) error { return grammar.DecodeRepeated(r, v.repeated()) }
