package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

const acEVSEChargeParameterGrammarID grammar.GrammarID = 34
const dcEVSEChargeParameterGrammarID grammar.GrammarID = 35

// ACEVSEChargeParameterType is the EVSE-side AC substitute offered by
// ChargeParameterDiscoveryRes.
type ACEVSEChargeParameterType struct {
	EVSEStatus         ACEVSEStatusType
	EVSENominalVoltage PhysicalValueType
	EVSEMaxCurrent     PhysicalValueType
}

func (v *ACEVSEChargeParameterType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "AC_EVSEStatus", Encode: v.EVSEStatus.Encode, Decode: v.EVSEStatus.Decode}},
		{Event: grammar.Event{Name: "EVSENominalVoltage", Encode: v.EVSENominalVoltage.Encode, Decode: v.EVSENominalVoltage.Decode}},
		{Event: grammar.Event{Name: "EVSEMaxCurrent", Encode: v.EVSEMaxCurrent.Encode, Decode: v.EVSEMaxCurrent.Decode}},
	}
}

func (v *ACEVSEChargeParameterType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ACEVSEChargeParameterType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// DCEVSEChargeParameterType is the EVSE-side DC substitute, carrying
// the DC power envelope the EV must charge within.
type DCEVSEChargeParameterType struct {
	EVSEStatus                    DCEVSEStatusType
	EVSEMaximumCurrentLimit       PhysicalValueType
	EVSEMaximumPowerLimit         PhysicalValueType
	EVSEMaximumPowerLimitIsUsed   bool
	EVSEMaximumVoltageLimit       PhysicalValueType
	EVSEMinimumCurrentLimit       PhysicalValueType
	EVSEMinimumVoltageLimit       PhysicalValueType
	EVSECurrentRegulationTolerance PhysicalValueType
	EVSECurrentRegulationToleranceIsUsed bool
	EVSEPeakCurrentRipple         PhysicalValueType
	EVSEEnergyToBeDelivered       PhysicalValueType
	EVSEEnergyToBeDeliveredIsUsed bool
}

func (v *DCEVSEChargeParameterType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "DC_EVSEStatus", Encode: v.EVSEStatus.Encode, Decode: v.EVSEStatus.Decode}},
		{Event: grammar.Event{Name: "EVSEMaximumCurrentLimit", Encode: v.EVSEMaximumCurrentLimit.Encode, Decode: v.EVSEMaximumCurrentLimit.Decode}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSEMaximumPowerLimitIsUsed },
			SetUsed:  func(b bool) { v.EVSEMaximumPowerLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVSEMaximumPowerLimit", Encode: v.EVSEMaximumPowerLimit.Encode, Decode: v.EVSEMaximumPowerLimit.Decode},
		},
		{Event: grammar.Event{Name: "EVSEMaximumVoltageLimit", Encode: v.EVSEMaximumVoltageLimit.Encode, Decode: v.EVSEMaximumVoltageLimit.Decode}},
		{Event: grammar.Event{Name: "EVSEMinimumCurrentLimit", Encode: v.EVSEMinimumCurrentLimit.Encode, Decode: v.EVSEMinimumCurrentLimit.Decode}},
		{Event: grammar.Event{Name: "EVSEMinimumVoltageLimit", Encode: v.EVSEMinimumVoltageLimit.Encode, Decode: v.EVSEMinimumVoltageLimit.Decode}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSECurrentRegulationToleranceIsUsed },
			SetUsed:  func(b bool) { v.EVSECurrentRegulationToleranceIsUsed = b },
			Event:    grammar.Event{Name: "EVSECurrentRegulationTolerance", Encode: v.EVSECurrentRegulationTolerance.Encode, Decode: v.EVSECurrentRegulationTolerance.Decode},
		},
		{Event: grammar.Event{Name: "EVSEPeakCurrentRipple", Encode: v.EVSEPeakCurrentRipple.Encode, Decode: v.EVSEPeakCurrentRipple.Decode}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSEEnergyToBeDeliveredIsUsed },
			SetUsed:  func(b bool) { v.EVSEEnergyToBeDeliveredIsUsed = b },
			Event:    grammar.Event{Name: "EVSEEnergyToBeDelivered", Encode: v.EVSEEnergyToBeDelivered.Encode, Decode: v.EVSEEnergyToBeDelivered.Decode},
		},
	}
}

func (v *DCEVSEChargeParameterType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *DCEVSEChargeParameterType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// EVSEChargeParameterChoice is the EVSE-side mirror of
// EVChargeParameterChoice, realizing the abstract EVSEChargeParameter
// substitution group.
type EVSEChargeParameterChoice struct {
	AC       ACEVSEChargeParameterType
	ACIsUsed bool
	DC       DCEVSEChargeParameterType
	DCIsUsed bool
}

func (v *EVSEChargeParameterChoice) branches() []grammar.Branch {
	return []grammar.Branch{
		{
			Event:   grammar.Event{Name: "AC_EVSEChargeParameter", Encode: v.AC.Encode, Decode: v.decodeAC},
			IsUsed:  func() bool { return v.ACIsUsed },
			SetUsed: func(b bool) { v.ACIsUsed = b },
		},
		{
			Event:   grammar.Event{Name: "DC_EVSEChargeParameter", Encode: v.DC.Encode, Decode: v.decodeDC},
			IsUsed:  func() bool { return v.DCIsUsed },
			SetUsed: func(b bool) { v.DCIsUsed = b },
		},
	}
}

func (v *EVSEChargeParameterChoice) decodeAC(r *bitio.Reader) error {
	if _, ok := typeRegistry.Lookup(acEVSEChargeParameterGrammarID); !ok {
		return exi.UnknownGrammarID
	}
	return v.AC.Decode(r)
}

func (v *EVSEChargeParameterChoice) decodeDC(r *bitio.Reader) error {
	if _, ok := typeRegistry.Lookup(dcEVSEChargeParameterGrammarID); !ok {
		return exi.UnknownGrammarID
	}
	return v.DC.Decode(r)
}

// ChargeParameterDiscoveryReqType is the EV's requested energy
// transfer mode plus its charge envelope (spec.md §4.3.6 abstract
// substitution worked through EVChargeParameterChoice).
type ChargeParameterDiscoveryReqType struct {
	RequestedEnergyTransferMode        EnergyTransferModeType
	MaxEntriesSAScheduleTuple          uint16
	MaxEntriesSAScheduleTupleIsUsed    bool
	EVChargeParameter                  EVChargeParameterChoice
}

func (v *ChargeParameterDiscoveryReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "RequestedEnergyTransferMode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.RequestedEnergyTransferMode), int(energyTransferVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(energyTransferVariantCount))
			if err != nil {
				return err
			}
			v.RequestedEnergyTransferMode = EnergyTransferModeType(ord)
			return nil
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.MaxEntriesSAScheduleTupleIsUsed },
			SetUsed:  func(b bool) { v.MaxEntriesSAScheduleTupleIsUsed = b },
			Event: grammar.Event{Name: "MaxEntriesSAScheduleTuple", Encode: func(w *bitio.Writer) error {
				return exi.WriteUnsigned(w, uint64(v.MaxEntriesSAScheduleTuple))
			}, Decode: func(r *bitio.Reader) error {
				val, err := exi.ReadUnsigned(r)
				if err != nil {
					return err
				}
				v.MaxEntriesSAScheduleTuple = uint16(val)
				return nil
			}},
		},
		{Choice: v.EVChargeParameter.branches()},
	}
}

func (v *ChargeParameterDiscoveryReqType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.fields())
}
func (v *ChargeParameterDiscoveryReqType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.fields())
}

// ChargeParameterDiscoveryResType answers with the EVSE's processing
// status, charge envelope, and the offered tariff schedule.
type ChargeParameterDiscoveryResType struct {
	ResponseCode          ResponseCodeType
	EVSEProcessing        EVSEProcessingType
	EVSEChargeParameter   EVSEChargeParameterChoice
	SAScheduleList        SAScheduleListType
	SAScheduleListIsUsed  bool
}

func (v *ChargeParameterDiscoveryResType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ResponseCode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, v.ResponseCode.encode(), int(responseCodeVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(responseCodeVariantCount))
			if err != nil {
				return err
			}
			code, err := decodeResponseCode(ord)
			if err != nil {
				return err
			}
			v.ResponseCode = code
			return nil
		}}},
		{Event: grammar.Event{Name: "EVSEProcessing", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.EVSEProcessing), int(processingVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(processingVariantCount))
			if err != nil {
				return err
			}
			v.EVSEProcessing = EVSEProcessingType(ord)
			return nil
		}}},
		{Choice: v.EVSEChargeParameter.branches()},
		{
			Optional: true,
			IsUsed:   func() bool { return v.SAScheduleListIsUsed },
			SetUsed:  func(b bool) { v.SAScheduleListIsUsed = b },
			Event:    grammar.Event{Name: "SAScheduleList", Encode: v.SAScheduleList.Encode, Decode: v.SAScheduleList.Decode},
		},
	}
}

func (v *ChargeParameterDiscoveryResType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.fields())
}
func (v *ChargeParameterDiscoveryResType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.fields())
}

// PowerDeliveryReqType tells the EVSE to start or stop energy flow.
type PowerDeliveryReqType struct {
	ReadyToChargeState bool
	SAScheduleTupleID  uint8
	ChargingProfileIsUsed bool
}

func (v *PowerDeliveryReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ReadyToChargeState", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.ReadyToChargeState)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.ReadyToChargeState = b
			return nil
		}}},
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
	}
}

func (v *PowerDeliveryReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PowerDeliveryReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// PowerDeliveryResType acknowledges PowerDeliveryReq and reports the
// resulting AC or DC EVSE status.
type PowerDeliveryResType struct {
	ResponseCode  ResponseCodeType
	ACEVSEStatus  ACEVSEStatusType
	ACEVSEStatusIsUsed bool
	DCEVSEStatus  DCEVSEStatusType
	DCEVSEStatusIsUsed bool
}

func (v *PowerDeliveryResType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ResponseCode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, v.ResponseCode.encode(), int(responseCodeVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(responseCodeVariantCount))
			if err != nil {
				return err
			}
			code, err := decodeResponseCode(ord)
			if err != nil {
				return err
			}
			v.ResponseCode = code
			return nil
		}}},
		{Choice: []grammar.Branch{
			{
				Event:   grammar.Event{Name: "AC_EVSEStatus", Encode: v.ACEVSEStatus.Encode, Decode: v.ACEVSEStatus.Decode},
				IsUsed:  func() bool { return v.ACEVSEStatusIsUsed },
				SetUsed: func(b bool) { v.ACEVSEStatusIsUsed = b },
			},
			{
				Event:   grammar.Event{Name: "DC_EVSEStatus", Encode: v.DCEVSEStatus.Encode, Decode: v.DCEVSEStatus.Decode},
				IsUsed:  func() bool { return v.DCEVSEStatusIsUsed },
				SetUsed: func(b bool) { v.DCEVSEStatusIsUsed = b },
			},
		}},
	}
}

func (v *PowerDeliveryResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PowerDeliveryResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// ChargingStatusReqType carries no content; the EVCC simply polls.
type ChargingStatusReqType struct{}

func (v *ChargingStatusReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, nil) }
func (v *ChargingStatusReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, nil) }

// ChargingStatusResType reports the EVSE's AC status during charging.
// It carries no meter reading.
type ChargingStatusResType struct {
	ResponseCode      ResponseCodeType
	EVSEID            []rune
	SAScheduleTupleID uint8
	ACEVSEStatus      ACEVSEStatusType
	ReceiptRequiredIsUsed bool
	ReceiptRequired   bool
}

func (v *ChargingStatusResType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ResponseCode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, v.ResponseCode.encode(), int(responseCodeVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(responseCodeVariantCount))
			if err != nil {
				return err
			}
			code, err := decodeResponseCode(ord)
			if err != nil {
				return err
			}
			v.ResponseCode = code
			return nil
		}}},
		{Event: grammar.Event{Name: "EVSEID", Encode: func(w *bitio.Writer) error {
			return exi.WriteString(w, v.EVSEID)
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]rune, 0, EVSEIDMaxLen)
			out, err := exi.ReadStringInto(r, buf[:EVSEIDMaxLen])
			if err != nil {
				return err
			}
			v.EVSEID = append([]rune(nil), out...)
			return nil
		}}},
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
		{Event: grammar.Event{Name: "AC_EVSEStatus", Encode: v.ACEVSEStatus.Encode, Decode: v.ACEVSEStatus.Decode}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.ReceiptRequiredIsUsed },
			SetUsed:  func(b bool) { v.ReceiptRequiredIsUsed = b },
			Event: grammar.Event{Name: "ReceiptRequired", Encode: func(w *bitio.Writer) error {
				return exi.WriteBool(w, v.ReceiptRequired)
			}, Decode: func(r *bitio.Reader) error {
				b, err := exi.ReadBool(r)
				if err != nil {
					return err
				}
				v.ReceiptRequired = b
				return nil
			}},
		},
	}
}

func (v *ChargingStatusResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ChargingStatusResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// MeteringReceiptReqType lets the EVCC countersign a metering reading.
type MeteringReceiptReqType struct {
	SessionID          [SessionIDMaxLen]byte
	SessionIDLen       int
	SAScheduleTupleIDIsUsed bool
	SAScheduleTupleID  uint8
	MeterReading       uint64
}

func (v *MeteringReceiptReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "SessionID", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.SessionID[:v.SessionIDLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, SessionIDMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.SessionIDLen = copy(v.SessionID[:], out)
			return nil
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.SAScheduleTupleIDIsUsed },
			SetUsed:  func(b bool) { v.SAScheduleTupleIDIsUsed = b },
			Event: grammar.Event{Name: "SAScheduleTupleID", Encode: func(w *bitio.Writer) error {
				return exi.WriteNBit(w, 8, uint32(v.SAScheduleTupleID))
			}, Decode: func(r *bitio.Reader) error {
				ord, err := exi.ReadNBit(r, 8)
				if err != nil {
					return err
				}
				v.SAScheduleTupleID = uint8(ord)
				return nil
			}},
		},
		{Event: grammar.Event{Name: "MeterReading", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, v.MeterReading)
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.MeterReading = val
			return nil
		}}},
	}
}

func (v *MeteringReceiptReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *MeteringReceiptReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// MeteringReceiptResType merely acknowledges the countersigned receipt.
type MeteringReceiptResType struct {
	ResponseCode ResponseCodeType
}

func (v *MeteringReceiptResType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ResponseCode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, v.ResponseCode.encode(), int(responseCodeVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(responseCodeVariantCount))
			if err != nil {
				return err
			}
			code, err := decodeResponseCode(ord)
			if err != nil {
				return err
			}
			v.ResponseCode = code
			return nil
		}}},
	}
}

func (v *MeteringReceiptResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *MeteringReceiptResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }
