package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

// CableCheckReqType reports EV readiness while the EVSE runs its
// insulation test on the charging cable.
type CableCheckReqType struct {
	DCEVStatus DCEVStatusType
}

func (v *CableCheckReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "DC_EVStatus", Encode: v.DCEVStatus.Encode, Decode: v.DCEVStatus.Decode}},
	}
}

func (v *CableCheckReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *CableCheckReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// CableCheckResType reports whether the cable check has finished.
type CableCheckResType struct {
	ResponseCode   ResponseCodeType
	EVSEProcessing EVSEProcessingType
}

func (v *CableCheckResType) fields() []grammar.Field {
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
	}
}

func (v *CableCheckResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *CableCheckResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// PreChargeReqType is spec.md §8 scenario 5's worked example: the EV's
// status plus its target precharge voltage and current.
type PreChargeReqType struct {
	DCEVStatus     DCEVStatusType
	EVTargetVoltage PhysicalValueType
	EVTargetCurrent PhysicalValueType
}

func (v *PreChargeReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "DC_EVStatus", Encode: v.DCEVStatus.Encode, Decode: v.DCEVStatus.Decode}},
		{Event: grammar.Event{Name: "EVTargetVoltage", Encode: v.EVTargetVoltage.Encode, Decode: v.EVTargetVoltage.Decode}},
		{Event: grammar.Event{Name: "EVTargetCurrent", Encode: v.EVTargetCurrent.Encode, Decode: v.EVTargetCurrent.Decode}},
	}
}

func (v *PreChargeReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PreChargeReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// PreChargeResType reports the EVSE's DC status and the voltage it is
// presently outputting, so the EV can confirm a match before closing
// its main contactor.
type PreChargeResType struct {
	ResponseCode       ResponseCodeType
	DCEVSEStatus       DCEVSEStatusType
	EVSEPresentVoltage PhysicalValueType
}

func (v *PreChargeResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "DC_EVSEStatus", Encode: v.DCEVSEStatus.Encode, Decode: v.DCEVSEStatus.Decode}},
		{Event: grammar.Event{Name: "EVSEPresentVoltage", Encode: v.EVSEPresentVoltage.Encode, Decode: v.EVSEPresentVoltage.Decode}},
	}
}

func (v *PreChargeResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PreChargeResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// CurrentDemandReqType is sent repeatedly through the DC charging loop,
// carrying the EV's live target setpoints and SOC progress.
type CurrentDemandReqType struct {
	DCEVStatus                DCEVStatusType
	EVTargetCurrent           PhysicalValueType
	EVMaximumVoltageLimit     PhysicalValueType
	EVMaximumVoltageLimitIsUsed bool
	EVMaximumCurrentLimit     PhysicalValueType
	EVMaximumCurrentLimitIsUsed bool
	EVMaximumPowerLimit       PhysicalValueType
	EVMaximumPowerLimitIsUsed bool
	BulkChargingComplete      bool
	BulkChargingCompleteIsUsed bool
	ChargingComplete          bool
	RemainingTimeToFullSoC    PhysicalValueType
	RemainingTimeToFullSoCIsUsed bool
	RemainingTimeToBulkSoC    PhysicalValueType
	RemainingTimeToBulkSoCIsUsed bool
	EVTargetVoltage           PhysicalValueType
}

func (v *CurrentDemandReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "DC_EVStatus", Encode: v.DCEVStatus.Encode, Decode: v.DCEVStatus.Decode}},
		{Event: grammar.Event{Name: "EVTargetCurrent", Encode: v.EVTargetCurrent.Encode, Decode: v.EVTargetCurrent.Decode}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVMaximumVoltageLimitIsUsed },
			SetUsed:  func(b bool) { v.EVMaximumVoltageLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVMaximumVoltageLimit", Encode: v.EVMaximumVoltageLimit.Encode, Decode: v.EVMaximumVoltageLimit.Decode},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVMaximumCurrentLimitIsUsed },
			SetUsed:  func(b bool) { v.EVMaximumCurrentLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVMaximumCurrentLimit", Encode: v.EVMaximumCurrentLimit.Encode, Decode: v.EVMaximumCurrentLimit.Decode},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVMaximumPowerLimitIsUsed },
			SetUsed:  func(b bool) { v.EVMaximumPowerLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVMaximumPowerLimit", Encode: v.EVMaximumPowerLimit.Encode, Decode: v.EVMaximumPowerLimit.Decode},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.BulkChargingCompleteIsUsed },
			SetUsed:  func(b bool) { v.BulkChargingCompleteIsUsed = b },
			Event: grammar.Event{Name: "BulkChargingComplete", Encode: func(w *bitio.Writer) error {
				return exi.WriteBool(w, v.BulkChargingComplete)
			}, Decode: func(r *bitio.Reader) error {
				b, err := exi.ReadBool(r)
				if err != nil {
					return err
				}
				v.BulkChargingComplete = b
				return nil
			}},
		},
		{Event: grammar.Event{Name: "ChargingComplete", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.ChargingComplete)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.ChargingComplete = b
			return nil
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.RemainingTimeToFullSoCIsUsed },
			SetUsed:  func(b bool) { v.RemainingTimeToFullSoCIsUsed = b },
			Event:    grammar.Event{Name: "RemainingTimeToFullSoC", Encode: v.RemainingTimeToFullSoC.Encode, Decode: v.RemainingTimeToFullSoC.Decode},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.RemainingTimeToBulkSoCIsUsed },
			SetUsed:  func(b bool) { v.RemainingTimeToBulkSoCIsUsed = b },
			Event:    grammar.Event{Name: "RemainingTimeToBulkSoC", Encode: v.RemainingTimeToBulkSoC.Encode, Decode: v.RemainingTimeToBulkSoC.Decode},
		},
		{Event: grammar.Event{Name: "EVTargetVoltage", Encode: v.EVTargetVoltage.Encode, Decode: v.EVTargetVoltage.Decode}},
	}
}

func (v *CurrentDemandReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *CurrentDemandReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// CurrentDemandResType reports the EVSE's live output and the limits
// it is operating against.
type CurrentDemandResType struct {
	ResponseCode              ResponseCodeType
	DCEVSEStatus              DCEVSEStatusType
	EVSEPresentVoltage        PhysicalValueType
	EVSEPresentCurrent        PhysicalValueType
	EVSECurrentLimitAchieved  bool
	EVSEVoltageLimitAchieved  bool
	EVSEPowerLimitAchieved    bool
	EVSEMaximumVoltageLimit      PhysicalValueType
	EVSEMaximumVoltageLimitIsUsed bool
	EVSEMaximumCurrentLimit      PhysicalValueType
	EVSEMaximumCurrentLimitIsUsed bool
	EVSEMaximumPowerLimit        PhysicalValueType
	EVSEMaximumPowerLimitIsUsed  bool
	EVSEID                    []rune
	SAScheduleTupleID         uint8
	SAScheduleTupleIDIsUsed   bool
}

func (v *CurrentDemandResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "DC_EVSEStatus", Encode: v.DCEVSEStatus.Encode, Decode: v.DCEVSEStatus.Decode}},
		{Event: grammar.Event{Name: "EVSEPresentVoltage", Encode: v.EVSEPresentVoltage.Encode, Decode: v.EVSEPresentVoltage.Decode}},
		{Event: grammar.Event{Name: "EVSEPresentCurrent", Encode: v.EVSEPresentCurrent.Encode, Decode: v.EVSEPresentCurrent.Decode}},
		{Event: grammar.Event{Name: "EVSECurrentLimitAchieved", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.EVSECurrentLimitAchieved)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.EVSECurrentLimitAchieved = b
			return nil
		}}},
		{Event: grammar.Event{Name: "EVSEVoltageLimitAchieved", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.EVSEVoltageLimitAchieved)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.EVSEVoltageLimitAchieved = b
			return nil
		}}},
		{Event: grammar.Event{Name: "EVSEPowerLimitAchieved", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.EVSEPowerLimitAchieved)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.EVSEPowerLimitAchieved = b
			return nil
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSEMaximumVoltageLimitIsUsed },
			SetUsed:  func(b bool) { v.EVSEMaximumVoltageLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVSEMaximumVoltageLimit", Encode: v.EVSEMaximumVoltageLimit.Encode, Decode: v.EVSEMaximumVoltageLimit.Decode},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSEMaximumCurrentLimitIsUsed },
			SetUsed:  func(b bool) { v.EVSEMaximumCurrentLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVSEMaximumCurrentLimit", Encode: v.EVSEMaximumCurrentLimit.Encode, Decode: v.EVSEMaximumCurrentLimit.Decode},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSEMaximumPowerLimitIsUsed },
			SetUsed:  func(b bool) { v.EVSEMaximumPowerLimitIsUsed = b },
			Event:    grammar.Event{Name: "EVSEMaximumPowerLimit", Encode: v.EVSEMaximumPowerLimit.Encode, Decode: v.EVSEMaximumPowerLimit.Decode},
		},
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
	}
}

func (v *CurrentDemandResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *CurrentDemandResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// WeldingDetectionReqType reports EV status while the EVSE checks for
// welded contactors after power-off.
type WeldingDetectionReqType struct {
	DCEVStatus DCEVStatusType
}

func (v *WeldingDetectionReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "DC_EVStatus", Encode: v.DCEVStatus.Encode, Decode: v.DCEVStatus.Decode}},
	}
}

func (v *WeldingDetectionReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *WeldingDetectionReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// WeldingDetectionResType reports the EVSE's DC status and measured
// voltage during the contactor-welding check.
type WeldingDetectionResType struct {
	ResponseCode       ResponseCodeType
	DCEVSEStatus       DCEVSEStatusType
	EVSEPresentVoltage PhysicalValueType
}

func (v *WeldingDetectionResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "DC_EVSEStatus", Encode: v.DCEVSEStatus.Encode, Decode: v.DCEVSEStatus.Decode}},
		{Event: grammar.Event{Name: "EVSEPresentVoltage", Encode: v.EVSEPresentVoltage.Encode, Decode: v.EVSEPresentVoltage.Decode}},
	}
}

func (v *WeldingDetectionResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *WeldingDetectionResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }
