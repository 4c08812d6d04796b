package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

const ServiceScopeReqMaxLen = 64

// ServiceDiscoveryReqType optionally narrows the EVCC's service query.
type ServiceDiscoveryReqType struct {
	ServiceScope         []rune
	ServiceScopeIsUsed   bool
	ServiceCategory      ServiceCategoryType
	ServiceCategoryIsUsed bool
}

func (v *ServiceDiscoveryReqType) fields() []grammar.Field {
	return []grammar.Field{
		{
			Optional: true,
			IsUsed:   func() bool { return v.ServiceScopeIsUsed },
			SetUsed:  func(b bool) { v.ServiceScopeIsUsed = b },
			Event: grammar.Event{Name: "ServiceScope", Encode: func(w *bitio.Writer) error {
				return exi.WriteString(w, v.ServiceScope)
			}, Decode: func(r *bitio.Reader) error {
				buf := make([]rune, 0, ServiceScopeReqMaxLen)
				out, err := exi.ReadStringInto(r, buf[:ServiceScopeReqMaxLen])
				if err != nil {
					return err
				}
				v.ServiceScope = append([]rune(nil), out...)
				return nil
			}},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.ServiceCategoryIsUsed },
			SetUsed:  func(b bool) { v.ServiceCategoryIsUsed = b },
			Event: grammar.Event{Name: "ServiceCategory", Encode: func(w *bitio.Writer) error {
				return exi.WriteEnum(w, uint32(v.ServiceCategory), int(serviceCategoryVariantCount))
			}, Decode: func(r *bitio.Reader) error {
				ord, err := exi.ReadEnum(r, int(serviceCategoryVariantCount))
				if err != nil {
					return err
				}
				v.ServiceCategory = ServiceCategoryType(ord)
				return nil
			}},
		},
	}
}

func (v *ServiceDiscoveryReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ServiceDiscoveryReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// ChargeServiceType is a simplified rendition of the real schema's
// ChargeServiceType: it drops the repeated SupportedEnergyTransferMode
// list down to a single required mode to keep ServiceDiscoveryRes
// focused on exercising PaymentOptionList/ServiceList instead.
type ChargeServiceType struct {
	ServiceID      uint16
	ServiceCategory ServiceCategoryType
	FreeService    bool
	EnergyTransferMode EnergyTransferModeType
}

func (v *ChargeServiceType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ServiceID", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, uint64(v.ServiceID))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.ServiceID = uint16(val)
			return nil
		}}},
		{Event: grammar.Event{Name: "ServiceCategory", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.ServiceCategory), int(serviceCategoryVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(serviceCategoryVariantCount))
			if err != nil {
				return err
			}
			v.ServiceCategory = ServiceCategoryType(ord)
			return nil
		}}},
		{Event: grammar.Event{Name: "FreeService", Encode: func(w *bitio.Writer) error {
			return exi.WriteBool(w, v.FreeService)
		}, Decode: func(r *bitio.Reader) error {
			b, err := exi.ReadBool(r)
			if err != nil {
				return err
			}
			v.FreeService = b
			return nil
		}}},
		{Event: grammar.Event{Name: "EnergyTransferMode", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.EnergyTransferMode), int(energyTransferVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(energyTransferVariantCount))
			if err != nil {
				return err
			}
			v.EnergyTransferMode = EnergyTransferModeType(ord)
			return nil
		}}},
	}
}

// ServiceDiscoveryResType advertises the EVSE's payment options and
// available services.
type ServiceDiscoveryResType struct {
	ResponseCode     ResponseCodeType
	PaymentOptionList PaymentOptionListType
	ChargeService    ChargeServiceType
	ServiceList      ServiceListType
	ServiceListIsUsed bool
}

func (v *ServiceDiscoveryResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "PaymentOptionList", Encode: v.PaymentOptionList.Encode, Decode: v.PaymentOptionList.Decode}},
		{Event: grammar.Event{Name: "ChargeService", Encode: func(w *bitio.Writer) error {
			return grammar.Encode(w, v.ChargeService.fields())
		}, Decode: func(r *bitio.Reader) error {
			return grammar.Decode(r, v.ChargeService.fields())
		}}},
		{
			Optional: true,
			IsUsed:   func() bool { return v.ServiceListIsUsed },
			SetUsed:  func(b bool) { v.ServiceListIsUsed = b },
			Event:    grammar.Event{Name: "ServiceList", Encode: v.ServiceList.Encode, Decode: v.ServiceList.Decode},
		},
	}
}

func (v *ServiceDiscoveryResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ServiceDiscoveryResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// ServiceDetailReqType asks for the parameter sets of one service.
type ServiceDetailReqType struct {
	ServiceID uint16
}

func (v *ServiceDetailReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "ServiceID", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, uint64(v.ServiceID))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.ServiceID = uint16(val)
			return nil
		}}},
	}
}

func (v *ServiceDetailReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ServiceDetailReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// ServiceDetailResType replies with the service's identity; the real
// schema's ParameterSetList is out of scope here (see DESIGN.md).
type ServiceDetailResType struct {
	ResponseCode ResponseCodeType
	ServiceID    uint16
}

func (v *ServiceDetailResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "ServiceID", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, uint64(v.ServiceID))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.ServiceID = uint16(val)
			return nil
		}}},
	}
}

func (v *ServiceDetailResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ServiceDetailResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// PaymentServiceSelectionReqType is spec.md §8 scenario 4's worked
// example: a selected payment option plus a repeated service selection.
type PaymentServiceSelectionReqType struct {
	SelectedPaymentOption PaymentOptionType
	SelectedServiceList   SelectedServiceListType
}

func (v *PaymentServiceSelectionReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "SelectedPaymentOption", Encode: func(w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.SelectedPaymentOption), int(paymentOptionVariantCount))
		}, Decode: func(r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(paymentOptionVariantCount))
			if err != nil {
				return err
			}
			v.SelectedPaymentOption = PaymentOptionType(ord)
			return nil
		}}},
		{Event: grammar.Event{Name: "SelectedServiceList", Encode: v.SelectedServiceList.Encode, Decode: v.SelectedServiceList.Decode}},
	}
}

func (v *PaymentServiceSelectionReqType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.fields())
}
func (v *PaymentServiceSelectionReqType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.fields())
}

// PaymentServiceSelectionResType merely acknowledges the selection.
type PaymentServiceSelectionResType struct {
	ResponseCode ResponseCodeType
}

func (v *PaymentServiceSelectionResType) fields() []grammar.Field {
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

func (v *PaymentServiceSelectionResType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.fields())
}
func (v *PaymentServiceSelectionResType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.fields())
}
