package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

// ServiceMaxScopeLen and ServiceMaxNameLen bound the optional string
// fields of ServiceType.
const (
	ServiceMaxNameLen  = 32
	ServiceMaxScopeLen = 64
	ServiceListMax     = 8
)

// ServiceType describes one service an EVSE offers (spec.md §4.3.4
// "repeated children"; SPEC_FULL.md "Nested complex types supplemented").
type ServiceType struct {
	ServiceID         uint16
	ServiceName       []rune
	ServiceNameIsUsed bool
	ServiceCategory   ServiceCategoryType
	ServiceScope      []rune
	ServiceScopeIsUsed bool
	FreeService       bool
}

const serviceGrammarID grammar.GrammarID = 20

func (v *ServiceType) fields() []grammar.Field {
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
		{
			Optional: true,
			IsUsed:   func() bool { return v.ServiceNameIsUsed },
			SetUsed:  func(b bool) { v.ServiceNameIsUsed = b },
			Event: grammar.Event{Name: "ServiceName", Encode: func(w *bitio.Writer) error {
				return exi.WriteString(w, v.ServiceName)
			}, Decode: func(r *bitio.Reader) error {
				buf := make([]rune, 0, ServiceMaxNameLen)
				out, err := exi.ReadStringInto(r, buf[:ServiceMaxNameLen])
				if err != nil {
					return err
				}
				v.ServiceName = append([]rune(nil), out...)
				return nil
			}},
		},
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
		{
			Optional: true,
			IsUsed:   func() bool { return v.ServiceScopeIsUsed },
			SetUsed:  func(b bool) { v.ServiceScopeIsUsed = b },
			Event: grammar.Event{Name: "ServiceScope", Encode: func(w *bitio.Writer) error {
				return exi.WriteString(w, v.ServiceScope)
			}, Decode: func(r *bitio.Reader) error {
				buf := make([]rune, 0, ServiceMaxScopeLen)
				out, err := exi.ReadStringInto(r, buf[:ServiceMaxScopeLen])
				if err != nil {
					return err
				}
				v.ServiceScope = append([]rune(nil), out...)
				return nil
			}},
		},
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
	}
}

func (v *ServiceType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *ServiceType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// ServiceListType is the repeated-children wrapper around up to
// ServiceListMax ServiceType entries (spec.md §4.3.4).
type ServiceListType struct {
	Service    [ServiceListMax]ServiceType
	ServiceLen int
}

const serviceListGrammarID grammar.GrammarID = 21

func (v *ServiceListType) repeated() grammar.RepeatedList {
	return grammar.RepeatedList{
		MinOccurs: 1,
		MaxOccurs: ServiceListMax,
		Len:       func() int { return v.ServiceLen },
		SetLen:    func(n int) { v.ServiceLen = n },
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return v.Service[slot].Encode(w)
		},
		DecodeItem: func(slot int, r *bitio.Reader) error {
			return v.Service[slot].Decode(r)
		},
	}
}

func (v *ServiceListType) Encode(w *bitio.Writer) error { return grammar.EncodeRepeated(w, v.repeated()) }
func (v *ServiceListType) Decode(r *bitio.Reader) error { return grammar.DecodeRepeated(r, v.repeated()) }

// SelectedServiceListMax bounds SelectedServiceListType (spec.md §8
// scenario 4: "the SelectedServiceList grammar iterates through two
// of its 16 unrolled slots").
const SelectedServiceListMax = 16

// SelectedServiceType is one entry of a PaymentServiceSelectionReq's
// service selection, with an optional ParameterSetID (spec.md §8
// scenario 4).
type SelectedServiceType struct {
	ServiceID            uint16
	ParameterSetID       uint16
	ParameterSetIDIsUsed bool
}

const selectedServiceGrammarID grammar.GrammarID = 22

func (v *SelectedServiceType) fields() []grammar.Field {
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
		{
			Optional: true,
			IsUsed:   func() bool { return v.ParameterSetIDIsUsed },
			SetUsed:  func(b bool) { v.ParameterSetIDIsUsed = b },
			Event: grammar.Event{Name: "ParameterSetID", Encode: func(w *bitio.Writer) error {
				return exi.WriteUnsigned(w, uint64(v.ParameterSetID))
			}, Decode: func(r *bitio.Reader) error {
				val, err := exi.ReadUnsigned(r)
				if err != nil {
					return err
				}
				v.ParameterSetID = uint16(val)
				return nil
			}},
		},
	}
}

func (v *SelectedServiceType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *SelectedServiceType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// SelectedServiceListType wraps up to SelectedServiceListMax
// SelectedServiceType entries.
type SelectedServiceListType struct {
	SelectedService    [SelectedServiceListMax]SelectedServiceType
	SelectedServiceLen int
}

const selectedServiceListGrammarID grammar.GrammarID = 23

func (v *SelectedServiceListType) repeated() grammar.RepeatedList {
	return grammar.RepeatedList{
		MinOccurs: 1,
		MaxOccurs: SelectedServiceListMax,
		Len:       func() int { return v.SelectedServiceLen },
		SetLen:    func(n int) { v.SelectedServiceLen = n },
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return v.SelectedService[slot].Encode(w)
		},
		DecodeItem: func(slot int, r *bitio.Reader) error {
			return v.SelectedService[slot].Decode(r)
		},
	}
}

func (v *SelectedServiceListType) Encode(w *bitio.Writer) error {
	return grammar.EncodeRepeated(w, v.repeated())
}
func (v *SelectedServiceListType) Decode(r *bitio.Reader) error {
	return grammar.DecodeRepeated(r, v.repeated())
}

// PaymentOptionListMax bounds PaymentOptionListType: this schema only
// ever has two payment options (spec.md GLOSSARY, PaymentOptionType).
const PaymentOptionListMax = 2

// PaymentOptionListType wraps a repeated plain-enum child: its items
// have no sub-grammar of their own, only a primitive value, so
// EncodeItem/DecodeItem call the enum codec directly.
type PaymentOptionListType struct {
	PaymentOption    [PaymentOptionListMax]PaymentOptionType
	PaymentOptionLen int
}

const paymentOptionListGrammarID grammar.GrammarID = 24

func (v *PaymentOptionListType) repeated() grammar.RepeatedList {
	return grammar.RepeatedList{
		MinOccurs: 1,
		MaxOccurs: PaymentOptionListMax,
		Len:       func() int { return v.PaymentOptionLen },
		SetLen:    func(n int) { v.PaymentOptionLen = n },
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return exi.WriteEnum(w, uint32(v.PaymentOption[slot]), int(paymentOptionVariantCount))
		},
		DecodeItem: func(slot int, r *bitio.Reader) error {
			ord, err := exi.ReadEnum(r, int(paymentOptionVariantCount))
			if err != nil {
				return err
			}
			v.PaymentOption[slot] = PaymentOptionType(ord)
			return nil
		},
	}
}

func (v *PaymentOptionListType) Encode(w *bitio.Writer) error {
	return grammar.EncodeRepeated(w, v.repeated())
}
func (v *PaymentOptionListType) Decode(r *bitio.Reader) error {
	return grammar.DecodeRepeated(r, v.repeated())
}

// SubCertificatesMax and SubCertificateMaxLen bound the certificate
// chain carried by CertificateInstallationRes.
//
// spec.md §9 "Repeated binary ambiguity" leaves open whether a
// repeated binary child should be one flattened buffer (replicating a
// suspected source-generator bug) or an array of bounded binaries,
// one per slot. DESIGN.md resolves this as (b): an array, so each
// certificate keeps its own length and round-trips independently.
const (
	SubCertificatesMax   = 4
	SubCertificateMaxLen = 800
)

// SubCertificatesType is the resolved-as-array repeated bounded
// binary.
type SubCertificatesType struct {
	Certificate    [SubCertificatesMax][]byte
	CertificateLen int
}

const subCertificatesGrammarID grammar.GrammarID = 25

func (v *SubCertificatesType) repeated() grammar.RepeatedList {
	return grammar.RepeatedList{
		MinOccurs: 0,
		MaxOccurs: SubCertificatesMax,
		Len:       func() int { return v.CertificateLen },
		SetLen:    func(n int) { v.CertificateLen = n },
		EncodeItem: func(slot int, w *bitio.Writer) error {
			return exi.WriteBytes(w, v.Certificate[slot])
		},
		DecodeItem: func(slot int, r *bitio.Reader) error {
			buf := make([]byte, SubCertificateMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.Certificate[slot] = append([]byte(nil), out...)
			return nil
		},
	}
}

func (v *SubCertificatesType) Encode(w *bitio.Writer) error {
	return grammar.EncodeRepeated(w, v.repeated())
}
func (v *SubCertificatesType) Decode(r *bitio.Reader) error {
	return grammar.DecodeRepeated(r, v.repeated())
}
