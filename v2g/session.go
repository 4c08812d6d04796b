package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

// SessionIDMaxLen bounds the hexBinary SessionID carried in every
// message Header.
const SessionIDMaxLen = 8

// EVCCIDMaxLen bounds SessionSetupReq's EVCCID (spec.md §8 scenario 2).
const EVCCIDMaxLen = 6

// EVSEIDMaxLen bounds SessionSetupRes's EVSEID (spec.md §8 scenario 3).
const EVSEIDMaxLen = 37

// SessionSetupReqType is the EVCC's opening message (spec.md §8
// scenario 2).
type SessionSetupReqType struct {
	EVCCID [EVCCIDMaxLen]byte
	EVCCIDLen int
}

func (v *SessionSetupReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "EVCCID", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.EVCCID[:v.EVCCIDLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, EVCCIDMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.EVCCIDLen = copy(v.EVCCID[:], out)
			return nil
		}}},
	}
}

func (v *SessionSetupReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *SessionSetupReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// SessionSetupResType is the EVSE's reply (spec.md §8 scenario 3).
type SessionSetupResType struct {
	ResponseCode       ResponseCodeType
	EVSEID             []rune
	EVSEIDLen          int
	EVSETimeStamp      uint64
	EVSETimeStampIsUsed bool
}

func (v *SessionSetupResType) fields() []grammar.Field {
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
		{
			Optional: true,
			IsUsed:   func() bool { return v.EVSETimeStampIsUsed },
			SetUsed:  func(b bool) { v.EVSETimeStampIsUsed = b },
			Event: grammar.Event{Name: "EVSETimeStamp", Encode: func(w *bitio.Writer) error {
				return exi.WriteUnsigned(w, v.EVSETimeStamp)
			}, Decode: func(r *bitio.Reader) error {
				val, err := exi.ReadUnsigned(r)
				if err != nil {
					return err
				}
				v.EVSETimeStamp = val
				return nil
			}},
		},
	}
}

func (v *SessionSetupResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *SessionSetupResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// SessionStopReqType carries no content in ISO 15118-2; its grammar
// is the degenerate case of an immediate END Element.
type SessionStopReqType struct{}

func (v *SessionStopReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, nil) }
func (v *SessionStopReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, nil) }

// SessionStopResType is spec.md §8 scenario 1's worked example.
type SessionStopResType struct {
	ResponseCode ResponseCodeType
}

func (v *SessionStopResType) fields() []grammar.Field {
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

func (v *SessionStopResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *SessionStopResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }
