package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

const messageHeaderGrammarID grammar.GrammarID = 1

// SignatureMaxLen bounds the optional XML digital signature value
// carried by some Header instances during the payment/certificate
// exchange. A full XMLDSig structure is out of scope (spec.md §1
// Non-goals); only its signature value octets are modeled here.
const SignatureMaxLen = 64

// MessageHeaderType precedes every Body: a mandatory SessionID plus an
// optional EVSE notification and an optional signature value.
type MessageHeaderType struct {
	SessionID    [SessionIDMaxLen]byte
	SessionIDLen int

	Notification       EVSENotificationType
	NotificationIsUsed bool

	Signature       [SignatureMaxLen]byte
	SignatureLen    int
	SignatureIsUsed bool
}

func (v *MessageHeaderType) fields() []grammar.Field {
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
			IsUsed:   func() bool { return v.NotificationIsUsed },
			SetUsed:  func(b bool) { v.NotificationIsUsed = b },
			Event: grammar.Event{Name: "Notification", Encode: func(w *bitio.Writer) error {
				return exi.WriteEnum(w, uint32(v.Notification), int(evseNotificationVariantCount))
			}, Decode: func(r *bitio.Reader) error {
				ord, err := exi.ReadEnum(r, int(evseNotificationVariantCount))
				if err != nil {
					return err
				}
				v.Notification = EVSENotificationType(ord)
				return nil
			}},
		},
		{
			Optional: true,
			IsUsed:   func() bool { return v.SignatureIsUsed },
			SetUsed:  func(b bool) { v.SignatureIsUsed = b },
			Event: grammar.Event{Name: "Signature", Encode: func(w *bitio.Writer) error {
				return exi.WriteBytes(w, v.Signature[:v.SignatureLen])
			}, Decode: func(r *bitio.Reader) error {
				buf := make([]byte, SignatureMaxLen)
				out, err := exi.ReadBytesInto(r, buf)
				if err != nil {
					return err
				}
				v.SignatureLen = copy(v.Signature[:], out)
				return nil
			}},
		},
	}
}

func (v *MessageHeaderType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *MessageHeaderType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }
