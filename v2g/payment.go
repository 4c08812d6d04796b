package v2g

import (
	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
	"github.com/v2gkit/iso15118exi/grammar"
)

const (
	EMAIDMaxLen        = 16
	GenChallengeMaxLen = 16
	DHPublicKeyMaxLen  = 65
	PrivateKeyMaxLen   = 32
)

// PaymentDetailsReqType presents the EV's contract identity and
// certificate chain for the EVSE to validate. ContractSignatureCertChain
// reuses SubCertificatesType, same as CertificateInstallationRes.
type PaymentDetailsReqType struct {
	EMAID                    []rune
	EMAIDLen                 int
	ContractSignatureCertChain SubCertificatesType
}

func (v *PaymentDetailsReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "EMAID", Encode: func(w *bitio.Writer) error {
			return exi.WriteString(w, v.EMAID)
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]rune, 0, EMAIDMaxLen)
			out, err := exi.ReadStringInto(r, buf[:EMAIDMaxLen])
			if err != nil {
				return err
			}
			v.EMAID = append([]rune(nil), out...)
			return nil
		}}},
		{Event: grammar.Event{Name: "ContractSignatureCertChain", Encode: v.ContractSignatureCertChain.Encode, Decode: v.ContractSignatureCertChain.Decode}},
	}
}

func (v *PaymentDetailsReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PaymentDetailsReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// PaymentDetailsResType hands back the challenge the EV must sign in
// the following AuthorizationReq.
type PaymentDetailsResType struct {
	ResponseCode    ResponseCodeType
	GenChallenge    [GenChallengeMaxLen]byte
	GenChallengeLen int
	EVSETimeStamp   uint32
}

func (v *PaymentDetailsResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "GenChallenge", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.GenChallenge[:v.GenChallengeLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, GenChallengeMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.GenChallengeLen = copy(v.GenChallenge[:], out)
			return nil
		}}},
		{Event: grammar.Event{Name: "EVSETimeStamp", Encode: func(w *bitio.Writer) error {
			return exi.WriteUnsigned(w, uint64(v.EVSETimeStamp))
		}, Decode: func(r *bitio.Reader) error {
			val, err := exi.ReadUnsigned(r)
			if err != nil {
				return err
			}
			v.EVSETimeStamp = uint32(val)
			return nil
		}}},
	}
}

func (v *PaymentDetailsResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *PaymentDetailsResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// AuthorizationReqType carries the EV's signed challenge back; the
// signature itself travels in the enclosing Header (spec.md §4.3.1).
type AuthorizationReqType struct {
	GenChallenge       [GenChallengeMaxLen]byte
	GenChallengeLen    int
	GenChallengeIsUsed bool
}

func (v *AuthorizationReqType) fields() []grammar.Field {
	return []grammar.Field{
		{
			Optional: true,
			IsUsed:   func() bool { return v.GenChallengeIsUsed },
			SetUsed:  func(b bool) { v.GenChallengeIsUsed = b },
			Event: grammar.Event{Name: "GenChallenge", Encode: func(w *bitio.Writer) error {
				return exi.WriteBytes(w, v.GenChallenge[:v.GenChallengeLen])
			}, Decode: func(r *bitio.Reader) error {
				buf := make([]byte, GenChallengeMaxLen)
				out, err := exi.ReadBytesInto(r, buf)
				if err != nil {
					return err
				}
				v.GenChallengeLen = copy(v.GenChallenge[:], out)
				return nil
			}},
		},
	}
}

func (v *AuthorizationReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *AuthorizationReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// AuthorizationResType tells the EV whether it may proceed to
// ChargeParameterDiscovery yet.
type AuthorizationResType struct {
	ResponseCode   ResponseCodeType
	EVSEProcessing EVSEProcessingType
}

func (v *AuthorizationResType) fields() []grammar.Field {
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

func (v *AuthorizationResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *AuthorizationResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// CertificateInstallationReqType requests a fresh contract certificate
// chain, identifying the EV by its provisioning certificate id.
type CertificateInstallationReqType struct {
	EMAID                    []rune
	OEMProvisioningCertID    [EMAIDMaxLen]byte
	OEMProvisioningCertIDLen int
	ListOfRootCertificateIDs SubCertificatesType
}

func (v *CertificateInstallationReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "EMAID", Encode: func(w *bitio.Writer) error {
			return exi.WriteString(w, v.EMAID)
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]rune, 0, EMAIDMaxLen)
			out, err := exi.ReadStringInto(r, buf[:EMAIDMaxLen])
			if err != nil {
				return err
			}
			v.EMAID = append([]rune(nil), out...)
			return nil
		}}},
		{Event: grammar.Event{Name: "OEMProvisioningCertificateID", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.OEMProvisioningCertID[:v.OEMProvisioningCertIDLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, EMAIDMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.OEMProvisioningCertIDLen = copy(v.OEMProvisioningCertID[:], out)
			return nil
		}}},
		{Event: grammar.Event{Name: "ListOfRootCertificateIDs", Encode: v.ListOfRootCertificateIDs.Encode, Decode: v.ListOfRootCertificateIDs.Decode}},
	}
}

func (v *CertificateInstallationReqType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.fields())
}
func (v *CertificateInstallationReqType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.fields())
}

// CertificateInstallationResType returns both certificate chains and
// the encrypted contract private key (spec.md §8 scenario calls out
// SubCertificates as the repeated-binary example).
type CertificateInstallationResType struct {
	ResponseCode                      ResponseCodeType
	SAProvisioningCertificateChain    SubCertificatesType
	ContractSignatureCertChain        SubCertificatesType
	ContractSignatureEncryptedPrivateKey [PrivateKeyMaxLen]byte
	ContractSignatureEncryptedPrivateKeyLen int
	DHPublicKey                       [DHPublicKeyMaxLen]byte
	DHPublicKeyLen                    int
	EMAID                             []rune
}

func (v *CertificateInstallationResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "SAProvisioningCertificateChain", Encode: v.SAProvisioningCertificateChain.Encode, Decode: v.SAProvisioningCertificateChain.Decode}},
		{Event: grammar.Event{Name: "ContractSignatureCertChain", Encode: v.ContractSignatureCertChain.Encode, Decode: v.ContractSignatureCertChain.Decode}},
		{Event: grammar.Event{Name: "ContractSignatureEncryptedPrivateKey", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.ContractSignatureEncryptedPrivateKey[:v.ContractSignatureEncryptedPrivateKeyLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, PrivateKeyMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.ContractSignatureEncryptedPrivateKeyLen = copy(v.ContractSignatureEncryptedPrivateKey[:], out)
			return nil
		}}},
		{Event: grammar.Event{Name: "DHPublicKey", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.DHPublicKey[:v.DHPublicKeyLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, DHPublicKeyMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.DHPublicKeyLen = copy(v.DHPublicKey[:], out)
			return nil
		}}},
		{Event: grammar.Event{Name: "EMAID", Encode: func(w *bitio.Writer) error {
			return exi.WriteString(w, v.EMAID)
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]rune, 0, EMAIDMaxLen)
			out, err := exi.ReadStringInto(r, buf[:EMAIDMaxLen])
			if err != nil {
				return err
			}
			v.EMAID = append([]rune(nil), out...)
			return nil
		}}},
	}
}

func (v *CertificateInstallationResType) Encode(w *bitio.Writer) error {
	return grammar.Encode(w, v.fields())
}
func (v *CertificateInstallationResType) Decode(r *bitio.Reader) error {
	return grammar.Decode(r, v.fields())
}

// CertificateUpdateReqType asks the EVSE/secondary actor to refresh an
// already-installed contract certificate chain.
type CertificateUpdateReqType struct {
	EMAID                      []rune
	ContractSignatureCertChain SubCertificatesType
}

func (v *CertificateUpdateReqType) fields() []grammar.Field {
	return []grammar.Field{
		{Event: grammar.Event{Name: "EMAID", Encode: func(w *bitio.Writer) error {
			return exi.WriteString(w, v.EMAID)
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]rune, 0, EMAIDMaxLen)
			out, err := exi.ReadStringInto(r, buf[:EMAIDMaxLen])
			if err != nil {
				return err
			}
			v.EMAID = append([]rune(nil), out...)
			return nil
		}}},
		{Event: grammar.Event{Name: "ContractSignatureCertChain", Encode: v.ContractSignatureCertChain.Encode, Decode: v.ContractSignatureCertChain.Decode}},
	}
}

func (v *CertificateUpdateReqType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *CertificateUpdateReqType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }

// CertificateUpdateResType mirrors CertificateInstallationRes's shape.
type CertificateUpdateResType struct {
	ResponseCode                         ResponseCodeType
	ContractSignatureCertChain           SubCertificatesType
	ContractSignatureEncryptedPrivateKey [PrivateKeyMaxLen]byte
	ContractSignatureEncryptedPrivateKeyLen int
	DHPublicKey                          [DHPublicKeyMaxLen]byte
	DHPublicKeyLen                       int
	EMAID                                []rune
}

func (v *CertificateUpdateResType) fields() []grammar.Field {
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
		{Event: grammar.Event{Name: "ContractSignatureCertChain", Encode: v.ContractSignatureCertChain.Encode, Decode: v.ContractSignatureCertChain.Decode}},
		{Event: grammar.Event{Name: "ContractSignatureEncryptedPrivateKey", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.ContractSignatureEncryptedPrivateKey[:v.ContractSignatureEncryptedPrivateKeyLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, PrivateKeyMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.ContractSignatureEncryptedPrivateKeyLen = copy(v.ContractSignatureEncryptedPrivateKey[:], out)
			return nil
		}}},
		{Event: grammar.Event{Name: "DHPublicKey", Encode: func(w *bitio.Writer) error {
			return exi.WriteBytes(w, v.DHPublicKey[:v.DHPublicKeyLen])
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]byte, DHPublicKeyMaxLen)
			out, err := exi.ReadBytesInto(r, buf)
			if err != nil {
				return err
			}
			v.DHPublicKeyLen = copy(v.DHPublicKey[:], out)
			return nil
		}}},
		{Event: grammar.Event{Name: "EMAID", Encode: func(w *bitio.Writer) error {
			return exi.WriteString(w, v.EMAID)
		}, Decode: func(r *bitio.Reader) error {
			buf := make([]rune, 0, EMAIDMaxLen)
			out, err := exi.ReadStringInto(r, buf[:EMAIDMaxLen])
			if err != nil {
				return err
			}
			v.EMAID = append([]rune(nil), out...)
			return nil
		}}},
	}
}

func (v *CertificateUpdateResType) Encode(w *bitio.Writer) error { return grammar.Encode(w, v.fields()) }
func (v *CertificateUpdateResType) Decode(r *bitio.Reader) error { return grammar.Decode(r, v.fields()) }
