package v2g

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/exi"
)

func newMessage() V2GMessageType {
	var msg V2GMessageType
	msg.Header.SessionIDLen = copy(msg.Header.SessionID[:], []byte{0x01, 0x02, 0x03, 0x04})
	return msg
}

// TestSessionStopResRoundTrip is spec.md §8 scenario 1's worked
// example: an empty SessionStopRes with ResponseCode = OK.
func TestSessionStopResRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.SessionStopResIsUsed = true
	msg.Body.SessionStopRes.ResponseCode = ResponseOK

	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	assert.True(t, decoded.Body.SessionStopResIsUsed)
	assert.Equal(t, ResponseOK, decoded.Body.SessionStopRes.ResponseCode)
	assert.Equal(t, msg.Header.SessionID[:msg.Header.SessionIDLen], decoded.Header.SessionID[:decoded.Header.SessionIDLen])
}

// TestSessionStopResBodyChoiceWireBytes pins the actual encoded bytes
// of the Body choice alone (independent of Header, whose own
// variable-length fields would otherwise obscure this): SessionStopRes
// sits at declaration-order index 21 (body.go's branches()), a 6-bit
// code of 0b010101, not the "32 of 35" spec.md §8 scenario 1 quotes
// (see DESIGN.md's "Body choice index" note). With the body choice
// mandatory (no END alternative at that state) and ResponseCode the
// sole required field of SessionStopRes, the full encoding is:
//
//	[dev=0][code6=010101][attr=0]                     choose SessionStopRes
//	[dev=0][code1=0][attr=0][ord5=00000]               ResponseCode = OK
//	[dev=0][code1=0]                                   end SessionStopRes
//	[dev=0][code1=0]                                   end Body
//
// 20 bits total, packing to 0x2A 0x00 0x00.
func TestSessionStopResBodyChoiceWireBytes(t *testing.T) {
	var body BodyType
	body.SessionStopResIsUsed = true
	body.SessionStopRes.ResponseCode = ResponseOK

	buf := make([]byte, 8)
	w := bitio.NewWriter(buf)
	require.NoError(t, body.Encode(w))
	assert.Equal(t, []byte{0x2A, 0x00, 0x00}, w.Bytes())

	var decoded BodyType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, decoded.Decode(r))
	assert.True(t, decoded.SessionStopResIsUsed)
	assert.Equal(t, ResponseOK, decoded.SessionStopRes.ResponseCode)
}

// TestSessionSetupRoundTrip is spec.md §8 scenarios 2-3: the EVCC's
// opening message and the EVSE's reply.
func TestSessionSetupRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.SessionSetupReqIsUsed = true
	msg.Body.SessionSetupReq.EVCCIDLen = copy(msg.Body.SessionSetupReq.EVCCID[:], []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02})

	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))
	require.True(t, decoded.Body.SessionSetupReqIsUsed)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}, decoded.Body.SessionSetupReq.EVCCID[:decoded.Body.SessionSetupReq.EVCCIDLen])

	res := newMessage()
	res.Body.SessionSetupResIsUsed = true
	res.Body.SessionSetupRes.ResponseCode = ResponseOKNewSessionEstablished
	res.Body.SessionSetupRes.EVSEID = []rune("DE*MAB*E123AB1*356")

	buf2 := make([]byte, 64)
	w2 := bitio.NewWriter(buf2)
	require.NoError(t, EncodeMessage(w2, &res))

	var decodedRes V2GMessageType
	r2 := bitio.NewReader(w2.Bytes())
	require.NoError(t, DecodeMessage(r2, &decodedRes))
	require.True(t, decodedRes.Body.SessionSetupResIsUsed)
	assert.Equal(t, "DE*MAB*E123AB1*356", string(decodedRes.Body.SessionSetupRes.EVSEID))
	assert.False(t, decodedRes.Body.SessionSetupRes.EVSETimeStampIsUsed)
}

// TestPaymentServiceSelectionRoundTrip is spec.md §8 scenario 4: a
// selected payment option plus two selected services.
func TestPaymentServiceSelectionRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.PaymentServiceSelectionReqIsUsed = true
	req := &msg.Body.PaymentServiceSelectionReq
	req.SelectedPaymentOption = PaymentContract
	req.SelectedServiceList.SelectedServiceLen = 2
	req.SelectedServiceList.SelectedService[0] = SelectedServiceType{ServiceID: 1}
	req.SelectedServiceList.SelectedService[1] = SelectedServiceType{ServiceID: 2, ParameterSetID: 5, ParameterSetIDIsUsed: true}

	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	got := decoded.Body.PaymentServiceSelectionReq
	require.Equal(t, 2, got.SelectedServiceList.SelectedServiceLen)
	assert.Equal(t, uint16(1), got.SelectedServiceList.SelectedService[0].ServiceID)
	assert.False(t, got.SelectedServiceList.SelectedService[0].ParameterSetIDIsUsed)
	assert.Equal(t, uint16(2), got.SelectedServiceList.SelectedService[1].ServiceID)
	assert.True(t, got.SelectedServiceList.SelectedService[1].ParameterSetIDIsUsed)
	assert.Equal(t, uint16(5), got.SelectedServiceList.SelectedService[1].ParameterSetID)
}

// TestPreChargeRoundTrip is spec.md §8 scenario 5: DC_EVStatus plus
// the EV's target voltage and current.
func TestPreChargeRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.PreChargeReqIsUsed = true
	req := &msg.Body.PreChargeReq
	req.DCEVStatus = DCEVStatusType{EVReady: true, EVErrorCode: DCEVErrorNoError, EVRESSSOC: 42}
	req.EVTargetVoltage = PhysicalValueType{Multiplier: 0, Unit: UnitVolt, Value: 400}
	req.EVTargetCurrent = PhysicalValueType{Multiplier: -1, Unit: UnitAmpere, Value: 16}

	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	got := decoded.Body.PreChargeReq
	assert.True(t, got.DCEVStatus.EVReady)
	assert.Equal(t, int8(42), got.DCEVStatus.EVRESSSOC)
	assert.Equal(t, int16(400), got.EVTargetVoltage.Value)
	assert.Equal(t, int8(-1), got.EVTargetCurrent.Multiplier)
}

// TestDecodeTruncatedBufferFails confirms a stream cut short fails with
// BufferEndOfData rather than silently returning a partial record
// (spec.md §7 "Tests and properties").
func TestDecodeTruncatedBufferFails(t *testing.T) {
	msg := newMessage()
	msg.Body.SessionStopResIsUsed = true
	msg.Body.SessionStopRes.ResponseCode = ResponseOK

	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	truncated := w.Bytes()[:w.Len()-1]
	var decoded V2GMessageType
	r := bitio.NewReader(truncated)
	err := DecodeMessage(r, &decoded)
	assert.ErrorIs(t, err, exi.BufferEndOfData)
}

// TestEncodeBufferTooSmallFails checks the encoder also fails cleanly
// when the caller-provided buffer cannot hold the record.
func TestEncodeBufferTooSmallFails(t *testing.T) {
	msg := newMessage()
	msg.Body.SessionStopResIsUsed = true

	buf := make([]byte, 2)
	w := bitio.NewWriter(buf)
	err := EncodeMessage(w, &msg)
	assert.ErrorIs(t, err, exi.BufferEndOfData)
}
