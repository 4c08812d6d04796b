package v2g

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v2gkit/iso15118exi/bitio"
)

func TestServiceDiscoveryRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.ServiceDiscoveryResIsUsed = true
	res := &msg.Body.ServiceDiscoveryRes
	res.ResponseCode = ResponseOK
	res.PaymentOptionList.PaymentOptionLen = 2
	res.PaymentOptionList.PaymentOption[0] = PaymentExternalPayment
	res.PaymentOptionList.PaymentOption[1] = PaymentContract
	res.ChargeService = ChargeServiceType{
		ServiceID:          1,
		ServiceCategory:    ServiceCategoryEVCharging,
		FreeService:        false,
		EnergyTransferMode: EnergyTransferACThreePhaseCore,
	}
	res.ServiceListIsUsed = true
	res.ServiceList.ServiceLen = 1
	res.ServiceList.Service[0] = ServiceType{
		ServiceID:       7,
		ServiceCategory: ServiceCategoryInternet,
		FreeService:     true,
	}

	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	got := decoded.Body.ServiceDiscoveryRes
	require.Equal(t, 2, got.PaymentOptionList.PaymentOptionLen)
	assert.Equal(t, PaymentContract, got.PaymentOptionList.PaymentOption[1])
	assert.Equal(t, uint16(1), got.ChargeService.ServiceID)
	require.True(t, decoded.Body.ServiceDiscoveryResIsUsed)
	require.Equal(t, 1, got.ServiceList.ServiceLen)
	assert.Equal(t, uint16(7), got.ServiceList.Service[0].ServiceID)
}

func TestCertificateInstallationRoundTripWithSubCertificates(t *testing.T) {
	msg := newMessage()
	msg.Body.CertificateInstallationResIsUsed = true
	res := &msg.Body.CertificateInstallationRes
	res.ResponseCode = ResponseOK
	res.SAProvisioningCertificateChain.CertificateLen = 1
	res.SAProvisioningCertificateChain.Certificate[0] = []byte{0x01, 0x02, 0x03}
	res.ContractSignatureCertChain.CertificateLen = 2
	res.ContractSignatureCertChain.Certificate[0] = []byte{0xaa}
	res.ContractSignatureCertChain.Certificate[1] = []byte{0xbb, 0xcc}
	res.EMAID = []rune("DEABCD12345")

	buf := make([]byte, 256)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	got := decoded.Body.CertificateInstallationRes
	require.Equal(t, 1, got.SAProvisioningCertificateChain.CertificateLen)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got.SAProvisioningCertificateChain.Certificate[0])
	require.Equal(t, 2, got.ContractSignatureCertChain.CertificateLen)
	assert.Equal(t, []byte{0xbb, 0xcc}, got.ContractSignatureCertChain.Certificate[1])
	assert.Equal(t, "DEABCD12345", string(got.EMAID))
}

func TestChargeParameterDiscoveryACRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.ChargeParameterDiscoveryReqIsUsed = true
	req := &msg.Body.ChargeParameterDiscoveryReq
	req.RequestedEnergyTransferMode = EnergyTransferACThreePhaseCore
	req.EVChargeParameter.ACIsUsed = true
	req.EVChargeParameter.AC.EAmount = PhysicalValueType{Unit: UnitWattHour, Value: 30000}
	req.EVChargeParameter.AC.EVMaxVoltage = PhysicalValueType{Unit: UnitVolt, Value: 400}
	req.EVChargeParameter.AC.EVMaxCurrent = PhysicalValueType{Unit: UnitAmpere, Value: 32}
	req.EVChargeParameter.AC.EVMinCurrent = PhysicalValueType{Unit: UnitAmpere, Value: 6}

	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	got := decoded.Body.ChargeParameterDiscoveryReq
	require.True(t, got.EVChargeParameter.ACIsUsed)
	assert.False(t, got.EVChargeParameter.DCIsUsed)
	assert.Equal(t, int16(30000), got.EVChargeParameter.AC.EAmount.Value)
}

func TestChargeParameterDiscoveryDCRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Body.ChargeParameterDiscoveryResIsUsed = true
	res := &msg.Body.ChargeParameterDiscoveryRes
	res.ResponseCode = ResponseOK
	res.EVSEProcessing = ProcessingFinished
	res.EVSEChargeParameter.DCIsUsed = true
	dc := &res.EVSEChargeParameter.DC
	dc.EVSEMaximumCurrentLimit = PhysicalValueType{Unit: UnitAmpere, Value: 125}
	dc.EVSEMaximumVoltageLimit = PhysicalValueType{Unit: UnitVolt, Value: 500}
	dc.EVSEMinimumCurrentLimit = PhysicalValueType{Unit: UnitAmpere, Value: 0}
	dc.EVSEMinimumVoltageLimit = PhysicalValueType{Unit: UnitVolt, Value: 50}
	dc.EVSEPeakCurrentRipple = PhysicalValueType{Unit: UnitAmpere, Value: 1}
	res.SAScheduleListIsUsed = true
	res.SAScheduleList.TupleLen = 1
	res.SAScheduleList.Tuple[0].SAScheduleTupleID = 1
	res.SAScheduleList.Tuple[0].PMaxSchedule.EntryLen = 1
	res.SAScheduleList.Tuple[0].PMaxSchedule.Entry[0] = PMaxScheduleEntryType{
		TimeInterval: RelativeTimeIntervalType{Start: 0},
		PMax:         11000,
	}

	buf := make([]byte, 256)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeMessage(w, &msg))

	var decoded V2GMessageType
	r := bitio.NewReader(w.Bytes())
	require.NoError(t, DecodeMessage(r, &decoded))

	got := decoded.Body.ChargeParameterDiscoveryRes
	require.True(t, got.EVSEChargeParameter.DCIsUsed)
	assert.Equal(t, int16(125), got.EVSEChargeParameter.DC.EVSEMaximumCurrentLimit.Value)
	require.Equal(t, 1, got.SAScheduleList.TupleLen)
	assert.Equal(t, int16(11000), got.SAScheduleList.Tuple[0].PMaxSchedule.Entry[0].PMax)
}

func TestBodyStringNamesTheUsedBranch(t *testing.T) {
	msg := newMessage()
	msg.Body.WeldingDetectionReqIsUsed = true
	assert.Equal(t, "WeldingDetectionReq", msg.Body.String())
}
