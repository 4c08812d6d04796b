package v2g

import "github.com/v2gkit/iso15118exi/exi"

// Enumerated schema types are emitted as their ordinal, n-bit unsigned
// with n = ceil(log2(variants)) (spec.md §4.2 "enumerated string").
// Each type below lists its variants in schema declaration order; the
// ordinal is the index into that list.

// ResponseCodeType mirrors the ISO 15118-2 response-code enumeration
// shared by every *Res message's required ResponseCode field.
type ResponseCodeType int

const (
	ResponseOK ResponseCodeType = iota
	ResponseOKCertificateExpiresSoon
	ResponseOKNewSessionEstablished
	ResponseOKOldSessionJoined
	ResponseOKPowerToleranceConfirmed
	ResponseFailed
	ResponseFailedSequenceError
	ResponseFailedServiceIDInvalid
	ResponseFailedUnknownSession
	ResponseFailedServiceSelectionInvalid
	ResponseFailedPaymentSelectionInvalid
	ResponseFailedCertificateExpired
	ResponseFailedSignatureError
	ResponseFailedNoCertificateAvailable
	ResponseFailedCertChainError
	ResponseFailedChallengeInvalid
	ResponseFailedContractCanceled
	ResponseFailedWrongChargeParameter
	ResponseFailedPowerDeliveryNotApplied
	ResponseFailedTariffSelectionInvalid
	ResponseFailedChargingProfileInvalid
	ResponseFailedMeteringSignatureNotValid
	ResponseFailedWrongEnergyTransferMode
	ResponseFailedContactorError
	ResponseFailedCertificateNotAllowedAtThisEVSE
	ResponseFailedCertificateRevoked
	responseCodeVariantCount
)

func (v ResponseCodeType) encode() uint32 { return uint32(v) }
func decodeResponseCode(ord uint32) (ResponseCodeType, error) {
	if int(ord) >= int(responseCodeVariantCount) {
		return 0, exi.UnknownEventCode
	}
	return ResponseCodeType(ord), nil
}

// EVSEProcessingType indicates whether the EVSE needs another
// request/response round before it can proceed.
type EVSEProcessingType int

const (
	ProcessingFinished EVSEProcessingType = iota
	ProcessingOngoing
	ProcessingOngoingWaitingForCustomerInteraction
	processingVariantCount
)

// PaymentOptionType lists the payment options an EVSE may offer.
type PaymentOptionType int

const (
	PaymentExternalPayment PaymentOptionType = iota
	PaymentContract
	paymentOptionVariantCount
)

// ServiceCategoryType categorizes a ServiceDiscovery service entry.
type ServiceCategoryType int

const (
	ServiceCategoryEVCharging ServiceCategoryType = iota
	ServiceCategoryInternet
	ServiceCategoryContractCertificate
	ServiceCategoryOtherCustom
	serviceCategoryVariantCount
)

// EnergyTransferModeType lists the transfer modes ChargeParameterDiscoveryReq
// may request.
type EnergyTransferModeType int

const (
	EnergyTransferACSinglePhaseCore EnergyTransferModeType = iota
	EnergyTransferACThreePhaseCore
	EnergyTransferDCCore
	EnergyTransferDCExtended
	EnergyTransferDCComboCore
	EnergyTransferDCUnique
	energyTransferVariantCount
)

// UnitSymbolType is the physical unit of a PhysicalValueType.
type UnitSymbolType int

const (
	UnitHour UnitSymbolType = iota
	UnitMinute
	UnitSecond
	UnitAmpere
	UnitAmpereHour
	UnitVolt
	UnitVoltAmpere
	UnitWatt
	UnitWattHour
	unitSymbolVariantCount
)

// DCEVErrorCodeType lists the DC-specific fault codes an EV may report
// in DC_EVStatusType.
type DCEVErrorCodeType int

const (
	DCEVErrorNoError DCEVErrorCodeType = iota
	DCEVErrorFailedRESSTemperatureInhibit
	DCEVErrorFailedEVShiftPosition
	DCEVErrorFailedChargerConnectorLockFault
	DCEVErrorFailedEVRESSMalfunction
	DCEVErrorFailedChargingCurrentDifferential
	DCEVErrorFailedChargingVoltageOutOfRange
	DCEVErrorReservedA
	DCEVErrorReservedB
	DCEVErrorReservedC
	DCEVErrorFailedChargingSystemIncompatibility
	DCEVErrorNoData
	dcEVErrorVariantCount
)

// IsolationLevelType is the DC isolation-monitoring result reported by
// the EVSE.
type IsolationLevelType int

const (
	IsolationInvalid IsolationLevelType = iota
	IsolationValid
	IsolationWarning
	IsolationFault
	isolationVariantCount
)

// EVSENotificationType is carried in the message Header's optional
// Notification.
type EVSENotificationType int

const (
	EVSENotificationNone EVSENotificationType = iota
	EVSENotificationStopCharging
	EVSENotificationReNegotiation
	evseNotificationVariantCount
)
