package v2g

import "github.com/v2gkit/iso15118exi/grammar"

// typeRegistry tracks the grammar IDs of the complex types registered
// below (types without a grammar ID are not listed), mirroring core/grammar.go's GrammarPool (DESIGN.md).
// Lookups against it catch a schema/grammar mismatch before a decode
// call ever touches the bitstream — see spec.md's UNKNOWN_GRAMMAR_ID
// status.
var typeRegistry = grammar.NewRegistry()

func init() {
	typeRegistry.Register(physicalValueGrammarID, "PhysicalValueType")
	typeRegistry.Register(dcEVStatusGrammarID, "DC_EVStatusType")
	typeRegistry.Register(acEVSEStatusGrammarID, "AC_EVSEStatusType")
	typeRegistry.Register(dcEVSEStatusGrammarID, "DC_EVSEStatusType")

	typeRegistry.Register(serviceGrammarID, "ServiceType")
	typeRegistry.Register(serviceListGrammarID, "ServiceListType")
	typeRegistry.Register(selectedServiceGrammarID, "SelectedServiceType")
	typeRegistry.Register(selectedServiceListGrammarID, "SelectedServiceListType")
	typeRegistry.Register(paymentOptionListGrammarID, "PaymentOptionListType")
	typeRegistry.Register(subCertificatesGrammarID, "SubCertificatesType")

	typeRegistry.Register(acEVChargeParameterGrammarID, "AC_EVChargeParameterType")
	typeRegistry.Register(dcEVChargeParameterGrammarID, "DC_EVChargeParameterType")
	typeRegistry.Register(acEVSEChargeParameterGrammarID, "AC_EVSEChargeParameterType")
	typeRegistry.Register(dcEVSEChargeParameterGrammarID, "DC_EVSEChargeParameterType")
	typeRegistry.Register(saScheduleTupleGrammarID, "SAScheduleTupleType")
	typeRegistry.Register(saScheduleListGrammarID, "SAScheduleListType")

	typeRegistry.Register(messageHeaderGrammarID, "MessageHeaderType")
	typeRegistry.Register(bodyGrammarID, "BodyType")
}
