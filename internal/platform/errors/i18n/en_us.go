package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUniverseEmpty            = "UNIVERSE_EMPTY"
	CodeUniverseDuplicateValue   = "UNIVERSE_DUPLICATE_VALUE"
	CodeDistributionInvalid      = "DISTRIBUTION_INVALID"
	CodeDistributionUnnormalized = "DISTRIBUTION_UNNORMALIZED"
	CodeDistributionSizeMismatch = "DISTRIBUTION_SIZE_MISMATCH"
	CodeEventIndexOutOfRange     = "EVENT_INDEX_OUT_OF_RANGE"
	CodeEventIndexListEmpty      = "EVENT_INDEX_LIST_EMPTY"
	CodeEventOperatorInvalid     = "EVENT_OPERATOR_INVALID"
	CodeTrialCountInvalid        = "TRIAL_COUNT_INVALID"
	CodeCalculatorNotFound       = "CALCULATOR_NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Universe errors
		CodeUniverseEmpty:          "Universe cannot be empty",
		CodeUniverseDuplicateValue: "Universe values must be distinct",

		// Distribution errors
		CodeDistributionInvalid:      "Probabilities must be in range 0..1 and not sum to zero",
		CodeDistributionUnnormalized: "Probabilities sum to {{.Sum}} instead of 1",
		CodeDistributionSizeMismatch: "Universe has {{.UniverseSize}} values but {{.ProbabilityCount}} probabilities were given",

		// Event errors
		CodeEventIndexOutOfRange: "Event index {{.Index}} is out of range (have {{.Count}} events)",
		CodeEventIndexListEmpty:  "At least one event index must be specified",
		CodeEventOperatorInvalid: "Unknown combination operator {{.Operator}}",

		// Bernoulli errors
		CodeTrialCountInvalid: "Success and failure counts must be non-negative",

		// Registry errors
		CodeCalculatorNotFound: "Calculator {{.ID}} was not found",
	},
}
