// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Universe errors
	CodeUniverseEmpty          Code = "UNIVERSE_EMPTY"
	CodeUniverseDuplicateValue Code = "UNIVERSE_DUPLICATE_VALUE"

	// Distribution errors
	CodeDistributionInvalid      Code = "DISTRIBUTION_INVALID"
	CodeDistributionUnnormalized Code = "DISTRIBUTION_UNNORMALIZED"
	CodeDistributionSizeMismatch Code = "DISTRIBUTION_SIZE_MISMATCH"

	// Event errors
	CodeEventIndexOutOfRange Code = "EVENT_INDEX_OUT_OF_RANGE"
	CodeEventIndexListEmpty  Code = "EVENT_INDEX_LIST_EMPTY"
	CodeEventOperatorInvalid Code = "EVENT_OPERATOR_INVALID"

	// Bernoulli errors
	CodeTrialCountInvalid Code = "TRIAL_COUNT_INVALID"

	// Registry errors
	CodeCalculatorNotFound Code = "CALCULATOR_NOT_FOUND"
)
