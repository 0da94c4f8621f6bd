package calc

import "errors"

// Operator selects the fuzzy-set combinator used when combining registered
// events.
type Operator int

const (
	OperatorUnspecified Operator = iota
	OperatorSum
	OperatorIntersection
)

func (o Operator) String() string {
	switch o {
	case OperatorSum:
		return "Sum"
	case OperatorIntersection:
		return "Intersection"
	default:
		return "Unspecified"
	}
}

// ErrInvalidUniverse indicates the universe contains duplicate elementary events.
var ErrInvalidUniverse = errors.New("every elementary event must be distinct")

// ErrDistributionSizeMismatch indicates the universe and distribution have
// different lengths.
var ErrDistributionSizeMismatch = errors.New("universe and probabilities must have the same length")

// ErrInvalidDistribution indicates a probability outside [0,1] or a zero total mass.
var ErrInvalidDistribution = errors.New("probabilities must be in [0,1] and their sum cannot be zero")

// ErrUnnormalizedDistribution indicates the distribution does not sum to 1
// and normalization was not requested.
var ErrUnnormalizedDistribution = errors.New("probabilities must sum to 1")

// ErrEmptyIndexList indicates a combination was requested with no event indices.
var ErrEmptyIndexList = errors.New("at least one event index must be provided")

// ErrIndexOutOfRange indicates an event index outside the registered collection.
var ErrIndexOutOfRange = errors.New("event index is out of range")

// ErrInvalidOperator indicates an unsupported combination operator.
var ErrInvalidOperator = errors.New("combination operator must be Sum or Intersection")

// ErrInvalidTrialCount indicates negative success or failure counts for a
// Bernoulli trial computation.
var ErrInvalidTrialCount = errors.New("success and failure counts must be non-negative")
