package calc

import (
	"github.com/louisbranch/possibility.space/internal/core/fuzzy"
	"github.com/louisbranch/possibility.space/internal/core/prob"
)

// Engine computes probabilities of fuzzy events over a fixed discrete
// universe and probability distribution.
//
// The universe and distribution are validated once at construction and are
// immutable afterwards. Registered events are stored fitted to the
// universe length; their indices are stable for the lifetime of the
// engine.
type Engine struct {
	universe      []float64
	probabilities []float64
	events        [][]float64
}

// New creates an engine for the given universe and probability
// distribution, both index-aligned sequences of the same length.
//
// Constraints and errors
//
//   - Universe elements must be pairwise distinct, otherwise
//     ErrInvalidUniverse is returned.
//   - The distribution must have one probability per universe element,
//     otherwise ErrDistributionSizeMismatch is returned.
//   - Every probability must lie in [0,1] and the total mass must not be
//     approximately zero, otherwise ErrInvalidDistribution is returned.
//   - When the distribution does not sum approximately to 1, it is divided
//     by its sum if normalize is true; otherwise ErrUnnormalizedDistribution
//     is returned.
//
// A failed construction yields no usable engine.
func New(universe, probabilities []float64, normalize bool) (*Engine, error) {
	if !prob.UniverseDiverse(universe) {
		return nil, ErrInvalidUniverse
	}
	if len(universe) != len(probabilities) {
		return nil, ErrDistributionSizeMismatch
	}
	if !prob.Valid(probabilities) {
		return nil, ErrInvalidDistribution
	}

	stored := make([]float64, len(probabilities))
	copy(stored, probabilities)
	if !prob.Normalized(stored) {
		if !normalize {
			return nil, ErrUnnormalizedDistribution
		}
		stored = prob.Normalize(stored)
	}

	engine := &Engine{
		universe:      make([]float64, len(universe)),
		probabilities: stored,
	}
	copy(engine.universe, universe)
	return engine, nil
}

// Size returns the number of elementary events in the universe.
func (e *Engine) Size() int {
	return len(e.universe)
}

// Universe returns a copy of the universe.
func (e *Engine) Universe() []float64 {
	universe := make([]float64, len(e.universe))
	copy(universe, e.universe)
	return universe
}

// Distribution returns a copy of the stored probability distribution.
func (e *Engine) Distribution() []float64 {
	probabilities := make([]float64, len(e.probabilities))
	copy(probabilities, e.probabilities)
	return probabilities
}

// EventCount returns the number of registered events.
func (e *Engine) EventCount() int {
	return len(e.events)
}

// Event returns a copy of the registered event at index.
func (e *Engine) Event(index int) ([]float64, error) {
	if index < 0 || index >= len(e.events) {
		return nil, ErrIndexOutOfRange
	}
	event := make([]float64, len(e.events[index]))
	copy(event, e.events[index])
	return event, nil
}

// RegisterEvent appends a fuzzy event to the collection and returns its
// index. The membership vector is fitted to the universe length before
// storage: shorter vectors are right-padded with zeros, longer ones
// truncated.
//
// Membership degrees are deliberately not validated into [0,1]; callers
// exploring fuzzy models may register arbitrary vectors.
func (e *Engine) RegisterEvent(membership []float64) int {
	e.events = append(e.events, fuzzy.Fit(membership, len(e.universe)))
	return len(e.events) - 1
}

// CombineEvents folds the registered events at the given indices, left to
// right, with the fuzzy combinator selected by op: pointwise max for
// OperatorSum, pointwise min for OperatorIntersection.
//
// At least one index is required (ErrEmptyIndexList). Every index must
// address a registered event, otherwise ErrIndexOutOfRange is returned:
// unknown indices are an error here, not silently skipped, so caller bugs
// surface immediately. A single index returns a copy of that event
// unchanged.
func (e *Engine) CombineEvents(op Operator, indices ...int) ([]float64, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyIndexList
	}

	var combine func(a, b []float64) []float64
	switch op {
	case OperatorSum:
		combine = fuzzy.Union
	case OperatorIntersection:
		combine = fuzzy.Intersect
	default:
		return nil, ErrInvalidOperator
	}

	selected := make([][]float64, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= len(e.events) {
			return nil, ErrIndexOutOfRange
		}
		selected = append(selected, e.events[index])
	}

	result := make([]float64, len(selected[0]))
	copy(result, selected[0])
	for _, event := range selected[1:] {
		result = combine(result, event)
	}
	return result, nil
}

// EventsSum combines registered events with the fuzzy union.
func (e *Engine) EventsSum(indices ...int) ([]float64, error) {
	return e.CombineEvents(OperatorSum, indices...)
}

// EventsIntersection combines registered events with the fuzzy intersection.
func (e *Engine) EventsIntersection(indices ...int) ([]float64, error) {
	return e.CombineEvents(OperatorIntersection, indices...)
}

// Probability returns the probability of a fuzzy event: the expectation of
// its membership function under the engine's distribution.
//
// The event is fitted to the universe length first, so vectors shorter or
// longer than the universe are accepted; the fitted vector is what is
// multiplied against the distribution. With membership degrees in [0,1]
// the result lies in [0,1].
func (e *Engine) Probability(event []float64) (float64, error) {
	fitted := fuzzy.Fit(event, len(e.universe))
	return prob.Dot(fitted, e.probabilities)
}

// FuzzyProbability returns the alpha-cut decomposition of a fuzzy event's
// probability: for each distinct nonzero membership degree alpha (sorted
// ascending), the classical probability mass of the universe points whose
// membership is at least alpha.
//
// The two returned sequences are index-aligned and equally long. The
// probabilities are monotone non-increasing in alpha. An all-zero event
// yields two empty sequences.
func (e *Engine) FuzzyProbability(event []float64) (probabilities, alphas []float64) {
	fitted := fuzzy.Fit(event, len(e.universe))
	alphas = fuzzy.AlphaLevels(fitted)
	probabilities = make([]float64, 0, len(alphas))
	for _, alpha := range alphas {
		mass := 0.0
		for _, index := range fuzzy.AlphaCut(fitted, alpha) {
			mass += e.probabilities[index]
		}
		probabilities = append(probabilities, mass)
	}
	return probabilities, alphas
}

// Bernoulli returns the probability of observing the fuzzy event exactly
// successes times in successes+failures independent trials: the binomial
// probability mass C(s+f, s) * p^s * q^f, where p is the event's
// probability and q the probability of its fuzzy complement.
//
// Both counts must be non-negative, otherwise ErrInvalidTrialCount is
// returned.
func (e *Engine) Bernoulli(event []float64, successes, failures int) (float64, error) {
	if successes < 0 || failures < 0 {
		return 0, ErrInvalidTrialCount
	}

	fitted := fuzzy.Fit(event, len(e.universe))
	success, err := prob.Dot(fitted, e.probabilities)
	if err != nil {
		return 0, err
	}
	failure, err := prob.Dot(fuzzy.Complement(fitted), e.probabilities)
	if err != nil {
		return 0, err
	}

	trials := prob.Comb(successes+failures, successes)
	return trials * pow(success, successes) * pow(failure, failures), nil
}

// pow is integer exponentiation by repeated multiplication, so that x^0 is
// exactly 1 even for x == 0.
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
