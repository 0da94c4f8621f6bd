package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/louisbranch/possibility.space/internal/calc"
	"github.com/louisbranch/possibility.space/internal/core/prob"
	platformerrors "github.com/louisbranch/possibility.space/internal/platform/errors"
	"github.com/louisbranch/possibility.space/internal/platform/id"
)

// Registry holds live calculator engines keyed by generated identifier.
// Engines do no synchronization of their own; every access goes through
// the registry lock. State is in-memory only and lives for the lifetime
// of the process.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*calc.Engine
}

// NewRegistry creates an empty calculator registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]*calc.Engine),
	}
}

// Create validates the inputs, builds a new engine, and stores it under a
// fresh identifier.
func (r *Registry) Create(universe, probabilities []float64, normalize bool) (string, *calc.Engine, error) {
	if len(universe) == 0 {
		return "", nil, platformerrors.New(platformerrors.CodeUniverseEmpty, "universe is empty")
	}
	if len(universe) != len(probabilities) {
		return "", nil, platformerrors.WithMetadata(
			platformerrors.CodeDistributionSizeMismatch,
			fmt.Sprintf("universe has %d values but %d probabilities were given", len(universe), len(probabilities)),
			map[string]string{
				"UniverseSize":     strconv.Itoa(len(universe)),
				"ProbabilityCount": strconv.Itoa(len(probabilities)),
			},
		)
	}

	engine, err := calc.New(universe, probabilities, normalize)
	if err != nil {
		return "", nil, engineError(err, probabilities)
	}

	calcID, err := id.NewID()
	if err != nil {
		return "", nil, fmt.Errorf("generate calculator id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[calcID] = engine
	return calcID, engine, nil
}

// Count returns the number of live calculators.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}

// RegisterEvent appends a fuzzy event to the identified calculator and
// returns its index along with the stored, length-fitted membership.
func (r *Registry) RegisterEvent(calcID string, membership []float64) (int, []float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	engine, err := r.lookup(calcID)
	if err != nil {
		return 0, nil, err
	}

	index := engine.RegisterEvent(membership)
	stored, err := engine.Event(index)
	if err != nil {
		return 0, nil, engineError(err, nil)
	}
	return index, stored, nil
}

// CombineEvents folds the registered events at the given indices with the
// requested operator and returns the combined membership.
func (r *Registry) CombineEvents(calcID string, op calc.Operator, indices ...int) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, err := r.lookup(calcID)
	if err != nil {
		return nil, err
	}

	for _, index := range indices {
		if index < 0 || index >= engine.EventCount() {
			return nil, platformerrors.WithMetadata(
				platformerrors.CodeEventIndexOutOfRange,
				fmt.Sprintf("event index %d is out of range", index),
				map[string]string{
					"Index": strconv.Itoa(index),
					"Count": strconv.Itoa(engine.EventCount()),
				},
			)
		}
	}

	combined, err := engine.CombineEvents(op, indices...)
	if err != nil {
		return nil, engineError(err, nil)
	}
	return combined, nil
}

// Probability returns the probability of the fuzzy event under the
// identified calculator's distribution.
func (r *Registry) Probability(calcID string, event []float64) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, err := r.lookup(calcID)
	if err != nil {
		return 0, err
	}

	value, err := engine.Probability(event)
	if err != nil {
		return 0, engineError(err, nil)
	}
	return value, nil
}

// FuzzyProbability returns the alpha-cut probability decomposition of the
// fuzzy event under the identified calculator's distribution.
func (r *Registry) FuzzyProbability(calcID string, event []float64) (probabilities, alphas []float64, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, err := r.lookup(calcID)
	if err != nil {
		return nil, nil, err
	}

	probabilities, alphas = engine.FuzzyProbability(event)
	return probabilities, alphas, nil
}

// Bernoulli returns the compound probability of observing the fuzzy event
// exactly successes times across successes+failures independent trials.
func (r *Registry) Bernoulli(calcID string, event []float64, successes, failures int) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, err := r.lookup(calcID)
	if err != nil {
		return 0, err
	}

	value, err := engine.Bernoulli(event, successes, failures)
	if err != nil {
		return 0, engineError(err, nil)
	}
	return value, nil
}

// lookup resolves a calculator by identifier. Callers hold the registry lock.
func (r *Registry) lookup(calcID string) (*calc.Engine, error) {
	trimmed := strings.TrimSpace(calcID)
	engine, ok := r.engines[trimmed]
	if !ok {
		return nil, platformerrors.WithMetadata(
			platformerrors.CodeCalculatorNotFound,
			fmt.Sprintf("calculator %q was not found", trimmed),
			map[string]string{"ID": trimmed},
		)
	}
	return engine, nil
}

// engineError maps engine sentinel errors to structured domain errors.
// The original probabilities are only needed for the unnormalized case,
// where the offending sum goes into the message metadata.
func engineError(err error, probabilities []float64) error {
	switch {
	case errors.Is(err, calc.ErrInvalidUniverse):
		return platformerrors.Wrap(platformerrors.CodeUniverseDuplicateValue, err.Error(), err)
	case errors.Is(err, calc.ErrDistributionSizeMismatch):
		return platformerrors.Wrap(platformerrors.CodeDistributionSizeMismatch, err.Error(), err)
	case errors.Is(err, calc.ErrInvalidDistribution):
		return platformerrors.Wrap(platformerrors.CodeDistributionInvalid, err.Error(), err)
	case errors.Is(err, calc.ErrUnnormalizedDistribution):
		return platformerrors.WrapWithMetadata(
			platformerrors.CodeDistributionUnnormalized,
			err.Error(),
			map[string]string{"Sum": strconv.FormatFloat(prob.Sum(probabilities), 'g', -1, 64)},
			err,
		)
	case errors.Is(err, calc.ErrEmptyIndexList):
		return platformerrors.Wrap(platformerrors.CodeEventIndexListEmpty, err.Error(), err)
	case errors.Is(err, calc.ErrIndexOutOfRange):
		return platformerrors.Wrap(platformerrors.CodeEventIndexOutOfRange, err.Error(), err)
	case errors.Is(err, calc.ErrInvalidOperator):
		return platformerrors.Wrap(platformerrors.CodeEventOperatorInvalid, err.Error(), err)
	case errors.Is(err, calc.ErrInvalidTrialCount):
		return platformerrors.Wrap(platformerrors.CodeTrialCountInvalid, err.Error(), err)
	default:
		return err
	}
}
