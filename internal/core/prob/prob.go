// Package prob provides validation and arithmetic helpers for discrete
// probability distributions over a finite universe.
//
// All functions are pure and operate on plain float64 slices. The
// bool-returning predicates never raise errors themselves; callers are
// expected to interpret false and surface a domain error at the boundary.
package prob

import (
	"errors"
	"math"
)

// Tolerances for approximate float comparison. They match the defaults of
// the reference numeric library so behavior is reproducible against the
// worked examples (|a-b| <= atol + rtol*|b|).
const (
	relTol = 1e-5
	absTol = 1e-8
)

// ErrLengthMismatch indicates two vectors with incompatible lengths were
// passed to a pairwise operation.
var ErrLengthMismatch = errors.New("vectors must have the same length")

// Close reports whether a and b are approximately equal.
func Close(a, b float64) bool {
	return math.Abs(a-b) <= absTol+relTol*math.Abs(b)
}

// UniverseDiverse reports whether all elementary events in the universe are
// pairwise distinct. NaN elements are rejected: NaN never compares equal to
// itself, so it cannot name a distinct elementary event.
func UniverseDiverse(universe []float64) bool {
	seen := make(map[float64]struct{}, len(universe))
	for _, value := range universe {
		if math.IsNaN(value) {
			return false
		}
		seen[value] = struct{}{}
	}
	return len(seen) == len(universe)
}

// Valid reports whether every probability lies in [0,1] and the sum is not
// approximately zero.
func Valid(probabilities []float64) bool {
	sum := 0.0
	for _, p := range probabilities {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return false
		}
		sum += p
	}
	return !Close(sum, 0)
}

// Normalized reports whether the probabilities sum approximately to 1.
func Normalized(probabilities []float64) bool {
	return Close(Sum(probabilities), 1)
}

// Normalize returns a copy of probabilities divided by their sum. Callers
// must check Valid first; a zero sum produces non-finite values.
func Normalize(probabilities []float64) []float64 {
	sum := Sum(probabilities)
	normalized := make([]float64, len(probabilities))
	for i, p := range probabilities {
		normalized[i] = p / sum
	}
	return normalized
}

// Sum returns the total probability mass.
func Sum(probabilities []float64) float64 {
	sum := 0.0
	for _, p := range probabilities {
		sum += p
	}
	return sum
}

// Dot returns the dot product of a and b.
//
// Both vectors must have the same length, otherwise ErrLengthMismatch is
// returned.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	product := 0.0
	for i := range a {
		product += a[i] * b[i]
	}
	return product, nil
}

// Comb returns the binomial coefficient C(n, k), the number of ways to
// choose k successes out of n trials. It returns 0 when k is negative or
// exceeds n.
func Comb(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return result
}
