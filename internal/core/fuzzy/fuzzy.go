// Package fuzzy provides pointwise fuzzy-set algebra over membership
// vectors aligned with a shared finite universe.
//
// A fuzzy set is represented by its membership vector: one degree in [0,1]
// per universe element. The combinators here are the standard pointwise
// forms: max for union, min for intersection, and 1-x for the complement.
// All functions return fresh slices and never mutate their inputs.
package fuzzy

import "sort"

// Fit adjusts a membership vector to exactly size elements: shorter vectors
// are right-padded with zeros, longer vectors are truncated. The result is
// always a copy.
func Fit(membership []float64, size int) []float64 {
	if size < 0 {
		size = 0
	}
	fitted := make([]float64, size)
	copy(fitted, membership)
	return fitted
}

// Union returns the pointwise fuzzy OR (max) of a and b.
func Union(a, b []float64) []float64 {
	return combine(a, b, func(x, y float64) float64 {
		if x > y {
			return x
		}
		return y
	})
}

// Intersect returns the pointwise fuzzy AND (min) of a and b.
func Intersect(a, b []float64) []float64 {
	return combine(a, b, func(x, y float64) float64 {
		if x < y {
			return x
		}
		return y
	})
}

// Complement returns the pointwise fuzzy NOT (1-x) of membership.
func Complement(membership []float64) []float64 {
	complement := make([]float64, len(membership))
	for i, value := range membership {
		complement[i] = 1 - value
	}
	return complement
}

// AlphaLevels returns the distinct nonzero membership degrees present in
// membership, sorted ascending. An all-zero vector yields an empty slice.
func AlphaLevels(membership []float64) []float64 {
	distinct := make(map[float64]struct{}, len(membership))
	for _, value := range membership {
		if value != 0 {
			distinct[value] = struct{}{}
		}
	}
	levels := make([]float64, 0, len(distinct))
	for value := range distinct {
		levels = append(levels, value)
	}
	sort.Float64s(levels)
	return levels
}

// AlphaCut returns the indices whose membership degree is at least alpha.
func AlphaCut(membership []float64, alpha float64) []int {
	indices := make([]int, 0, len(membership))
	for i, value := range membership {
		if value >= alpha {
			indices = append(indices, i)
		}
	}
	return indices
}

// combine folds two equal-length vectors pointwise. Operands of different
// lengths are first fitted onto the longer support, treating missing
// degrees as zero.
func combine(a, b []float64, op func(x, y float64) float64) []float64 {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}
	a = Fit(a, size)
	b = Fit(b, size)
	combined := make([]float64, size)
	for i := range combined {
		combined[i] = op(a[i], b[i])
	}
	return combined
}
