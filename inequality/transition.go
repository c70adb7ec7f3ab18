package inequality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/inequality/matrix"
)

// TransitionMatrix estimates an m×m row-stochastic mobility matrix from an
// observed path of states (e.g. income quintiles of one household over time).
//
// Algorithm:
//  1. Count transitions: C[states[t]][states[t+1]]++ for t = 0..len-2.
//  2. Delegate to TransitionMatrixFromCounts.
//
// Errors:
//   - ErrSingleState       : m < 2.
//   - ErrTooFewObservations: len(states) < 2 (no transition observed).
//   - ErrStateOutOfRange   : a state outside [0, m).
//
// Complexity: O(len(states) + m²).
func TransitionMatrix(states []int, m int) (*matrix.Dense, error) {
	if m < 2 {
		return nil, inequalityErrorf(opTransition, ErrSingleState)
	}
	if len(states) < 2 {
		return nil, inequalityErrorf(opTransition, ErrTooFewObservations)
	}
	for t, s := range states {
		if s < 0 || s >= m {
			return nil, fmt.Errorf("%s: states[%d]=%d not in [0,%d): %w",
				opTransition, t, s, m, ErrStateOutOfRange)
		}
	}

	counts, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, inequalityErrorf(opTransition, err)
	}
	var v float64
	for t := 1; t < len(states); t++ {
		from, to := states[t-1], states[t]
		if v, err = counts.At(from, to); err != nil {
			return nil, inequalityErrorf(opTransition, err)
		}
		if err = counts.Set(from, to, v+1); err != nil {
			return nil, inequalityErrorf(opTransition, err)
		}
	}

	return TransitionMatrixFromCounts(counts)
}

// TransitionMatrixFromCounts normalizes a square matrix of transition counts
// into transition probabilities, row by row (matrix.NormalizeRowsL1).
//
// A state that was never left has an all-zero row; it becomes absorbing
// (a_ii = 1) so the result stays row-stochastic.
//
// Errors:
//   - matrix.ErrNilMatrix: counts is nil.
//   - ErrNotSquare       : counts is not square.
//   - ErrSingleState     : 1×1 counts.
//   - ErrNegativeCount   : a negative entry.
//   - ErrNonFinite       : a NaN or ±Inf entry.
func TransitionMatrixFromCounts(counts matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(counts); err != nil {
		return nil, inequalityErrorf(opTransitionCounts, err)
	}
	m, c := counts.Rows(), counts.Cols()
	if m != c {
		return nil, notSquare(opTransitionCounts, m, c, matrix.ErrNonSquare)
	}
	if m < 2 {
		return nil, inequalityErrorf(opTransitionCounts, ErrSingleState)
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			if v, err = counts.At(i, j); err != nil {
				return nil, inequalityErrorf(opTransitionCounts, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: counts[%d][%d]: %w", opTransitionCounts, i, j, ErrNonFinite)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s: counts[%d][%d]=%g: %w", opTransitionCounts, i, j, v, ErrNegativeCount)
			}
		}
	}

	P, norms, err := matrix.NormalizeRowsL1(counts)
	if err != nil {
		return nil, inequalityErrorf(opTransitionCounts, err)
	}
	for i = 0; i < m; i++ {
		if norms[i] == 0 {
			if err = P.Set(i, i, 1); err != nil {
				return nil, inequalityErrorf(opTransitionCounts, err)
			}
		}
	}

	return P, nil
}
