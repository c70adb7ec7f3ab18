// Package inequality: sentinel error set.
// Functions return these sentinels wrapped with an operation tag; callers
// match them with errors.Is. No public function panics on user input.

package inequality

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an empty observation vector or matrix.
	ErrEmptyInput = errors.New("inequality: input must be non-empty")

	// ErrTooFewObservations indicates fewer observations than the measure
	// needs (two for the Gini coefficient and for a state path).
	ErrTooFewObservations = errors.New("inequality: too few observations")

	// ErrNonFinite indicates a NaN or ±Inf observation.
	ErrNonFinite = errors.New("inequality: NaN or Inf observation")

	// ErrOverflow indicates finite observations whose total, pairwise
	// differences or rank-weighted sum exceed the float64 range.
	ErrOverflow = errors.New("inequality: float64 overflow")

	// ErrZeroTotal indicates that observations sum to zero, which leaves
	// income shares and the Gini ratio undefined.
	ErrZeroTotal = errors.New("inequality: observations sum to zero")

	// ErrNotSquare indicates a mobility matrix whose row and column counts differ.
	ErrNotSquare = errors.New("inequality: matrix must be square")

	// ErrSingleState indicates a 1×1 mobility matrix (or m < 2 states), for
	// which the Shorrocks index divides by zero.
	ErrSingleState = errors.New("inequality: mobility matrix needs at least two states")

	// ErrStateOutOfRange indicates a state id outside [0, m).
	ErrStateOutOfRange = errors.New("inequality: state out of range")

	// ErrNegativeCount indicates a negative transition count.
	ErrNegativeCount = errors.New("inequality: negative transition count")
)

// Operation tags used when wrapping errors.
const (
	opLorenz           = "LorenzCurve"
	opGini             = "GiniCoefficient"
	opGiniSorted       = "GiniSorted"
	opShorrocks        = "ShorrocksIndex"
	opShorrocksRows    = "ShorrocksIndexRows"
	opTransition       = "TransitionMatrix"
	opTransitionCounts = "TransitionMatrixFromCounts"
)

// inequalityErrorf tags err with op; the sentinel stays matchable via errors.Is.
func inequalityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
