// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → ...).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateRowStochastic checks that m is square, every entry is finite and
// non-negative, and each row sums to 1 within eps (WithEpsilon, default
// DefaultEpsilon).
//
// Entries are scanned first; row sums then come from RowSums.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotStochastic.
// Complexity: O(n²) time, O(n) space.
func ValidateRowStochastic(m Matrix, opts ...Option) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(tag, ErrNaNInf)
			}
			if v < 0 {
				return fmt.Errorf("%s: row %d has negative entry %g: %w", tag, i, v, ErrNotStochastic)
			}
		}
	}

	sums, err := RowSums(m)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	for i, s := range sums {
		if math.Abs(s-1) > o.eps {
			return fmt.Errorf("%s: row %d sums to %g: %w", tag, i, s, ErrNotStochastic)
		}
	}

	return nil
}
