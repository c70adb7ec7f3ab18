// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the reductions mobility analysis is built from: Trace, RowSums
//     and L1 row normalization (counts → transition probabilities).
//
// Exposed API:
//   - Trace(A)           -> float64           // Σ_i A[i,i], square only
//   - RowSums(A)         -> []float64         // Σ_j A[i,j]
//   - NormalizeRowsL1(X) -> (Y, norms)        // L1 row normalization (degenerate rows unchanged)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer; other Matrix
//     implementations go through At with full error propagation.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTrace           = "Trace"
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// matrixErrorf tags err with the operation name; the sentinel stays matchable.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Trace returns the sum of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Trace").
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(A Matrix) (float64, error) {
	if err := ValidateSquareNonNil(A); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := A.Rows()

	var s float64
	if d, ok := A.(*Dense); ok {
		for i := 0; i < n; i++ {
			s += d.data[i*n+i]
		}

		return s, nil
	}

	var (
		v   float64
		err error
	)
	for i := 0; i < n; i++ {
		if v, err = A.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		s += v
	}

	return s, nil
}

// RowSums returns Σ_j A[i,j] for each row i.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(A Matrix) ([]float64, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := A.Rows(), A.Cols()
	sums := make([]float64, r)

	var i, j int
	if d, ok := A.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[i] += d.data[base+j]
			}
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = A.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// NormalizeRowsL1 scales each row to unit L1 norm (Σ_j |x_ij| == 1) and
// returns the normalized copy together with the original per-row norms.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms (Dense fast-path; At fallback).
//   - Stage 3: Write x_ij / norm_i into a fresh Dense; rows with norm 0 are
//     copied unchanged.
//
// Behavior highlights:
//   - X is never mutated.
//   - Degenerate (all-zero) rows stay all-zero; callers decide how to treat them.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(r) norms).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, c := X.Rows(), X.Cols()

	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	// Materialize X into out first so both paths share the scaling loop.
	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		copy(out.data, d.data)
		out.validateNaNInf = d.validateNaNInf
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
				}
				out.data[i*c+j] = v
			}
		}
	}

	norms := make([]float64, r)
	var s float64
	for i = 0; i < r; i++ {
		base := i * c
		s = 0
		for j = 0; j < c; j++ {
			v = out.data[base+j]
			if v < 0 {
				v = -v
			}
			s += v
		}
		norms[i] = s
		if s == 0 {
			continue // degenerate row stays as-is
		}
		inv := 1.0 / s
		for j = 0; j < c; j++ {
			out.data[base+j] *= inv
		}
	}

	return out, norms, nil
}
