package inequality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/inequality/matrix"
)

// ShorrocksIndex: Shorrocks mobility index of an m×m mobility matrix.
//
// Description:
//
//	s(A) = (m − Σ_j a_jj) / (m − 1)
//
//	0 means complete immobility (A = I); a zero-trace matrix gives m/(m−1).
//
// A is trusted to be row-stochastic: only its shape is checked. Callers who
// want the stronger contract can run matrix.ValidateRowStochastic first.
//
// Complexity:
//
//	Time = O(m), Memory = O(m)
//
// Errors:
//   - matrix.ErrNilMatrix: A is nil.
//   - ErrNotSquare       : rows != cols (also matches matrix.ErrNonSquare).
//   - ErrEmptyInput      : a 0×0 matrix.
//   - ErrSingleState     : m == 1.
func ShorrocksIndex(A matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(A); err != nil {
		return 0, inequalityErrorf(opShorrocks, err)
	}
	m, c := A.Rows(), A.Cols()
	if m != c {
		return 0, notSquare(opShorrocks, m, c, matrix.ErrNonSquare)
	}
	if m == 0 {
		return 0, inequalityErrorf(opShorrocks, ErrEmptyInput)
	}
	if m == 1 {
		return 0, inequalityErrorf(opShorrocks, ErrSingleState)
	}

	tr, err := matrix.Trace(A)
	if err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			return 0, notSquare(opShorrocks, m, c, err)
		}
		return 0, inequalityErrorf(opShorrocks, err)
	}
	fm := float64(m)

	return (fm - tr) / (fm - 1), nil
}

// ShorrocksIndexRows is ShorrocksIndex over a [][]float64.
// Every row must have exactly len(rows) entries; a 2×3 input fails with
// ErrNotSquare and is never truncated or reshaped.
//
// Errors:
//   - ErrEmptyInput    : no rows.
//   - ErrNotSquare     : any row length differs from the row count.
//   - matrix.ErrNaNInf : a NaN or ±Inf entry.
//   - ErrSingleState   : 1×1 input.
func ShorrocksIndexRows(rows [][]float64) (float64, error) {
	m := len(rows)
	if m == 0 {
		return 0, inequalityErrorf(opShorrocksRows, ErrEmptyInput)
	}
	for i, r := range rows {
		if len(r) != m {
			return 0, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				opShorrocksRows, i, len(r), m, ErrNotSquare)
		}
	}

	A, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return 0, inequalityErrorf(opShorrocksRows, err)
	}

	return ShorrocksIndex(A)
}

// notSquare reports a shape error that matches both ErrNotSquare and cause.
func notSquare(op string, rows, cols int, cause error) error {
	return fmt.Errorf("%s: %d×%d: %w: %w", op, rows, cols, ErrNotSquare, cause)
}
