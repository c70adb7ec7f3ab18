// Package matrix provides the small dense-matrix layer used by the
// inequality measures: storage for mobility (transition) matrices, shape and
// numeric validators, and the reductions the Shorrocks index and transition
// estimation are built from.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Constructors: NewDense (zeros), NewIdentity, NewDenseFromRows.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSquareNonNil,
//     ValidateRowStochastic.
//   - Reductions: Trace, RowSums, NormalizeRowsL1.
//
// Numeric policy:
//
//	By default Dense rejects NaN and ±Inf on Set and on ingestion
//	(DefaultValidateNaNInf). Callers that need raw values can build with
//	WithNoValidateNaNInf.
//
// Example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{
//		{0.9, 0.1},
//		{0.2, 0.8},
//	})
//	tr, _ := matrix.Trace(A) // 1.7
//
// All functions are deterministic: fixed i→j traversal, no map iteration.
package matrix
