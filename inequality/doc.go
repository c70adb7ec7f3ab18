// Package inequality computes economic-inequality statistics from income or
// wealth observations and from mobility (transition) matrices.
//
// 🚀 What is in the box?
//
//	• LorenzCurve       : cumulative population share vs cumulative income share
//	• GiniCoefficient   : mean absolute pairwise difference form, O(n²),
//	                       outer loop split across goroutines
//	• GiniSorted        : O(n log n) sorted-rank form of the same index
//	• ShorrocksIndex    : (m − trace(A)) / (m − 1) of an m×m mobility matrix
//	• TransitionMatrix  : estimate a row-stochastic matrix from a state path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/inequality/inequality"
//
//	y := []float64{1, 2, 3, 10}
//	people, income, err := inequality.LorenzCurve(y)
//	g, err := inequality.GiniCoefficient(y, inequality.WithWorkers(4))
//
//	s, err := inequality.ShorrocksIndexRows([][]float64{
//	  {0.9, 0.1},
//	  {0.2, 0.8},
//	}) // 0.3
//
// Input contract:
//
//   - Observations must be finite (ErrNonFinite) and sum to a non-zero
//     (ErrZeroTotal) total that fits in a float64 (ErrOverflow).
//   - Negative observations are accepted, but the Gini coefficient then
//     leaves [0,1] and the Lorenz curve may stop being monotone.
//   - ShorrocksIndex checks shape only. Rows summing to 1 is the caller's
//     contract; use matrix.ValidateRowStochastic to check it explicitly.
//
// Performance:
//
//   - LorenzCurve:     O(n log n) time, O(n) memory
//   - GiniCoefficient: O(n²) time, O(n) memory
//   - GiniSorted:      O(n log n) time, O(n) memory
//   - ShorrocksIndex:  O(m) time, O(m) memory
//
// All functions are pure: inputs are never mutated and outputs are freshly
// allocated. See example_test.go for runnable examples.
package inequality
