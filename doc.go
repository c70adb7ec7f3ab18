// Package inequality is the root of a small, pure-Go toolkit for measuring
// economic inequality and mobility.
//
// 🚀 What is inside?
//
//	• Lorenz curve of income/wealth observations
//	• Gini coefficient (O(n²) pairwise form, parallel outer loop; O(n log n) sorted form)
//	• Shorrocks mobility index of a transition matrix
//	• Transition-matrix estimation from observed state paths
//
// ✨ Why?
//
//   - Zero totals, 1×1 matrices and non-square input fail with typed
//     sentinels instead of NaN/Inf.
//   - The parallel Gini returns the same bits for any worker count.
//
// Under the hood, everything is organized under these packages:
//
//	inequality/  : LorenzCurve, GiniCoefficient, GiniSorted, ShorrocksIndex, TransitionMatrix
//	matrix/      : Dense matrix, validators, Trace / RowSums / NormalizeRowsL1
//	dataio/      : JSON / YAML / TOML / CSV datasets and report encoders
//	cmd/inequality: command-line front end
//	examples/    : runnable Pareto-wealth walkthrough
//
//	go get github.com/katalvlaran/inequality
package inequality
