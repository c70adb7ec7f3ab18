package inequality

import (
	"math"
	"sort"
)

// total validates an observation vector and returns its sum.
//
// Checks, in order:
//   - len(y) >= minLen (ErrEmptyInput for an empty vector, otherwise
//     ErrTooFewObservations),
//   - every value finite (ErrNonFinite),
//   - the sum finite (ErrOverflow),
//   - sum != 0 (ErrZeroTotal).
//
// Errors are returned unwrapped; callers tag them with their op name.
func total(y []float64, minLen int) (float64, error) {
	if len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(y) < minLen {
		return 0, ErrTooFewObservations
	}
	var s float64
	for _, v := range y {
		if !finite(v) {
			return 0, ErrNonFinite
		}
		s += v
	}
	if !finite(s) {
		return 0, ErrOverflow
	}
	if s == 0 {
		return 0, ErrZeroTotal
	}

	return s, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sortedCopy returns y sorted ascending without touching y.
func sortedCopy(y []float64) []float64 {
	out := make([]float64, len(y))
	copy(out, y)
	sort.Float64s(out)

	return out
}
