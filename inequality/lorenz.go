package inequality

// LorenzCurve: cumulative share of people vs cumulative share of income.
//
// Description:
//
//	The Lorenz curve plots, for the poorest i of n individuals, their share
//	of the population (i/n) against their share of total income. Perfect
//	equality is the diagonal; the further the curve sags below it, the more
//	unequal the distribution.
//
// Algorithm Outline:
//  1. Sort a copy of y ascending (y itself is not mutated).
//  2. Prefix sums s[0] = 0, s[i] = s[i-1] + ysorted[i-1].
//  3. For i = 1..n: people[i] = i/n, income[i] = s[i]/s[n].
//  4. people[0] = income[0] = 0.
//
// Guarantees for finite, non-negative y with a positive total:
//   - len(people) == len(income) == len(y)+1
//   - people[0] == income[0] == 0 and people[n] == income[n] == 1
//   - both sequences are non-decreasing
//
// Negative observations are accepted; income may then dip below 0 or exceed 1
// before reaching 1 at i = n.
//
// Complexity:
//
//	Time   = O(n log n) (the sort; everything else is O(n))
//	Memory = O(n)
//
// Errors:
//   - ErrEmptyInput: y is empty.
//   - ErrNonFinite : y holds NaN or ±Inf.
//   - ErrOverflow  : the running total leaves the float64 range.
//   - ErrZeroTotal : observations sum to zero.
func LorenzCurve(y []float64) (people, income []float64, err error) {
	if _, err = total(y, 1); err != nil {
		return nil, nil, inequalityErrorf(opLorenz, err)
	}

	n := len(y)
	ys := sortedCopy(y)

	s := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		s[i] = s[i-1] + ys[i-1]
	}
	// The sorted prefix total can differ from the unsorted sum: in the last
	// ulp, or by overflowing where the input order did not.
	if !finite(s[n]) {
		return nil, nil, inequalityErrorf(opLorenz, ErrOverflow)
	}
	if s[n] == 0 {
		return nil, nil, inequalityErrorf(opLorenz, ErrZeroTotal)
	}

	people = make([]float64, n+1)
	income = make([]float64, n+1)
	fn := float64(n)
	for i := 1; i <= n; i++ {
		people[i] = float64(i) / fn
		income[i] = s[i] / s[n]
	}

	return people, income, nil
}
