package inequality_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/inequality/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomIncomes(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	y := make([]float64, n)
	for i := range y {
		// Pareto(α=3) draws via inverse transform.
		y[i] = math.Pow(1-rng.Float64(), -1.0/3)
	}

	return y
}

func TestGiniCoefficient_Known(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		want float64
	}{
		{"equality", []float64{1, 1, 1, 1}, 0},
		{"equality large k", []float64{1e6, 1e6, 1e6}, 0},
		{"one to four", []float64{1, 2, 3, 4}, 0.25},
		{"single holder n=4", []float64{0, 0, 0, 5}, 0.75},
		{"two people", []float64{0, 1}, 0.5},
		{"negative wealth", []float64{-1, 3}, 1.0},
		// Σ|y_i − y_j| and Σ i·y_(i) exceed float64 before scaling.
		{"single holder near max", []float64{1.5e308, 0, 0}, 2.0 / 3},
		{"spread near max", []float64{6e307, 5e307, 4e307}, 8.0 / 90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := inequality.GiniCoefficient(tc.y)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, g, eps)

			gs, err := inequality.GiniSorted(tc.y)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, gs, eps)
		})
	}
}

func TestGiniCoefficient_Errors(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		want error
	}{
		{"empty", []float64{}, inequality.ErrEmptyInput},
		{"single", []float64{3}, inequality.ErrTooFewObservations},
		{"zero total", []float64{0, 0}, inequality.ErrZeroTotal},
		{"nan", []float64{1, math.NaN()}, inequality.ErrNonFinite},
		{"neg inf", []float64{1, math.Inf(-1)}, inequality.ErrNonFinite},
		{"overflowing total", []float64{1e308, 1e308, 0}, inequality.ErrOverflow},
		{"overflowing negative total", []float64{-1e308, -1e308, 1}, inequality.ErrOverflow},
		// The total cancels to 1e-300 while the differences stay near 1e308.
		{"cancelling total", []float64{-1e308, 1e308, 1e-300}, inequality.ErrOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inequality.GiniCoefficient(tc.y)
			require.ErrorIs(t, err, tc.want)

			_, err = inequality.GiniSorted(tc.y)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGiniCoefficient_MaximalInequality checks [0,…,0,v] → (n−1)/n.
func TestGiniCoefficient_MaximalInequality(t *testing.T) {
	for _, n := range []int{2, 3, 10, 100, 2500} {
		y := make([]float64, n)
		y[n-1] = 42
		g, err := inequality.GiniCoefficient(y, inequality.WithParallelThreshold(0))
		require.NoError(t, err)
		assert.InDelta(t, float64(n-1)/float64(n), g, eps, "n=%d", n)
	}
}

func TestGiniCoefficient_OrderInvariance(t *testing.T) {
	y := randomIncomes(7, 500)
	g, err := inequality.GiniCoefficient(y)
	require.NoError(t, err)

	perm := make([]float64, len(y))
	rng := rand.New(rand.NewSource(99))
	for i, j := range rng.Perm(len(y)) {
		perm[i] = y[j]
	}
	gp, err := inequality.GiniCoefficient(perm)
	require.NoError(t, err)
	assert.InDelta(t, g, gp, eps)
}

func TestGiniCoefficient_ScaleInvariance(t *testing.T) {
	y := randomIncomes(11, 300)
	g, err := inequality.GiniCoefficient(y)
	require.NoError(t, err)

	for _, c := range []float64{0.001, 3.5, 1e6} {
		scaled := make([]float64, len(y))
		for i, v := range y {
			scaled[i] = c * v
		}
		gc, err := inequality.GiniCoefficient(scaled)
		require.NoError(t, err)
		assert.InDelta(t, g, gc, 1e-10, "c=%g", c)
	}
}

// TestGiniCoefficient_WorkerIndependence verifies the parallel path returns
// exactly the sequential result for every worker count.
func TestGiniCoefficient_WorkerIndependence(t *testing.T) {
	y := randomIncomes(2024, 1001)

	ref, err := inequality.GiniCoefficient(y, inequality.WithWorkers(1))
	require.NoError(t, err)

	for _, w := range []int{2, 3, 7, 16, 5000} {
		g, err := inequality.GiniCoefficient(y,
			inequality.WithWorkers(w),
			inequality.WithParallelThreshold(0),
		)
		require.NoError(t, err)
		assert.Equal(t, ref, g, "workers=%d", w)
	}
}

func TestGiniCoefficient_BoundsAndSortedAgreement(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		y := randomIncomes(seed, 777)
		g, err := inequality.GiniCoefficient(y, inequality.WithParallelThreshold(0))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.LessOrEqual(t, g, 1.0)

		gs, err := inequality.GiniSorted(y)
		require.NoError(t, err)
		assert.InDelta(t, g, gs, 1e-9, "seed=%d", seed)
	}
}

func TestGiniCoefficient_DoesNotMutate(t *testing.T) {
	y := []float64{5, 1, 4, 2}
	_, err := inequality.GiniCoefficient(y, inequality.WithParallelThreshold(0), inequality.WithWorkers(2))
	require.NoError(t, err)
	_, err = inequality.GiniSorted(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 4, 2}, y)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { inequality.WithWorkers(0) })
	assert.Panics(t, func() { inequality.WithParallelThreshold(-1) })
	assert.NotPanics(t, func() { inequality.WithParallelThreshold(0) })
}
