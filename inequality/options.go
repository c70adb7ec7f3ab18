// Package inequality: functional options for the parallel Gini kernel.
//
// Defaults:
//   - workers: runtime.GOMAXPROCS(0) at call time
//   - parallelThreshold: DefaultParallelThreshold
//
// WithX constructors panic on nonsensical values (programmer error); the
// measures themselves never panic on user input.
package inequality

import "runtime"

// DefaultParallelThreshold is the smallest input length for which
// GiniCoefficient splits its outer loop across goroutines. Below it the
// O(n²) sum is cheaper than goroutine start-up.
const DefaultParallelThreshold = 2048

const (
	panicWorkersInvalid   = "inequality: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "inequality: WithParallelThreshold: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers           int // >= 1; 0 means "resolve from GOMAXPROCS"
	parallelThreshold int // >= 0
}

// WithWorkers caps the number of goroutines GiniCoefficient uses for its
// outer loop. n == 1 forces the sequential path.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the minimum input length that triggers the
// parallel path. 0 parallelizes every input.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{parallelThreshold: DefaultParallelThreshold}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
