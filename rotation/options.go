// SPDX-License-Identifier: MIT

package rotation

// Defaults (single source of truth).
const (
	// DefaultWorkers evaluates offsets one at a time.
	DefaultWorkers = 1

	// DefaultBudget of 0 means every one of the k offsets may be tried.
	DefaultBudget = 0

	// MinMatches is the smallest best-offset match count accepted as a
	// containment when the shorter sequence has two or more columns.
	MinMatches = 2
)

const (
	panicWorkersInvalid = "rotation: WithWorkers: n must be ≥ 1"
	panicBudgetInvalid  = "rotation: WithBudget: n must be ≥ 0"
)

// Option configures MatchContext.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved MatchContext configuration.
type Options struct {
	workers int // ≥ 1
	budget  int // ≥ 0; 0 = unlimited
}

// WithWorkers bounds the number of offsets evaluated concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBudget caps the number of offsets evaluated (offsets 0..n-1).
// 0 restores the unlimited default. Panics if n < 0.
func WithBudget(n int) Option {
	if n < 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *Options) { o.budget = n }
}

// Workers returns the configured worker bound.
func (o Options) Workers() int { return o.workers }

// Budget returns the configured rotation budget (0 = unlimited).
func (o Options) Budget() int { return o.budget }

// NewOptions resolves opts against the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		budget:  DefaultBudget,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
