// SPDX-License-Identifier: MIT

package containment

import "github.com/katalvlaran/cyclosub/rotation"

// Defaults (single source of truth).
const (
	// DefaultWorkers evaluates rotation offsets sequentially.
	DefaultWorkers = rotation.DefaultWorkers

	// DefaultBudget of 0 lets every offset be tried.
	DefaultBudget = rotation.DefaultBudget

	// DefaultSparseFastPath leaves the identity-labelling pre-check off.
	DefaultSparseFastPath = false
)

const (
	panicWorkersInvalid = "containment: WithWorkers: n must be ≥ 1"
	panicBudgetInvalid  = "containment: WithBudget: n must be ≥ 0"
	panicLoggerNil      = "containment: WithLogger: logger must be non-nil"
)

// Option configures Decide and DecideContext.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	workers    int
	budget     int
	sparseFast bool
	logger     *Logger
}

// WithWorkers bounds the offsets evaluated concurrently per direction.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBudget caps the offsets tried per direction; 0 means unlimited.
// An exhausted budget surfaces as rotation.ErrBudgetExhausted.
// Panics if n < 0.
func WithBudget(n int) Option {
	if n < 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *Options) { o.budget = n }
}

// WithSparseFastPath checks containment under the identity labelling with
// roaring adjacency lists before running the rotation search.
func WithSparseFastPath() Option {
	return func(o *Options) { o.sparseFast = true }
}

// WithLogger sets the logger used for debug records. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// Workers returns the worker bound.
func (o Options) Workers() int { return o.workers }

// Budget returns the per-direction rotation budget (0 = unlimited).
func (o Options) Budget() int { return o.budget }

// SparseFastPath reports whether the identity pre-check is enabled.
func (o Options) SparseFastPath() bool { return o.sparseFast }

// NewOptions resolves opts against the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:    DefaultWorkers,
		budget:     DefaultBudget,
		sparseFast: DefaultSparseFastPath,
	}
	for _, set := range opts {
		set(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}

// rotationOptions forwards the search knobs.
func (o Options) rotationOptions() []rotation.Option {
	return []rotation.Option{
		rotation.WithWorkers(o.workers),
		rotation.WithBudget(o.budget),
	}
}
