// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG (deterministic draws).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLoops admits self-loops i→i in Complete and RandomSparse.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}

// WithUndirected mirrors every emitted edge i→j with j→i.
func WithUndirected() BuilderOption {
	return func(c *builderConfig) { c.undirected = true }
}

// WithOffset relabels the finished matrix: node i becomes (i+s) mod n.
// Any integer is accepted; negative values rotate backwards.
func WithOffset(s int) BuilderOption {
	return func(c *builderConfig) { c.offset = s }
}
