// SPDX-License-Identifier: MIT

// Package builder assembles deterministic adjacency-matrix fixtures for the
// containment decider, its tests and its benchmarks.
//
// A build composes Constructor closures over one shared node index space and
// returns a *matrix.Binary:
//
//	m, err := builder.Build(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithOffset(2)},
//		builder.Path(4),
//		builder.Edges([2]int{0, 2}),
//	)
//
// The order of the result is the largest order any constructor touched.
// Edges emitted by several constructors collapse into one entry.
//
// Constructors:
//   - Path(n)            0→1→…→n-1                    (n ≥ 2)
//   - Cycle(n)           0→1→…→n-1→0                  (n ≥ 3)
//   - Star(n)            0→i for i=1..n-1             (n ≥ 2)
//   - Complete(n)        every i→j, i≠j               (n ≥ 1)
//   - RandomSparse(n,p)  each admissible i→j with probability p (rng required for 0<p<1)
//   - Edges(pairs...)    explicit pairs
//
// Options:
//   - WithSeed / WithRand  randomness for RandomSparse
//   - WithLoops            admit i→i in Complete and RandomSparse
//   - WithUndirected       mirror every emitted edge
//   - WithOffset(s)        relabel the finished matrix by s (matrix.Binary.Rotate)
//
// Option constructors panic on nonsensical values; constructors return
// wrapped sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) and never panic.
package builder
