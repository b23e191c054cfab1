// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Directed: ordered pairs (i,j); self-loops only under WithLoops.
//   - Undirected: unordered pairs {i,j}, i<j, each mirrored.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc. Fixed seed ⇒ fixed matrix.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each admissible edge of an
// n-node graph independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		// 1) Validate parameters in priority order: size, probability, rng.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		c.grow(n)

		// 2) Bernoulli trials; p ∈ {0,1} is decided without drawing.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}

			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			start := 0
			if cfg.undirected {
				start = i // unordered pairs; add mirrors j→i
			}
			for j := start; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if keep() {
					c.add(cfg, i, j)
				}
			}
		}

		return nil
	}
}
