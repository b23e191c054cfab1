// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// impl_cycle.go - Cycle(n): 0→1→…→n-1→0.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits i→(i+1)%n for i=0..n-1.
//
// Complexity: O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		c.grow(n)
		for i := 0; i < n; i++ {
			c.add(cfg, i, (i+1)%n)
		}

		return nil
	}
}
