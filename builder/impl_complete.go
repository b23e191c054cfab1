// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// impl_complete.go - Complete(n): every ordered pair.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits i→j for all i≠j; i→i as well under WithLoops.
//
// Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		c.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				c.add(cfg, i, j)
			}
		}

		return nil
	}
}
