// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// impl_path.go - Path(n): 0→1→…→n-1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i→i+1 for i=0..n-2 in ascending order.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		c.grow(n)
		for i := 0; i+1 < n; i++ {
			c.add(cfg, i, i+1)
		}

		return nil
	}
}
