// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// impl_star.go - Star(n): hub 0 pointing at leaves 1..n-1.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		c.grow(n)
		for i := 1; i < n; i++ {
			c.add(cfg, 0, i)
		}

		return nil
	}
}
