// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// impl_edges.go - Edges(pairs...): explicit edge list.

package builder

import "fmt"

const methodEdges = "Edges"

// Edges returns a Constructor that emits each pair {i, j} as i→j. The order
// grows to cover the largest endpoint. Negative endpoints fail with
// ErrConstructFailed.
func Edges(pairs ...[2]int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		for k, e := range pairs {
			if e[0] < 0 || e[1] < 0 {
				return fmt.Errorf("%s: pair %d (%d,%d) has a negative endpoint: %w",
					methodEdges, k, e[0], e[1], ErrConstructFailed)
			}
		}

		for _, e := range pairs {
			c.grow(max(e[0], e[1]) + 1)
			c.add(cfg, e[0], e[1])
		}

		return nil
	}
}
