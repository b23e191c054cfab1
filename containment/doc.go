// SPDX-License-Identifier: MIT

// Package containment decides which of two directed graphs to retain when one
// may be a cyclically relabeled subgraph of the other.
//
// Decide encodes both adjacency matrices into column-signature sequences,
// searches for containment under cyclic rotation in the admissible
// directions, and maps the outcome to a Decision:
//
//	A ⊆ B only   → KeepB     (retain B)
//	B ⊆ A only   → KeepA     (retain A)
//	both / same  → Equal     (retain A)
//	neither      → KeepBoth  (retain nothing)
//
// When the orders differ only the smaller graph is tested against the larger
// one. Equal orders are tested in both directions.
//
// Options:
//   - WithWorkers(n)       evaluate rotation offsets on n goroutines
//   - WithBudget(n)        cap the offsets tried per direction
//   - WithSparseFastPath() try identity-labelling containment first (roaring)
//   - WithLogger(l)        structured debug logging (silent by default)
//
// Complexity: O(n²) encoding per graph plus O(k·m·k) for the rotation search,
// i.e. O(n³) per direction. Estimate reports the same figures for given orders.
package containment
