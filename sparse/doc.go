// SPDX-License-Identifier: MIT

// Package sparse is the adjacency-list fast path for sparse graphs.
//
// A List keeps, for every node i, a roaring bitmap of its out-neighbours.
// It implements matrix.Source, so it can be encoded and compared exactly
// like a dense matrix, and it answers direct containment (identity
// labelling, no rotation) with one bitmap intersection per row:
//
//	a ⊆ b  ⇔  ∀i: out_a(i) ⊆ out_b(i)
//
// Direct containment is the offset-0 case of the rotation search, so a
// positive answer here is a positive answer there; a negative answer says
// nothing about the other offsets.
//
// Complexity: O(n + E) memory; SubsetOf is O(Σ_i |out_a(i)|) in practice.
package sparse
