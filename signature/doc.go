// SPDX-License-Identifier: MIT

// Package signature turns an adjacency matrix into its sequence of column
// signatures.
//
// For an n×n 0/1 matrix, column j is encoded as
//
//	signature(j) = Σ_{i<n} bit(i,j)·2^i + j·2^n
//
// The low n bits (the row component) say which nodes have an edge into j;
// the high part records the column index. Since the row component is at most
// 2^n − 1, the high part separates every column: signatures of one matrix are
// pairwise distinct whatever the edge pattern.
//
// Example (n = 2):
//
//	[1 1]   column 0: rows {0}   → 1 + 0·4 = 1
//	[0 0]   column 1: rows {0}   → 1 + 1·4 = 5
//
// Signatures are arbitrary precision. Values are exposed as *big.Int, and as
// uint64 when they fit; the row component is kept as a bitset so containment
// tests never materialise the 2^n-sized integer.
//
// Complexity: Encode is O(n²) over the matrix entries (O(n²/64) for sources
// that hand out columns directly).
package signature
