// SPDX-License-Identifier: MIT

// Package matrix provides the 0/1 adjacency matrix consumed by the
// containment pipeline.
//
// The matrix package provides:
//
//   - Binary: an immutable n×n edge-presence matrix (n ≥ 0). Entry (i,j)=1
//     denotes a directed edge i→j. The diagonal is unconstrained; self-loops
//     are stored like any other edge.
//   - Source: the narrow read-only contract (Order, HasEdge) every encoder
//     input satisfies. Binary and sparse.List both implement it.
//   - Validators and a unified sentinel error set. Every input rejection
//     satisfies errors.Is(err, ErrInvalidInput).
//
// Storage is column-major: column j is a bitset of the rows i with an edge
// i→j. That layout is exactly the row component of a column signature, so
// encoding is a read of the stored columns.
//
// Quick example:
//
//	a, err := matrix.NewBinary([][]int{
//		{0, 1, 0},
//		{0, 0, 1},
//		{0, 0, 0},
//	})
//	if err != nil { /* errors.Is(err, matrix.ErrInvalidInput) */ }
//	r := a.Rotate(1) // relabel node i as (i+1) mod n
//
// Complexity:
//
//	NewBinary, Rotate, Rows: O(n²) time, O(n²/64) words of memory.
//	HasEdge: O(1).
package matrix
