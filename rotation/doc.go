// SPDX-License-Identifier: MIT

// Package rotation decides whether one signature sequence is contained in
// another under some cyclic rotation of the longer one.
//
// 🚀 What is being searched?
//
//	Only the k cyclic relabelings of the larger graph, never the k! node
//	permutations. For k = 4 the candidates are
//	  offset 0: [0 1 2 3]
//	  offset 1: [1 2 3 0]
//	  offset 2: [2 3 0 1]
//	  offset 3: [3 0 1 2]
//	which keeps the search polynomial at the price of completeness.
//
// ✨ Matching rule:
//
//	With m = len(shorter), k = len(longer) and offset r, position i of the
//	shorter sequence is compared with column (i+r) mod k of the longer one.
//	Rotation relabels nodes, so row bits move with the columns: the row
//	component of the rotated column has bit p set iff the original column
//	has bit (p+r) mod k set. Position i matches iff
//
//	  (shorter[i] & rotated[i]) == shorter[i]
//
//	on row components, i.e. every edge p→i of the shorter graph exists as
//	(p+r)→(i+r) in the longer one. An offset succeeds when all m positions
//	match; the search stops at the first success.
//
// Edge cases:
//   - m == 0: vacuously contained.
//   - m > k: never contained.
//   - m ≥ 2: the best offset must match at least MinMatches positions, so a
//     containment always rests on two corresponding columns.
//
// ⚙️ Usage:
//
//	ok := rotation.Contains(small, large)
//
//	res, err := rotation.MatchContext(ctx, small, large,
//		rotation.WithWorkers(8),   // evaluate offsets in parallel
//		rotation.WithBudget(1024), // give up after 1024 offsets
//	)
//
// Complexity:
//
//	Time O(k · (m + E_s)) per direction, where E_s is the number of edges of
//	the shorter graph (O(k·m²) worst case, O(n³) together with encoding).
//	Memory O(1) beyond the inputs (O(workers) in MatchContext).
package rotation
