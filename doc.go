// Package cyclosub decides, for two directed graphs given as 0/1 adjacency
// matrices, whether one is a subgraph of the other up to a cyclic
// relabeling of its nodes, and which of the two to retain.
//
// What is inside:
//
//	matrix/       validated square 0/1 matrices (bitset columns), the Source interface
//	signature/    column signatures Σ bit(i,j)·2^i + j·2^n at arbitrary precision
//	rotation/     containment of one signature sequence in another under cyclic rotation
//	containment/  the keep_A / keep_B / equal / keep_both decision, options, logging
//	sparse/       roaring-bitmap adjacency lists; identity-labelling containment
//	builder/      deterministic fixtures (paths, cycles, stars, random sparse graphs)
//
// Quick example:
//
//	res, err := containment.DecideRows(
//		[][]int{{0, 1}, {0, 0}},
//		[][]int{{0, 1}, {1, 0}},
//	)
//	// res.Decision == containment.KeepB
//
// Complexity: O(n²) to encode each graph and O(n³) per containment
// direction. Rotation offsets can be spread over goroutines with
// containment.WithWorkers and cut short with a context or WithBudget.
//
//	go get github.com/katalvlaran/cyclosub
package cyclosub
