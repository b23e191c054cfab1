// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by encoders and collaborators.
package matrix

// Source is the read-only view the signature encoder needs: the node count
// and edge membership. Implementations must be safe for concurrent reads and
// must not change while a comparison is running.
type Source interface {
	// Order returns n, the number of nodes (rows == columns).
	Order() int

	// HasEdge reports whether the directed edge i→j is present.
	// Callers guarantee 0 ≤ i,j < Order().
	HasEdge(i, j int) bool
}

// Edge is a directed edge From→To between node indices.
type Edge struct {
	From int
	To   int
}
