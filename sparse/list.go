// SPDX-License-Identifier: MIT
// Package: cyclosub/sparse
//
// list.go - roaring adjacency list and identity-labelling containment.
//
// Contract:
//   - out[i] holds the out-neighbours of i; immutable after construction.
//   - SubsetOf compares rows under the identity labelling only.
//
// Complexity:
//   - FromEdges: O(n + |E|); FromSource: O(n²) HasEdge calls.
//   - SubsetOf: one AndCardinality per non-empty row.

package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/cyclosub/matrix"
)

// List is an immutable adjacency list backed by roaring bitmaps.
type List struct {
	n   int
	out []*roaring.Bitmap // out[i] = {j : i→j}
}

func newList(n int) *List {
	out := make([]*roaring.Bitmap, n)
	for i := range out {
		out[i] = roaring.New()
	}

	return &List{n: n, out: out}
}

// FromEdges builds an n-node list holding exactly the given edges.
//
// Errors: matrix.ErrNegativeOrder, matrix.ErrOutOfRange.
func FromEdges(n int, edges []matrix.Edge) (*List, error) {
	if n < 0 {
		return nil, fmt.Errorf("sparse.FromEdges: n=%d: %w", n, matrix.ErrNegativeOrder)
	}

	l := newList(n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("sparse.FromEdges: (%d,%d) with n=%d: %w", e.From, e.To, n, matrix.ErrOutOfRange)
		}
		l.out[e.From].Add(uint32(e.To))
	}

	return l, nil
}

// FromSource converts any Source into a List. A *List is returned as is.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNegativeOrder.
// Complexity: O(n²) HasEdge calls.
func FromSource(src matrix.Source) (*List, error) {
	if err := matrix.ValidateSource(src); err != nil {
		return nil, fmt.Errorf("sparse.FromSource: %w", err)
	}
	if l, ok := src.(*List); ok {
		return l, nil
	}

	n := src.Order()
	l := newList(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if src.HasEdge(i, j) {
				l.out[i].Add(uint32(j))
			}
		}
	}

	return l, nil
}

// Order returns the node count. A nil receiver has order 0.
func (l *List) Order() int {
	if l == nil {
		return 0
	}

	return l.n
}

// HasEdge reports whether i→j is present. Out-of-range indices report false.
func (l *List) HasEdge(i, j int) bool {
	if l == nil || i < 0 || j < 0 || i >= l.n || j >= l.n {
		return false
	}

	return l.out[i].Contains(uint32(j))
}

// Neighbors returns the out-neighbours of i in ascending order.
func (l *List) Neighbors(i int) []int {
	if l == nil || i < 0 || i >= l.n {
		return nil
	}

	ids := l.out[i].ToArray()
	out := make([]int, len(ids))
	for k, v := range ids {
		out[k] = int(v)
	}

	return out
}

// EdgeCount returns the number of edges.
func (l *List) EdgeCount() int {
	if l == nil {
		return 0
	}
	var total uint64
	for _, row := range l.out {
		total += row.GetCardinality()
	}

	return int(total)
}

// SubsetOf reports whether every edge of l is an edge of other under the
// identity labelling. Nodes l has beyond other's order must be edge-free.
func (l *List) SubsetOf(other *List) bool {
	for i, row := range l.out {
		if row.IsEmpty() {
			continue
		}
		if i >= other.n {
			return false
		}
		if row.AndCardinality(other.out[i]) != row.GetCardinality() {
			return false
		}
	}

	return true
}

// Direct compares a and b under the identity labelling only and reports
// both containment directions.
func Direct(a, b *List) (aInB, bInA bool) {
	return a.SubsetOf(b), b.SubsetOf(a)
}
