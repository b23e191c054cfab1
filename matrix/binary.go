// SPDX-License-Identifier: MIT
// Package matrix - Binary: immutable n×n edge-presence matrix.
//
// Contract:
//   - Square, entries in {0,1}, n ≥ 0 (n = 0 is the empty graph).
//   - Column-major bitsets: cols[j].Test(i) ⇔ edge i→j.
//   - Immutable after construction; derived matrices (Rotate, WithEdge) are
//     fresh copies, so a *Binary may be shared across goroutines.

package matrix

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Binary is a validated 0/1 adjacency matrix.
type Binary struct {
	n    int
	cols []*bitset.BitSet // cols[j] = {i : edge i→j}
}

// ColumnSource is implemented by sources that can hand out a column's row
// set directly; encoders use it to skip the O(n²) HasEdge scan.
type ColumnSource interface {
	Source

	// Column returns a copy of the row set of column j.
	Column(j int) *bitset.BitSet
}

// newBinary allocates an all-zero n×n matrix.
func newBinary(n int) *Binary {
	cols := make([]*bitset.BitSet, n)
	for j := range cols {
		cols[j] = bitset.New(uint(n))
	}

	return &Binary{n: n, cols: cols}
}

// NewBinary validates rows and builds a Binary from them.
// rows[i][j] = 1 denotes the edge i→j. The input slice is not retained.
//
// Errors: ErrNonSquare, ErrNonBinary (both wrap ErrInvalidInput).
// Complexity: O(n²).
func NewBinary(rows [][]int) (*Binary, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("NewBinary: %w", err)
	}

	b := newBinary(len(rows))
	for i, row := range rows {
		for j, v := range row {
			if v == 1 {
				b.cols[j].Set(uint(i))
			}
		}
	}

	return b, nil
}

// MustBinary is NewBinary for fixtures and examples; it panics on error.
func MustBinary(rows [][]int) *Binary {
	b, err := NewBinary(rows)
	if err != nil {
		panic(err)
	}

	return b
}

// Zero returns the n×n matrix without edges.
func Zero(n int) (*Binary, error) {
	if n < 0 {
		return nil, fmt.Errorf("Zero: n=%d: %w", n, ErrNegativeOrder)
	}

	return newBinary(n), nil
}

// FromEdges builds an n×n matrix holding exactly the given edges.
// Duplicate edges collapse into one entry.
//
// Errors: ErrNegativeOrder, ErrOutOfRange.
// Complexity: O(n² / 64 + |edges|).
func FromEdges(n int, edges []Edge) (*Binary, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrNegativeOrder)
	}

	b := newBinary(n)
	for _, e := range edges {
		if err := validateIndex("FromEdges", e.From, e.To, n); err != nil {
			return nil, err
		}
		b.cols[e.To].Set(uint(e.From))
	}

	return b, nil
}

// FromSource copies any Source into a Binary.
//
// Errors: ErrNilMatrix, ErrNegativeOrder.
// Complexity: O(n²) HasEdge calls.
func FromSource(src Source) (*Binary, error) {
	if err := ValidateSource(src); err != nil {
		return nil, fmt.Errorf("FromSource: %w", err)
	}
	if b, ok := src.(*Binary); ok {
		return b, nil
	}

	n := src.Order()
	b := newBinary(n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if src.HasEdge(i, j) {
				b.cols[j].Set(uint(i))
			}
		}
	}

	return b, nil
}

// Order returns n. A nil receiver has order 0.
func (b *Binary) Order() int {
	if b == nil {
		return 0
	}

	return b.n
}

// HasEdge reports whether i→j is present. Out-of-range indices and a nil
// receiver report false.
func (b *Binary) HasEdge(i, j int) bool {
	if b == nil || i < 0 || j < 0 || i >= b.n || j >= b.n {
		return false
	}

	return b.cols[j].Test(uint(i))
}

// Column returns a copy of the row set of column j.
// It panics if j is out of range, like slice indexing.
func (b *Binary) Column(j int) *bitset.BitSet {
	return b.cols[j].Clone()
}

// EdgeCount returns the number of 1 entries (self-loops included).
// Complexity: O(n² / 64).
func (b *Binary) EdgeCount() int {
	total := 0
	for _, c := range b.cols {
		total += int(c.Count())
	}

	return total
}

// Edges lists all edges in row-major order (From asc, then To asc).
// Complexity: O(n²).
func (b *Binary) Edges() []Edge {
	out := make([]Edge, 0, b.EdgeCount())
	for i := 0; i < b.n; i++ {
		for j := 0; j < b.n; j++ {
			if b.cols[j].Test(uint(i)) {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}

// Rows returns the matrix as a fresh [][]int.
func (b *Binary) Rows() [][]int {
	rows := make([][]int, b.n)
	for i := range rows {
		rows[i] = make([]int, b.n)
		for j := 0; j < b.n; j++ {
			if b.cols[j].Test(uint(i)) {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// Equal reports whether both matrices have the same order and edges.
func (b *Binary) Equal(other *Binary) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.n != other.n {
		return false
	}
	for j := range b.cols {
		if !b.cols[j].Equal(other.cols[j]) {
			return false
		}
	}

	return true
}

// Rotate returns the matrix obtained by cyclically relabeling every node i
// as (i+s) mod n: the edge i→j becomes (i+s)→(j+s). Negative s rotates
// backwards. Rotate(0) returns an equal copy.
// Complexity: O(n²).
func (b *Binary) Rotate(s int) *Binary {
	out := newBinary(b.n)
	if b.n == 0 {
		return out
	}
	s = ((s % b.n) + b.n) % b.n

	for j, col := range b.cols {
		dst := out.cols[(j+s)%b.n]
		for i, ok := col.NextSet(0); ok; i, ok = col.NextSet(i + 1) {
			dst.Set((i + uint(s)) % uint(b.n))
		}
	}

	return out
}

// WithEdge returns a copy of b with the edge i→j set.
//
// Errors: ErrOutOfRange.
func (b *Binary) WithEdge(i, j int) (*Binary, error) {
	if err := validateIndex("WithEdge", i, j, b.n); err != nil {
		return nil, err
	}

	out := b.clone()
	out.cols[j].Set(uint(i))

	return out, nil
}

// WithoutEdge returns a copy of b with the edge i→j cleared.
//
// Errors: ErrOutOfRange.
func (b *Binary) WithoutEdge(i, j int) (*Binary, error) {
	if err := validateIndex("WithoutEdge", i, j, b.n); err != nil {
		return nil, err
	}

	out := b.clone()
	out.cols[j].Clear(uint(i))

	return out, nil
}

func (b *Binary) clone() *Binary {
	cols := make([]*bitset.BitSet, b.n)
	for j, c := range b.cols {
		cols[j] = c.Clone()
	}

	return &Binary{n: b.n, cols: cols}
}

// String renders the matrix one row per line, e.g. "[0 1]\n[0 0]".
func (b *Binary) String() string {
	if b == nil {
		return "<nil>"
	}

	var sb strings.Builder
	for i := 0; i < b.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < b.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if b.cols[j].Test(uint(i)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
