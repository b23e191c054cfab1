// SPDX-License-Identifier: MIT
// Package: cyclosub/signature
//
// types.go - ColumnSignature and Sequence value types.
//
// Contract:
//   - value(j) = Σ_i bit(i,j)·2^i + j·2^n; the row component is bit i ⇔ edge i→j.
//   - Row components are stored as bitsets and never mutated after Encode, so
//     values may be shared across goroutines.
//   - Big-integer values are materialized only on request (Value, RowComponent).
//
// Complexity:
//   - Covers / Equal: O(n/64) words.
//   - Value / RowComponent: O(n) per call (fresh *big.Int).

package signature

import (
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ColumnSignature is the signature of one column of an n×n matrix.
// The zero value is the signature of column 0 of the empty matrix.
type ColumnSignature struct {
	column int
	order  int
	rows   *bitset.BitSet // row component; never mutated after Encode
}

// Column returns the column index j.
func (c ColumnSignature) Column() int { return c.column }

// Order returns n, the order of the source matrix.
func (c ColumnSignature) Order() int { return c.order }

// Has reports whether bit i of the row component is set (edge i→j).
func (c ColumnSignature) Has(i int) bool {
	return c.rows != nil && i >= 0 && c.rows.Test(uint(i))
}

// NextRow returns the first set row index ≥ i, or false when none is left.
// It iterates the row component without copying it:
//
//	for i, ok := c.NextRow(0); ok; i, ok = c.NextRow(i + 1) { ... }
func (c ColumnSignature) NextRow(i int) (int, bool) {
	if c.rows == nil || i < 0 {
		return 0, false
	}
	next, ok := c.rows.NextSet(uint(i))

	return int(next), ok
}

// RowCount returns the number of set bits in the row component
// (the in-degree of node j).
func (c ColumnSignature) RowCount() int {
	if c.rows == nil {
		return 0
	}

	return int(c.rows.Count())
}

// Covers reports whether every row bit of o is also set in c, i.e.
// (o & c) == o on the row components, with no relabeling.
func (c ColumnSignature) Covers(o ColumnSignature) bool {
	if o.rows == nil || o.rows.None() {
		return true
	}
	if c.rows == nil {
		return false
	}

	return c.rows.IsSuperSet(o.rows)
}

// Rows returns a copy of the row component as a bitset.
func (c ColumnSignature) Rows() *bitset.BitSet {
	if c.rows == nil {
		return bitset.New(uint(c.order))
	}

	return c.rows.Clone()
}

// RowComponent returns signature mod 2^n.
func (c ColumnSignature) RowComponent() *big.Int {
	v := new(big.Int)
	for i, ok := c.NextRow(0); ok; i, ok = c.NextRow(i + 1) {
		v.SetBit(v, i, 1)
	}

	return v
}

// Value returns the full signature: row component + j·2^n.
func (c ColumnSignature) Value() *big.Int {
	hi := new(big.Int).Lsh(big.NewInt(int64(c.column)), uint(c.order))

	return hi.Or(hi, c.RowComponent())
}

// Uint64 returns the signature as a uint64 when it fits.
func (c ColumnSignature) Uint64() (uint64, bool) {
	v := c.Value()
	if !v.IsUint64() {
		return 0, false
	}

	return v.Uint64(), true
}

// Equal reports whether both signatures have the same value and order.
func (c ColumnSignature) Equal(o ColumnSignature) bool {
	if c.column != o.column || c.order != o.order {
		return false
	}
	if c.RowCount() != o.RowCount() {
		return false
	}

	return c.Covers(o)
}

// String renders the decimal value.
func (c ColumnSignature) String() string { return c.Value().String() }

// Sequence is the ordered list of column signatures of one matrix; index j
// holds the signature of column j.
type Sequence struct {
	sigs []ColumnSignature
}

// Len returns the number of signatures (the matrix order n).
func (s Sequence) Len() int { return len(s.sigs) }

// At returns the signature of column j. It panics if j is out of range.
func (s Sequence) At(j int) ColumnSignature { return s.sigs[j] }

// Equal reports whether both sequences have the same length and identical
// values position by position.
func (s Sequence) Equal(o Sequence) bool {
	if len(s.sigs) != len(o.sigs) {
		return false
	}
	for j := range s.sigs {
		if !s.sigs[j].Equal(o.sigs[j]) {
			return false
		}
	}

	return true
}

// Values returns every signature as a *big.Int.
func (s Sequence) Values() []*big.Int {
	out := make([]*big.Int, len(s.sigs))
	for j, c := range s.sigs {
		out[j] = c.Value()
	}

	return out
}

// RowComponents returns every row component as a *big.Int.
func (s Sequence) RowComponents() []*big.Int {
	out := make([]*big.Int, len(s.sigs))
	for j, c := range s.sigs {
		out[j] = c.RowComponent()
	}

	return out
}

// Uint64s returns all values as uint64, or false if any does not fit.
// Every signature of a matrix with n ≤ 58 fits.
func (s Sequence) Uint64s() ([]uint64, bool) {
	out := make([]uint64, len(s.sigs))
	for j, c := range s.sigs {
		v, ok := c.Uint64()
		if !ok {
			return nil, false
		}
		out[j] = v
	}

	return out, true
}

// EdgeCount returns the total number of set row bits across all columns.
func (s Sequence) EdgeCount() int {
	total := 0
	for _, c := range s.sigs {
		total += c.RowCount()
	}

	return total
}

// String renders the values as "[v0 v1 ...]".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for j, c := range s.sigs {
		if j > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
