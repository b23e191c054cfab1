// SPDX-License-Identifier: MIT
// Package: cyclosub/signature
//
// encode.go - Source → Sequence.
//
// Contract:
//   - Validation first (nil, typed nil, negative order); no partial output.
//   - matrix.ColumnSource is read column by column; any other Source through HasEdge.
//
// Complexity:
//   - Time: O(n²) with HasEdge, O(n²/64) with ColumnSource.
//   - Space: O(n²/64) words.

package signature

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/cyclosub/matrix"
)

// Encode computes the column signatures of src, in column order.
//
// An order-0 source yields an empty Sequence. Sources implementing
// matrix.ColumnSource are read column by column; any other Source is scanned
// through HasEdge.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNegativeOrder (both wrap
// matrix.ErrInvalidInput).
// Complexity: O(n²) time, O(n²/64) words.
func Encode(src matrix.Source) (Sequence, error) {
	if err := matrix.ValidateSource(src); err != nil {
		return Sequence{}, fmt.Errorf("Encode: %w", err)
	}

	n := src.Order()
	sigs := make([]ColumnSignature, n)
	cs, columnar := src.(matrix.ColumnSource)
	for j := 0; j < n; j++ {
		var rows *bitset.BitSet
		if columnar {
			rows = cs.Column(j)
		} else {
			rows = bitset.New(uint(n))
			for i := 0; i < n; i++ {
				if src.HasEdge(i, j) {
					rows.Set(uint(i))
				}
			}
		}
		sigs[j] = ColumnSignature{column: j, order: n, rows: rows}
	}

	return Sequence{sigs: sigs}, nil
}

// EncodeRows validates raw rows and encodes them.
//
// Errors: matrix.ErrNonSquare, matrix.ErrNonBinary (both wrap
// matrix.ErrInvalidInput).
func EncodeRows(rows [][]int) (Sequence, error) {
	b, err := matrix.NewBinary(rows)
	if err != nil {
		return Sequence{}, fmt.Errorf("EncodeRows: %w", err)
	}

	return Encode(b)
}
