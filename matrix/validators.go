// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for input checks on raw rows and on Sources.
//  - Return sentinels wrapped with the validator tag so call sites can
//    match with errors.Is and still read where the check failed.

package matrix

import (
	"fmt"
	"reflect"
)

// ValidateRows checks that rows describe a square matrix with entries in {0,1}.
// A nil or empty slice is the valid 0×0 matrix.
//
// Errors: ErrNonSquare (first ragged row), ErrNonBinary (first bad entry,
// scanning row-major). Shape is checked for every row before any entry.
// Complexity: O(n²).
func ValidateRows(rows [][]int) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("ValidateRows: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if v != 0 && v != 1 {
				return fmt.Errorf("ValidateRows: entry (%d,%d)=%d: %w", i, j, v, ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateSource rejects nil sources (including typed nil pointers) and
// negative orders.
// Complexity: O(1).
func ValidateSource(src Source) error {
	if src == nil {
		return fmt.Errorf("ValidateSource: %w", ErrNilMatrix)
	}
	if rv := reflect.ValueOf(src); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Errorf("ValidateSource: %T: %w", src, ErrNilMatrix)
	}
	if n := src.Order(); n < 0 {
		return fmt.Errorf("ValidateSource: order %d: %w", n, ErrNegativeOrder)
	}

	return nil
}

// validateIndex checks 0 ≤ i,j < n.
func validateIndex(tag string, i, j, n int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%s: (%d,%d) with n=%d: %w", tag, i, j, n, ErrOutOfRange)
	}

	return nil
}
