// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every rejection of caller-supplied input wraps ErrInvalidInput, so callers
// may branch on the class (errors.Is(err, ErrInvalidInput)) or on the precise
// cause (errors.Is(err, ErrNonSquare)). Context is attached at the boundary
// with fmt.Errorf("Method: ...: %w", ErrX).

package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the class of every rejected matrix input.
var ErrInvalidInput = errors.New("matrix: invalid input")

var (
	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrNonBinary indicates an entry outside {0,1}.
	ErrNonBinary = fmt.Errorf("%w: entry outside {0,1}", ErrInvalidInput)

	// ErrNilMatrix indicates a nil matrix or source.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)

	// ErrOutOfRange indicates a node index outside [0,n).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidInput)

	// ErrNegativeOrder indicates a source reporting n < 0.
	ErrNegativeOrder = fmt.Errorf("%w: negative order", ErrInvalidInput)
)
