// SPDX-License-Identifier: MIT

package containment

import (
	"errors"

	"github.com/katalvlaran/cyclosub/matrix"
)

// ErrInvalidInput is matrix.ErrInvalidInput, re-exported so callers of this
// package can match input errors without importing matrix.
var ErrInvalidInput = matrix.ErrInvalidInput

// ErrOrderTooLarge indicates an order above MaxEstimateOrder passed to
// Estimate.
var ErrOrderTooLarge = errors.New("containment: order too large to estimate")
