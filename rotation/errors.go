// SPDX-License-Identifier: MIT

package rotation

import "errors"

var (
	// ErrBudgetExhausted indicates that MatchContext evaluated its whole
	// rotation budget without finding a containing offset. The answer is
	// "unknown", not "not contained".
	ErrBudgetExhausted = errors.New("rotation: rotation budget exhausted")

	// errFound stops the remaining workers once an offset succeeds.
	errFound = errors.New("rotation: match found")
)
