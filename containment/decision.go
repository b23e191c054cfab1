// SPDX-License-Identifier: MIT

package containment

// Decision names which graph(s) a caller should keep.
type Decision string

const (
	// KeepA: B is contained in A, A is retained.
	KeepA Decision = "keep_A"

	// KeepB: A is contained in B, B is retained.
	KeepB Decision = "keep_B"

	// Equal: identical signatures or mutual containment, A is retained.
	Equal Decision = "equal"

	// KeepBoth: neither contains the other, nothing is retained.
	KeepBoth Decision = "keep_both"
)

// String returns the tag.
func (d Decision) String() string { return string(d) }

// resolve maps the two containment flags to a Decision.
func resolve(aInB, bInA bool) Decision {
	switch {
	case aInB && bInA:
		return Equal
	case aInB:
		return KeepB
	case bInA:
		return KeepA
	default:
		return KeepBoth
	}
}
