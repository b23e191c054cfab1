// SPDX-License-Identifier: MIT
// Package: cyclosub/containment
//
// decide.go - the retention decision between two graphs.
//
// Contract:
//   - Identical signature sequences ⇒ Equal without a search.
//   - Different orders ⇒ only smaller ⊆ larger is searched.
//   - Equal orders ⇒ both directions are searched.
//   - Retained is A for KeepA and Equal, B for KeepB, nil for KeepBoth.
//   - Input errors are wrapped once with the side (A or B) and keep their sentinel.
//
// Complexity:
//   - Time: O(nA² + nB²) encoding + O(k²·m) per searched direction.
//   - Space: O(nA² + nB²)/64 words for the signatures.
//
// Determinism:
//   - With one worker (default) offsets are the smallest containing ones.

package containment

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cyclosub/matrix"
	"github.com/katalvlaran/cyclosub/rotation"
	"github.com/katalvlaran/cyclosub/signature"
	"github.com/katalvlaran/cyclosub/sparse"
)

const (
	dirAInB = "A⊆B"
	dirBInA = "B⊆A"
)

// Result is the outcome of one decision.
type Result struct {
	// Decision is the retention verdict.
	Decision Decision

	// Retained is A for KeepA and Equal, B for KeepB, nil for KeepBoth.
	Retained matrix.Source

	// AInB and BInA report the containment found in each direction.
	// A direction that was not admissible (larger into smaller) is false.
	AInB, BInA bool

	// OffsetAInB and OffsetBInA are the matching rotation offsets, or -1.
	OffsetAInB, OffsetBInA int

	// SignaturesA and SignaturesB are the encoded inputs.
	SignaturesA, SignaturesB signature.Sequence
}

// Decide compares a and b and reports which to keep.
// See DecideContext.
func Decide(a, b matrix.Source, opts ...Option) (Result, error) {
	return DecideContext(context.Background(), a, b, opts...)
}

// DecideRows validates two raw 0/1 matrices and decides between them.
//
// Errors: matrix.ErrNonSquare, matrix.ErrNonBinary (wrapped, tagged A or B).
func DecideRows(a, b [][]int, opts ...Option) (Result, error) {
	ma, err := matrix.NewBinary(a)
	if err != nil {
		return Result{}, fmt.Errorf("DecideRows: A: %w", err)
	}
	mb, err := matrix.NewBinary(b)
	if err != nil {
		return Result{}, fmt.Errorf("DecideRows: B: %w", err)
	}

	return Decide(ma, mb, opts...)
}

// DecideContext encodes both graphs, tests containment under cyclic rotation
// and resolves the Decision.
//
// Steps:
//  1. Identical signature sequences → Equal, A retained, no search.
//  2. Orders differ → only smaller ⊆ larger is tested.
//  3. Orders equal → both directions are tested.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNegativeOrder for bad sources.
//   - rotation.ErrBudgetExhausted when WithBudget cut a search short.
//   - ctx.Err() on cancellation.
func DecideContext(ctx context.Context, a, b matrix.Source, opts ...Option) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	// 1) Encode both sides; validation errors name the side.
	sigA, err := signature.Encode(a)
	if err != nil {
		return Result{}, fmt.Errorf("DecideContext: A: %w", err)
	}
	sigB, err := signature.Encode(b)
	if err != nil {
		return Result{}, fmt.Errorf("DecideContext: B: %w", err)
	}

	res := Result{
		OffsetAInB:  -1,
		OffsetBInA:  -1,
		SignaturesA: sigA,
		SignaturesB: sigB,
	}
	nA, nB := sigA.Len(), sigB.Len()
	log := o.logger.WithOrders(nA, nB)

	// 2) Identical sequences settle without a search.
	if sigA.Equal(sigB) {
		res.Decision, res.Retained = Equal, a
		res.AInB, res.BInA = true, true
		res.OffsetAInB, res.OffsetBInA = 0, 0
		log.Debug("identical signatures", "decision", res.Decision)

		return res, nil
	}

	// 3) Search only the admissible directions.
	s := &searcher{ctx: ctx, opts: o, log: log}
	if nA <= nB {
		res.AInB, res.OffsetAInB, err = s.contains(a, b, sigA, sigB, dirAInB)
		if err != nil {
			return res, fmt.Errorf("DecideContext: %s: %w", dirAInB, err)
		}
	}
	if nB <= nA {
		res.BInA, res.OffsetBInA, err = s.contains(b, a, sigB, sigA, dirBInA)
		if err != nil {
			return res, fmt.Errorf("DecideContext: %s: %w", dirBInA, err)
		}
	}

	// 4) Map the two flags to a verdict and the retained graph.
	res.Decision = resolve(res.AInB, res.BInA)
	switch res.Decision {
	case KeepA, Equal:
		res.Retained = a
	case KeepB:
		res.Retained = b
	}
	log.Debug("decided",
		"decision", res.Decision,
		"aInB", res.AInB,
		"bInA", res.BInA,
		"offsetAInB", res.OffsetAInB,
		"offsetBInA", res.OffsetBInA,
	)

	return res, nil
}

// searcher runs one direction at a time with shared configuration.
type searcher struct {
	ctx  context.Context
	opts Options
	log  *Logger
}

// contains reports whether small ⊆ large under some rotation and the offset.
func (s *searcher) contains(small, large matrix.Source, sigSmall, sigLarge signature.Sequence, dir string) (bool, int, error) {
	log := s.log.WithDirection(dir)

	if s.opts.sparseFast {
		ok, err := direct(small, large)
		if err != nil {
			return false, -1, err
		}
		if ok {
			log.Debug("identity labelling", "contained", true)

			return true, 0, nil
		}
	}

	r, err := rotation.MatchContext(s.ctx, sigSmall, sigLarge, s.opts.rotationOptions()...)
	log.Debug("rotation search",
		"contained", r.Contained,
		"offset", r.Offset,
		"bestOffset", r.BestOffset,
		"bestCount", r.BestCount,
		"tried", r.Tried,
	)
	if err != nil {
		return false, -1, err
	}

	return r.Contained, r.Offset, nil
}

// direct tests small ⊆ large under the identity labelling (rotation offset 0).
func direct(small, large matrix.Source) (bool, error) {
	ls, err := sparse.FromSource(small)
	if err != nil {
		return false, err
	}
	ll, err := sparse.FromSource(large)
	if err != nil {
		return false, err
	}

	return ls.SubsetOf(ll), nil
}
