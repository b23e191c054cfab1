// SPDX-License-Identifier: MIT
// Package: cyclosub/rotation
//
// rotation.go - containment of one signature sequence in another under
// cyclic relabeling.
//
// Contract:
//   - Offset r maps node p of the shorter graph to node (p+r) mod k of the
//     longer one; column i is compared with column (i+r) mod k.
//   - An offset succeeds only if all m positions are covered; the first
//     success ends the search.
//   - m == 0 is vacuously contained (offset 0); m > k is never contained.
//   - Inputs are read only; a Result is built per call.
//
// Complexity:
//   - Time: O(k · (m + E_s)) where E_s is the edge count of the shorter graph.
//   - Space: O(1) extra for Match; O(workers) goroutines for MatchContext.
//
// Determinism:
//   - Match and single-worker MatchContext report the smallest offset.
//   - Several workers agree on Contained but may report any matching offset.

package rotation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cyclosub/signature"
)

// Result describes one containment search.
type Result struct {
	// Contained is true when some offset matched every position.
	Contained bool

	// Offset is the matching offset, or -1.
	Offset int

	// BestOffset is the offset with the most matching positions among those
	// tried (lowest offset on ties), or -1 if none was tried.
	BestOffset int

	// BestCount is the number of matching positions at BestOffset.
	BestCount int

	// Tried is the number of offsets evaluated.
	Tried int
}

// Contains reports whether shorter is contained in longer under some cyclic
// rotation of longer. See Match.
func Contains(shorter, longer signature.Sequence) bool {
	return Match(shorter, longer).Contained
}

// Match searches the offsets 0..k-1 in ascending order and stops at the first
// one under which every column of shorter is covered. Pure and deterministic:
// the reported Offset is the smallest containing offset.
//
// Complexity: O(k · (m + E_s)) time, O(1) extra space.
func Match(shorter, longer signature.Sequence) Result {
	res, done := trivial(shorter, longer)
	if done {
		return res
	}

	m, k := shorter.Len(), longer.Len()
	for r := 0; r < k; r++ {
		count := matchCount(shorter, longer, r)
		res.observe(r, count)
		if accepted(m, count) {
			res.Contained = true
			res.Offset = r

			return res
		}
	}

	return res
}

// MatchContext is Match with concurrency, a rotation budget and
// cancellation. Offsets are evaluated by up to Workers goroutines; the first
// success cancels the rest. With more than one worker the reported Offset is
// any containing offset, not necessarily the smallest; Contained is the same
// as Match's whenever the whole range is searched.
//
// Errors:
//   - ctx.Err() if ctx ends before the search completes.
//   - ErrBudgetExhausted if the budget ran out before all k offsets were
//     tried and none matched. The partial Result is returned alongside.
func MatchContext(ctx context.Context, shorter, longer signature.Sequence, opts ...Option) (Result, error) {
	// 1) A dead context fails before any work.
	if err := ctx.Err(); err != nil {
		return Result{Offset: -1, BestOffset: -1}, err
	}

	// 2) m == 0 and m > k need no search.
	res, done := trivial(shorter, longer)
	if done {
		return res, nil
	}

	// 3) The budget caps the offsets 0..limit-1.
	o := gatherOptions(opts...)
	m, k := shorter.Len(), longer.Len()
	limit := k
	if o.budget > 0 && o.budget < k {
		limit = o.budget
	}

	// 4) Fan out; res is shared under mu and errFound cancels gctx.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for r := 0; r < limit; r++ {
		r := r
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			count := matchCount(shorter, longer, r)

			mu.Lock()
			defer mu.Unlock()
			res.observe(r, count)
			if accepted(m, count) && (!res.Contained || r < res.Offset) {
				res.Contained = true
				res.Offset = r

				return errFound
			}

			return nil
		})
	}

	// 5) A match wins over every error; then real errors, ctx, budget.
	err := g.Wait()
	switch {
	case res.Contained:
		return res, nil
	case err != nil && !errors.Is(err, errFound):
		return res, err
	case ctx.Err() != nil:
		return res, ctx.Err()
	case limit < k:
		return res, fmt.Errorf("MatchContext: %d of %d offsets tried: %w", limit, k, ErrBudgetExhausted)
	}

	return res, nil
}

// trivial settles the m == 0 and m > k cases.
func trivial(shorter, longer signature.Sequence) (Result, bool) {
	res := Result{Offset: -1, BestOffset: -1}
	m, k := shorter.Len(), longer.Len()
	switch {
	case m == 0:
		res.Contained = true
		res.Offset = 0

		return res, true
	case m > k:
		return res, true
	}

	return res, false
}

// observe records an evaluated offset, keeping the lowest best offset.
func (r *Result) observe(offset, count int) {
	r.Tried++
	if r.BestOffset < 0 || count > r.BestCount || (count == r.BestCount && offset < r.BestOffset) {
		r.BestOffset = offset
		r.BestCount = count
	}
}

// accepted applies the all-positions rule and the MinMatches floor.
func accepted(m, count int) bool {
	return count == m && (m <= 1 || count >= MinMatches)
}

// matchCount returns how many positions i of shorter are covered by column
// (i+r) mod k of longer relabeled by r.
func matchCount(shorter, longer signature.Sequence, r int) int {
	m, k := shorter.Len(), longer.Len()
	count := 0
	for i := 0; i < m; i++ {
		if covers(longer.At((i+r)%k), shorter.At(i), r, k) {
			count++
		}
	}

	return count
}

// covers reports whether every row bit p of small is set as (p+r) mod k in
// big, i.e. (small & rotated(big)) == small.
func covers(big, small signature.ColumnSignature, r, k int) bool {
	if r == 0 {
		return big.Covers(small)
	}
	for p, ok := small.NextRow(0); ok; p, ok = small.NextRow(p + 1) {
		if !big.Has((p + r) % k) {
			return false
		}
	}

	return true
}
