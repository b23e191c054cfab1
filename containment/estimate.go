// SPDX-License-Identifier: MIT
// Package: cyclosub/containment
//
// estimate.go - worst-case operation counts for one Decide call.
//
// Contract:
//   - 0 ≤ nA, nB ≤ MaxEstimateOrder (else ErrNegativeOrder / ErrOrderTooLarge).
//   - Counts are int64 so the ceiling holds on 32-bit platforms too:
//     2·k³ + 2·k² < 2^63 for k ≤ 2^20.
//
// Complexity: O(1).

package containment

import (
	"fmt"

	"github.com/katalvlaran/cyclosub/matrix"
)

// MaxEstimateOrder is the largest order Estimate accepts.
const MaxEstimateOrder = 1 << 20

// Cost is a worst-case operation count for one Decide call.
type Cost struct {
	EncodeA    int64 // nA² entries read
	EncodeB    int64 // nB² entries read
	Directions int   // 1 when orders differ, 2 when equal
	Rotations  int   // offsets per direction, k = max(nA, nB)
	CompareOps int64 // Directions · k offsets · m columns · k row bits
	Total      int64
}

// Estimate returns the worst-case cost of deciding between graphs of orders
// nA and nB: O(n²) encoding and O(n³) rotation search per direction.
//
// Errors: matrix.ErrNegativeOrder, ErrOrderTooLarge.
func Estimate(nA, nB int) (Cost, error) {
	// 1) Validate the domain before any multiplication.
	if nA < 0 || nB < 0 {
		return Cost{}, fmt.Errorf("Estimate: nA=%d nB=%d: %w", nA, nB, matrix.ErrNegativeOrder)
	}
	if nA > MaxEstimateOrder || nB > MaxEstimateOrder {
		return Cost{}, fmt.Errorf("Estimate: nA=%d nB=%d > max=%d: %w", nA, nB, MaxEstimateOrder, ErrOrderTooLarge)
	}

	// 2) m is the shorter sequence, k the longer one.
	m, k := int64(nA), int64(nB)
	if m > k {
		m, k = k, m
	}
	c := Cost{
		EncodeA:    int64(nA) * int64(nA),
		EncodeB:    int64(nB) * int64(nB),
		Directions: 1,
		Rotations:  int(k),
	}
	if nA == nB {
		c.Directions = 2 // equal orders are tested both ways
	}

	// 3) Every offset compares m columns, each up to k row bits.
	c.CompareOps = int64(c.Directions) * k * m * k
	c.Total = c.EncodeA + c.EncodeB + c.CompareOps

	return c, nil
}

// String renders the cost on one line.
func (c Cost) String() string {
	return fmt.Sprintf("encode A=%d B=%d, %d direction(s) × %d rotations, compare=%d, total=%d",
		c.EncodeA, c.EncodeB, c.Directions, c.Rotations, c.CompareOps, c.Total)
}
