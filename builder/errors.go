// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached at the call site: "<Method>: <detail>: %w".
//   • Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the build could not be completed (nil
// constructor, negative edge endpoint, matrix assembly failure).
var ErrConstructFailed = errors.New("builder: construction failed")
