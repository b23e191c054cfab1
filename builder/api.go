// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// api.go - the Build orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order.
//   - Determinism: same options/seed and constructor order ⇒ identical matrix.
//   - Safety: never panic; constructor errors are wrapped with "Build: %w".

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclosub/matrix"
)

// Constructor draws edges onto the shared canvas using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(c *canvas, cfg builderConfig) error

// Build resolves opts, applies all constructors in order and assembles the
// resulting adjacency matrix. WithOffset is applied last, to the whole matrix.
//
// Errors: constructor sentinels wrapped as "Build: %w"; ErrConstructFailed for
// a nil constructor or a failed assembly.
// Complexity: Σ constructor cost + O(n²) assembly.
func Build(opts []BuilderOption, cons ...Constructor) (*matrix.Binary, error) {
	cfg := newBuilderConfig(opts...)
	c := &canvas{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	m, err := matrix.FromEdges(c.n, c.edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}
	if cfg.offset != 0 {
		m = m.Rotate(cfg.offset)
	}

	return m, nil
}

// MustBuild is Build for fixtures; it panics on error.
func MustBuild(opts []BuilderOption, cons ...Constructor) *matrix.Binary {
	m, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return m
}
