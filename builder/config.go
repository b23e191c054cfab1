// SPDX-License-Identifier: MIT
// Package: cyclosub/builder
//
// config.go - internal configuration and the edge canvas constructors draw on.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cyclosub/matrix"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng        *rand.Rand // nil means no randomness
	loops      bool       // admit i→i where a constructor could emit it
	undirected bool       // mirror every edge
	offset     int        // final relabeling shift
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// canvas collects edges over a growing node index space.
type canvas struct {
	n     int
	edges []matrix.Edge
}

// grow raises the order to at least n.
func (c *canvas) grow(n int) {
	if n > c.n {
		c.n = n
	}
}

// add records i→j, and j→i as well for undirected builds.
func (c *canvas) add(cfg builderConfig, i, j int) {
	c.edges = append(c.edges, matrix.Edge{From: i, To: j})
	if cfg.undirected && i != j {
		c.edges = append(c.edges, matrix.Edge{From: j, To: i})
	}
}
