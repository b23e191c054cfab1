// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the matrix constructors.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cyclosub/builder"
	"github.com/katalvlaran/cyclosub/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven topology checks.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []builder.BuilderOption
		ctor   builder.Constructor
		wantN  int
		wantE  int
		sample [][2]int // edges that must be present
	}{
		{name: "Path(4)", ctor: builder.Path(4), wantN: 4, wantE: 3, sample: [][2]int{{0, 1}, {2, 3}}},
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantN: 5, wantE: 5, sample: [][2]int{{4, 0}}},
		{name: "Star(4)", ctor: builder.Star(4), wantN: 4, wantE: 3, sample: [][2]int{{0, 3}}},
		{name: "Complete(3)", ctor: builder.Complete(3), wantN: 3, wantE: 6, sample: [][2]int{{2, 1}}},
		{
			name: "Complete(3)+loops", opts: []builder.BuilderOption{builder.WithLoops()},
			ctor: builder.Complete(3), wantN: 3, wantE: 9, sample: [][2]int{{1, 1}},
		},
		{
			name: "Path(3) undirected", opts: []builder.BuilderOption{builder.WithUndirected()},
			ctor: builder.Path(3), wantN: 3, wantE: 4, sample: [][2]int{{1, 0}, {2, 1}},
		},
		{name: "Edges", ctor: builder.Edges([2]int{0, 5}, [2]int{5, 0}), wantN: 6, wantE: 2, sample: [][2]int{{5, 0}}},
		{name: "RandomSparse p=1", ctor: builder.RandomSparse(3, 1), wantN: 3, wantE: 6},
		{name: "RandomSparse p=0", ctor: builder.RandomSparse(3, 0), wantN: 3, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.Build(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, m.Order())
			assert.Equal(t, tc.wantE, m.EdgeCount())
			for _, e := range tc.sample {
				assert.True(t, m.HasEdge(e[0], e[1]), "missing %d→%d", e[0], e[1])
			}
		})
	}
}

// TestBuild_Compose: constructors share one index space and duplicates collapse.
func TestBuild_Compose(t *testing.T) {
	t.Parallel()

	m, err := builder.Build(nil, builder.Path(4), builder.Edges([2]int{0, 2}, [2]int{0, 1}))
	require.NoError(t, err)

	want := matrix.MustBinary([][]int{
		{0, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	assert.True(t, m.Equal(want), "got\n%s", m)
}

// TestBuild_Offset relabels the finished matrix.
func TestBuild_Offset(t *testing.T) {
	t.Parallel()

	plain := builder.MustBuild(nil, builder.Path(5))
	shifted, err := builder.Build([]builder.BuilderOption{builder.WithOffset(2)}, builder.Path(5))
	require.NoError(t, err)

	assert.True(t, shifted.Equal(plain.Rotate(2)))
	// 0→1,1→2,2→3,3→4 become 2→3,3→4,4→0,0→1.
	assert.True(t, shifted.HasEdge(4, 0))
	assert.True(t, shifted.HasEdge(0, 1))
	assert.False(t, shifted.HasEdge(1, 2), "would come from 4→0")
	assert.Equal(t, plain.EdgeCount(), shifted.EdgeCount())
}

// TestRandomSparse_Deterministic: the same seed yields the same matrix.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	a := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(12, 0.3))
	b := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomSparse(12, 0.3))
	assert.True(t, a.Equal(b))

	for i := 0; i < 12; i++ {
		assert.False(t, a.HasEdge(i, i), "no loops without WithLoops")
	}

	u := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1), builder.WithUndirected()}, builder.RandomSparse(10, 0.4))
	for _, e := range u.Edges() {
		assert.True(t, u.HasEdge(e.To, e.From), "mirror of %d→%d", e.From, e.To)
	}
}

// TestBuild_Errors checks sentinel propagation.
func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse n", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse p", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Edges negative", nil, builder.Edges([2]int{-1, 0}), builder.ErrConstructFailed},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.Build(tc.opts, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.MustBuild(nil, builder.Path(0)) })
}
