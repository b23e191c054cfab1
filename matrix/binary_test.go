// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Binary and its validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cyclosub/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// path4 is the directed path 0→1→2→3.
var path4 = [][]int{
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
	{0, 0, 0, 0},
}

// TestNewBinary_Validation covers shape and value rejection.
func TestNewBinary_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{"nil is empty", nil, nil},
		{"empty is empty", [][]int{}, nil},
		{"1x1 loop", [][]int{{1}}, nil},
		{"2x3 non-square", [][]int{{0, 1, 0}, {1, 0, 0}}, matrix.ErrNonSquare},
		{"ragged", [][]int{{0, 1}, {1}}, matrix.ErrNonSquare},
		{"value 2", [][]int{{0, 2}, {0, 0}}, matrix.ErrNonBinary},
		{"negative", [][]int{{0, -1}, {0, 0}}, matrix.ErrNonBinary},
		{"shape before value", [][]int{{2, 0}, {0}}, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b, err := matrix.NewBinary(tc.rows)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, len(tc.rows), b.Order())
				return
			}
			require.Error(t, err)
			assert.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			assert.ErrorIs(t, err, matrix.ErrInvalidInput, "every rejection is an invalid input")
		})
	}
}

// TestBinary_Accessors checks HasEdge, EdgeCount, Edges and Rows round-trip.
func TestBinary_Accessors(t *testing.T) {
	t.Parallel()

	b, err := matrix.NewBinary(path4)
	require.NoError(t, err)

	assert.True(t, b.HasEdge(0, 1))
	assert.False(t, b.HasEdge(1, 0))
	assert.False(t, b.HasEdge(-1, 0), "out of range reports false")
	assert.False(t, b.HasEdge(0, 4), "out of range reports false")
	assert.Equal(t, 3, b.EdgeCount())
	assert.Equal(t, []matrix.Edge{{0, 1}, {1, 2}, {2, 3}}, b.Edges())
	assert.Equal(t, path4, b.Rows())

	col := b.Column(2)
	assert.True(t, col.Test(1))
	col.Set(3)
	assert.False(t, b.HasEdge(3, 2), "Column returns a copy")

	var empty *matrix.Binary
	assert.Equal(t, 0, empty.Order())
	assert.False(t, empty.HasEdge(0, 0), "nil receiver reports false")
}

// TestFromEdges checks construction from edge lists and its errors.
func TestFromEdges(t *testing.T) {
	t.Parallel()

	b, err := matrix.FromEdges(4, []matrix.Edge{{0, 1}, {1, 2}, {2, 3}, {0, 1}})
	require.NoError(t, err)
	assert.True(t, b.Equal(matrix.MustBinary(path4)), "duplicates collapse")

	_, err = matrix.FromEdges(2, []matrix.Edge{{0, 2}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput)

	_, err = matrix.FromEdges(-1, nil)
	assert.ErrorIs(t, err, matrix.ErrNegativeOrder)

	z, err := matrix.Zero(3)
	require.NoError(t, err)
	assert.Equal(t, 0, z.EdgeCount())
}

// TestBinary_Rotate checks that rotation relabels rows and columns together
// and that n rotations return to the start.
func TestBinary_Rotate(t *testing.T) {
	t.Parallel()

	b := matrix.MustBinary(path4)

	r1 := b.Rotate(1)
	assert.Equal(t, []matrix.Edge{{1, 2}, {2, 3}, {3, 0}}, r1.Edges())
	assert.Equal(t, b.EdgeCount(), r1.EdgeCount(), "rotation preserves edge count")

	assert.True(t, b.Rotate(4).Equal(b))
	assert.True(t, b.Rotate(-1).Equal(b.Rotate(3)))
	assert.True(t, b.Rotate(1).Rotate(2).Equal(b.Rotate(3)))
	assert.Equal(t, 0, matrix.MustBinary(nil).Rotate(5).Order())
}

// TestBinary_WithEdge checks copy-on-write edge edits.
func TestBinary_WithEdge(t *testing.T) {
	t.Parallel()

	b := matrix.MustBinary(path4)

	plus, err := b.WithEdge(0, 2)
	require.NoError(t, err)
	assert.True(t, plus.HasEdge(0, 2))
	assert.False(t, b.HasEdge(0, 2), "receiver unchanged")

	minus, err := plus.WithoutEdge(0, 2)
	require.NoError(t, err)
	assert.True(t, minus.Equal(b))

	_, err = b.WithEdge(4, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestBinary_Equal covers nil handling and order mismatch.
func TestBinary_Equal(t *testing.T) {
	t.Parallel()

	var nilB *matrix.Binary
	assert.True(t, nilB.Equal(nil))
	assert.False(t, nilB.Equal(matrix.MustBinary(nil)))
	assert.False(t, matrix.MustBinary([][]int{{0}}).Equal(matrix.MustBinary(nil)))
	assert.Equal(t, 0, nilB.Order())
	assert.Equal(t, "<nil>", nilB.String())
}

// TestValidateSource covers nil interfaces, typed nils and negative orders.
func TestValidateSource(t *testing.T) {
	t.Parallel()

	var nilB *matrix.Binary
	assert.ErrorIs(t, matrix.ValidateSource(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSource(nilB), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSource(negative{}), matrix.ErrNegativeOrder)
	assert.NoError(t, matrix.ValidateSource(matrix.MustBinary(path4)))
}

// TestFromSource copies a foreign Source.
func TestFromSource(t *testing.T) {
	t.Parallel()

	b, err := matrix.FromSource(diagonal(3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, b.Rows())

	_, err = matrix.FromSource(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput)
}

type negative struct{}

func (negative) Order() int            { return -1 }
func (negative) HasEdge(_, _ int) bool { return false }

type diagonal int

func (d diagonal) Order() int            { return int(d) }
func (d diagonal) HasEdge(i, j int) bool { return i == j }
