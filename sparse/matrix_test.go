package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMatrixInvalidDimensions ensures NewMatrix rejects non-positive shapes.
func TestNewMatrixInvalidDimensions(t *testing.T) {
	_, err := sparse.NewMatrix[float64](0, 3)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	_, err = sparse.NewMatrix[float64](3, 0)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestMatrixSetExtract covers element access, bounds and Nvals.
func TestMatrixSetExtract(t *testing.T) {
	m, err := sparse.NewMatrix[float64](3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	require.NoError(t, m.SetElement(0, 3, 1.5))
	require.NoError(t, m.SetElement(2, 0, 2.5))
	require.NoError(t, m.SetElement(0, 1, 0.5))
	assert.Equal(t, 3, m.Nvals())
	assert.Equal(t, 2, m.RowNvals(0))
	assert.Zero(t, m.RowNvals(7))

	x, err := m.ExtractElement(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.5, x)

	_, err = m.ExtractElement(1, 1)
	assert.ErrorIs(t, err, sparse.ErrNoValue)

	assert.ErrorIs(t, m.SetElement(3, 0, 1), sparse.ErrOutOfRange)
	assert.ErrorIs(t, m.SetElement(0, 4, 1), sparse.ErrOutOfRange)

	I, J, X := m.Tuples()
	assert.Equal(t, []int{0, 0, 2}, I)
	assert.Equal(t, []int{1, 3, 0}, J)
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, X)
}

// TestBuildDuplicatesFirstWins checks that First keeps the first-listed
// duplicate and Second the last, independent of input order elsewhere.
func TestBuildDuplicatesFirstWins(t *testing.T) {
	I := []int{1, 0, 1, 1}
	J := []int{2, 0, 2, 0}
	X := []float64{9, 4, 1, 7}

	first, err := sparse.Build(2, 3, I, J, X, sparse.First[float64])
	require.NoError(t, err)
	x, err := first.ExtractElement(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x)
	assert.Equal(t, 3, first.Nvals())

	second, err := sparse.Build(2, 3, I, J, X, sparse.Second[float64])
	require.NoError(t, err)
	x, err = second.ExtractElement(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)

	minimum, err := sparse.Build(2, 3, I, J, X, sparse.Min[float64])
	require.NoError(t, err)
	x, err = minimum.ExtractElement(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}

// TestBuildValidation covers every Build error class.
func TestBuildValidation(t *testing.T) {
	_, err := sparse.Build(0, 1, nil, nil, []int(nil), sparse.First[int])
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	_, err = sparse.Build(2, 2, []int{0}, []int{0, 1}, []int{1}, sparse.First[int])
	assert.ErrorIs(t, err, sparse.ErrTupleLength)

	_, err = sparse.Build(2, 2, []int{0}, []int{2}, []int{1}, sparse.First[int])
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.Build[int](2, 2, []int{0}, []int{1}, []int{1}, nil)
	assert.ErrorIs(t, err, sparse.ErrNilOperand)
}

// TestEachInRow verifies ordered row iteration and bounds.
func TestEachInRow(t *testing.T) {
	m, err := sparse.Build(2, 4, []int{1, 1, 1}, []int{3, 0, 2}, []int{30, 0, 20}, sparse.First[int])
	require.NoError(t, err)

	var cols []int
	require.NoError(t, m.EachInRow(1, func(j int, _ int) bool {
		cols = append(cols, j)
		return true
	}))
	assert.Equal(t, []int{0, 2, 3}, cols)
	assert.ErrorIs(t, m.EachInRow(2, func(int, int) bool { return true }), sparse.ErrOutOfRange)
}

// TestValidateSquare covers nil and non-square matrices.
func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, sparse.ValidateSquare[float64](nil), sparse.ErrNilOperand)

	rect, err := sparse.NewMatrix[float64](2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, sparse.ValidateSquare(rect), sparse.ErrNonSquare)

	sq, err := sparse.NewMatrix[float64](3, 3)
	require.NoError(t, err)
	assert.NoError(t, sparse.ValidateSquare(sq))
}
