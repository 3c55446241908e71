// Package loader_test contains tests for edge-list and file loading.
package loader_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparseprim/loader"
	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entries flattens a matrix into a (row,col)→weight map.
func entries(m *sparse.Matrix[float64]) map[[2]int]float64 {
	I, J, X := m.Tuples()
	out := make(map[[2]int]float64, len(I))
	for k := range I {
		out[[2]int{I[k], J[k]}] = X[k]
	}

	return out
}

// TestBuildGraphMirrorsAndSizes checks size = max id + 1 and mirroring.
func TestBuildGraphMirrorsAndSizes(t *testing.T) {
	g, err := loader.BuildGraph([]loader.Edge{{U: 0, V: 1, W: 2}, {U: 1, V: 4, W: 3}})
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, map[[2]int]float64{
		{0, 1}: 2, {1, 0}: 2,
		{1, 4}: 3, {4, 1}: 3,
	}, entries(g))
}

// TestBuildGraphDirected stores only the listed orientation.
func TestBuildGraphDirected(t *testing.T) {
	g, err := loader.BuildGraph([]loader.Edge{{U: 2, V: 0, W: 1}}, loader.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, map[[2]int]float64{{2, 0}: 1}, entries(g))
}

// TestBuildGraphFirstListedWins resolves duplicates by position, not weight.
func TestBuildGraphFirstListedWins(t *testing.T) {
	g, err := loader.BuildGraph([]loader.Edge{
		{U: 0, V: 1, W: 9},
		{U: 0, V: 1, W: 1},
		{U: 1, V: 0, W: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, map[[2]int]float64{{0, 1}: 9, {1, 0}: 9}, entries(g))
}

// TestBuildGraphSelfLoops drops loops but keeps their vertex.
func TestBuildGraphSelfLoops(t *testing.T) {
	g, err := loader.BuildGraph([]loader.Edge{{U: 0, V: 1, W: 1}, {U: 3, V: 3, W: 5}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 2, g.Nvals())
}

// TestBuildGraphLimits covers WithVertexCount and WithVertexLimit.
func TestBuildGraphLimits(t *testing.T) {
	edges := []loader.Edge{{U: 0, V: 1, W: 1}, {U: 1, V: 7, W: 2}, {U: 2, V: 3, W: 3}}

	g, err := loader.BuildGraph(edges, loader.WithVertexLimit(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 4, g.Nvals(), "edge touching 7 dropped")

	g, err = loader.BuildGraph(edges[:1], loader.WithVertexCount(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Rows())

	_, err = loader.BuildGraph(edges, loader.WithVertexCount(5))
	assert.ErrorIs(t, err, loader.ErrInvalidVertex)

	g, err = loader.BuildGraph(nil, loader.WithVertexCount(3))
	require.NoError(t, err)
	assert.Zero(t, g.Nvals())
}

// TestBuildGraphErrors covers the sentinel errors.
func TestBuildGraphErrors(t *testing.T) {
	_, err := loader.BuildGraph(nil)
	assert.ErrorIs(t, err, loader.ErrEmptyGraph)

	_, err = loader.BuildGraph([]loader.Edge{{U: 5, V: 6, W: 1}}, loader.WithVertexLimit(2))
	assert.ErrorIs(t, err, loader.ErrEmptyGraph)

	_, err = loader.BuildGraph([]loader.Edge{{U: -1, V: 0, W: 1}})
	assert.ErrorIs(t, err, loader.ErrInvalidVertex)

	_, err = loader.BuildGraph([]loader.Edge{{U: 0, V: 1, W: math.NaN()}})
	assert.ErrorIs(t, err, loader.ErrInvalidWeight)

	_, err = loader.BuildGraph([]loader.Edge{{U: 0, V: 1, W: math.Inf(-1)}})
	assert.ErrorIs(t, err, loader.ErrInvalidWeight)
}

// TestOptionPanics ensures option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { loader.WithVertexCount(0) })
	assert.Panics(t, func() { loader.WithVertexLimit(-1) })
	assert.Panics(t, func() { loader.WithEdgeLimit(0) })
	assert.Panics(t, func() { loader.WithLogger(nil) })
}

// TestBuildGraphLogs reports statistics at Debug level.
func TestBuildGraphLogs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := loader.BuildGraph([]loader.Edge{{U: 0, V: 1, W: 1}, {U: 1, V: 1, W: 1}}, loader.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "loader: graph built", entry.Message)
	assert.Equal(t, 1, entry.Data["self_loops"])
	assert.Equal(t, 2, entry.Data["stored"])
}
