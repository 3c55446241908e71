// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism, and default weights.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparseprim/builder"
	"github.com/katalvlaran/sparseprim/loader"
	"github.com/katalvlaran/sparseprim/mst"
)

// edgeKey identifies an undirected edge by its endpoints (smaller id first).
type edgeKey struct{ U, V int }

// edgeWeights returns a map from edgeKey to weight for all edges in set.
func edgeWeights(set builder.EdgeSet) map[edgeKey]float64 {
	m := make(map[edgeKey]float64, len(set.Edges))
	for _, e := range set.Edges {
		u, v := e.U, e.V
		if u > v {
			u, v = v, u
		}
		m[edgeKey{u, v}] = e.W
	}
	return m
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	const defaultWeight = builder.DefaultEdgeWeight

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, edges map[edgeKey]float64)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {
				for i := 0; i < 4; i++ {
					if w, ok := edges[edgeKey{i, i + 1}]; !ok || w != defaultWeight {
						t.Errorf("Cycle: missing or wrong weight for edge %d-%d: got %g, ok=%v", i, i+1, w, ok)
					}
				}
				if _, ok := edges[edgeKey{0, 4}]; !ok {
					t.Error("Cycle: missing closing edge 0-4")
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {
				for i := 0; i < 3; i++ {
					if w, ok := edges[edgeKey{i, i + 1}]; !ok || w != defaultWeight {
						t.Errorf("Path: missing or wrong weight for edge %d-%d", i, i+1)
					}
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {
				for leaf := 1; leaf < 4; leaf++ {
					if _, ok := edges[edgeKey{builder.CenterVertex, leaf}]; !ok {
						t.Errorf("Star: missing spoke 0-%d", leaf)
					}
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {
				for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}} {
					if _, ok := edges[edgeKey{p[0], p[1]}]; !ok {
						t.Errorf("Complete: missing edge %d-%d", p[0], p[1])
					}
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // (2*(3-1)) + ((2-1)*3) = 4+3 = 7
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {
				if _, ok := edges[edgeKey{0, 1}]; !ok {
					t.Error("Grid: missing horizontal edge (0,0)-(0,1)")
				}
				if _, ok := edges[edgeKey{0, 3}]; !ok {
					t.Error("Grid: missing vertical edge (0,0)-(1,0)")
				}
				if _, ok := edges[edgeKey{2, 3}]; ok {
					t.Error("Grid: row wrap-around edge 2-3 must not exist")
				}
			},
		},
		{
			name:  "RandomSparse_p0(5)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {},
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, edges map[edgeKey]float64) {},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			set, err := builder.BuildEdges(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildEdges(%s) returned error: %v", tc.name, err)
			}
			if set.N != tc.wantV {
				t.Errorf("vertices: got %d, want %d", set.N, tc.wantV)
			}
			if got := len(set.Edges); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}
			for _, e := range set.Edges {
				if e.U >= e.V {
					t.Errorf("edge %d-%d not emitted with smaller id first", e.U, e.V)
				}
			}
			tc.sampleCheck(t, edgeWeights(set))
		})
	}
}

// TestBuilders_Errors checks sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Grid(3x0)", builder.Grid(3, 0), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse(noRNG)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildEdges(tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("BuildEdges(%s): got %v, want %v", tc.name, err, tc.want)
			}
		})
	}
}

// TestRandomSparse_Determinism verifies that equal seeds give equal edge lists.
func TestRandomSparse_Determinism(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerWeight(1, 9)}
	a, err := builder.BuildEdges(opts, builder.RandomSparse(40, 0.2))
	if err != nil {
		t.Fatalf("first BuildEdges: %v", err)
	}
	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerWeight(1, 9)}
	b, err := builder.BuildEdges(opts, builder.RandomSparse(40, 0.2))
	if err != nil {
		t.Fatalf("second BuildEdges: %v", err)
	}
	if len(a.Edges) != len(b.Edges) {
		t.Fatalf("edge counts differ: %d vs %d", len(a.Edges), len(b.Edges))
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs: %+v vs %+v", i, a.Edges[i], b.Edges[i])
		}
	}
}

// TestBuildEdges_Overlay composes two constructors on the same id space.
func TestBuildEdges_Overlay(t *testing.T) {
	t.Parallel()

	set, err := builder.BuildEdges(nil, builder.Path(3), builder.Star(5))
	if err != nil {
		t.Fatalf("BuildEdges: %v", err)
	}
	if set.N != 5 {
		t.Errorf("N: got %d, want 5", set.N)
	}
	if len(set.Edges) != 6 {
		t.Errorf("edges: got %d, want 6", len(set.Edges))
	}
}

// TestBuildGraph_SpanningTree feeds generated graphs to the forest engine.
func TestBuildGraph_SpanningTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantTotal float64
		wantRoots int
	}{
		{"Path(6)", builder.Path(6), 5, 1},
		{"Cycle(6)", builder.Cycle(6), 5, 1},
		{"Grid(3x4)", builder.Grid(3, 4), 11, 1},
		{"Complete(5)", builder.Complete(5), 4, 1},
		{"RandomSparse_p0(4)", builder.RandomSparse(4, 0), 0, 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			parents, total, err := mst.Prim(g)
			if err != nil {
				t.Fatalf("Prim: %v", err)
			}
			if total != tc.wantTotal {
				t.Errorf("total: got %g, want %g", total, tc.wantTotal)
			}
			if got := len(mst.Roots(parents)); got != tc.wantRoots {
				t.Errorf("roots: got %d, want %d", got, tc.wantRoots)
			}
			if err := mst.ValidateForest(g, parents, total); err != nil {
				t.Errorf("ValidateForest: %v", err)
			}
		})
	}
}

// TestBuildGraph_LoaderOptions checks that loader limits pass through.
func TestBuildGraph_LoaderOptions(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []loader.Option{loader.WithVertexLimit(3)}, builder.Path(5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.Rows() != 3 {
		t.Errorf("rows: got %d, want 3", g.Rows())
	}
	if g.Nvals() != 4 {
		t.Errorf("stored entries: got %d, want 4", g.Nvals())
	}
}
