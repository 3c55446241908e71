package builder_test

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/builder"
	"github.com/katalvlaran/sparseprim/mst"
)

// ExampleBuildGraph builds a 2×3 grid with unit weights and spans it.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	parents, total, _ := mst.Prim(g)
	fmt.Println("vertices:", g.Rows(), "stored:", g.Nvals())
	fmt.Println("tree edges:", parents.Nvals(), "total:", total)
	// Output:
	// vertices: 6 stored: 14
	// tree edges: 5 total: 5
}
