package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparseprim/loader"
)

// ExampleReadDIMACS loads a two-arc DIMACS stream; each arc is mirrored.
func ExampleReadDIMACS() {
	src := "c tiny\np sp 3 2\na 1 2 2\na 2 3 3\n"
	g, err := loader.ReadDIMACS(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w, _ := g.ExtractElement(2, 1)
	fmt.Println(g.Rows(), g.Nvals(), w)
	// Output: 3 4 3
}
