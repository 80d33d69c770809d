// File: generate/example_test.go
package generate_test

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/generate"
	"github.com/katalvlaran/mazegrid/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate carves a 4×4 maze with the DFS backtracker and shows the
// spanning-tree invariant: whatever the seed, exactly W×H-1 walls fall.
func ExampleGenerate() {
	m, _ := maze.New(4, 4)
	_ = generate.Generate(m,
		generate.WithAlgorithm(generate.AlgorithmDFS),
		generate.WithSeed(7),
	)

	var open int
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			open += m.OpenPassages(x, y)
		}
	}
	fmt.Println("removed walls:", open/2)

	// Output:
	// removed walls: 15
}
