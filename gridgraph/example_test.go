// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"image"

	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: solving a small maze
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_WeightedNeighbors demonstrates handing a grid to the
// shortest-path engine.
// Scenario:
//
//   - '#' = wall, '.' = open
//   - entrance on the left edge at (0,1), exit on the right edge at (6,3)
//   - the engine returns the cells strictly between entrance and exit
//
// Complexity: O(W·H·log(W·H)), Memory: O(W·H)
func ExampleGridGraph_WeightedNeighbors() {
	gg, _ := gridgraph.Parse(
		"#######",
		"...#..#",
		"#.##.##",
		"#......",
		"#######",
	)
	start, _ := gg.Entrance()
	end, _ := gg.Exit()

	path, cost, err := search.ShortestPathCost[image.Point, int](gg, start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("from", start, "to", end, "cost", cost)
	fmt.Println(path)
	// Output:
	// from (0,1) to (6,3) cost 8
	// [(1,1) (1,2) (1,3) (2,3) (3,3) (4,3) (5,3)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents identifies the open regions of a grid
// split by a wall column.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.Parse(
		"..#..",
		"..#.#",
	)

	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", gg.Coordinate(idx))
		}
		fmt.Println()
	}
	// Output:
	// component 0: (0,0) (1,0) (0,1) (1,1)
	// component 1: (3,0) (4,0) (3,1)
}
