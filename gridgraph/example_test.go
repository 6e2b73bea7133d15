// SPDX-License-Identifier: MIT
// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/grassfire/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates building a grid from an ASCII picture and
// listing its open regions.
// Scenario:
//
//   - '#' cells wall off the right column.
//   - Start and goal lie in different regions, so no search can connect them.
func ExampleParse() {
	g, _ := gridgraph.Parse(
		"S.#.",
		"..#G",
	)
	fmt.Print(g)
	fmt.Println("regions:", len(g.Regions()))
	start, _ := g.Start()
	goal, _ := g.Goal()
	fmt.Println("connected:", g.Connected(start, goal))

	// Output:
	// S.#.
	// ..#G
	// regions: 2
	// connected: false
}

// ExampleGrid_Neighbors shows the fixed up, down, left, right order.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.New(3, 3)
	fmt.Println(g.Neighbors(gridgraph.Coord{Row: 1, Col: 1}))

	// Output:
	// [(0,1) (2,1) (1,0) (1,2)]
}
