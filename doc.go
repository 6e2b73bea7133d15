// SPDX-License-Identifier: MIT

// Package grassfire finds shortest paths on rectangular grids by wavefront
// ("grassfire") expansion.
//
// What is grassfire?
//
//	A breadth-first search seeded at the goal labels every reachable cell with
//	its distance to the goal. The start's label is the length of a shortest
//	path, and walking from the start to any neighbor labeled one less, over
//	and over, traces that path back to the goal.
//
// Packages
//
//	gridgraph/  Grid, Coord, CellState, snapshots, ASCII pictures, regions
//	obstacle/   seeded obstacle scattering with exclusions
//	wavefront/  distance labeling with hooks, early stop and cancellation
//	trace/      shortest-path reconstruction from the labels
//	cmd/grassfire terminal/text/websocket demo driven by flags or HCL
//
// Quick start
//
//	g, _ := gridgraph.Parse(
//		"S.#.",
//		"..#.",
//		"...G",
//	)
//	start, _ := g.Start()
//	goal, _ := g.Goal()
//	res, _ := wavefront.Search(g, start, goal)      // res.Distance == 5
//	path, _ := trace.Reconstruct(g, start, goal, res.Distance)
//
// Movement is orthogonal (4-connected) and every step costs 1.
package grassfire
