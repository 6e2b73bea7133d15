// SPDX-License-Identifier: MIT

// Package gridgraph treats a rectangular grid of cells as a 4-connected
// graph and owns the per-cell state used by the grassfire search.
//
// What:
//
//   - Grid holds rows×cols cells in row-major order.
//   - Each cell is Empty, Blocked, Start, Goal, Labeled or OnPath.
//   - A separate distance label per cell records the breadth-first distance
//     to the goal; the Goal cell has distance 0 by definition.
//   - Neighbors are orthogonal only, in the fixed order up, down, left, right.
//   - Snapshot produces a read-only copy for renderers and observers.
//
// Why:
//
//   - The search and the path reconstruction mutate one shared structure,
//     so the label invariants live here and not in the algorithms.
//   - Presentation code never touches a *Grid; it receives Snapshots.
//
// Lifecycle:
//
//	g, _ := gridgraph.New(8, 8)            // all Empty
//	_ = g.SetBlocked(gridgraph.Coord{3, 3}) // obstacles
//	_ = g.SetStart(gridgraph.Coord{0, 0})
//	_ = g.SetGoal(gridgraph.Coord{7, 7})
//	// wavefront.Search labels, trace.Reconstruct marks OnPath
//	g.Reset()                               // labels gone, markers kept
//
// Complexity:
//
//   - New, Reset, Snapshot, Regions: O(rows×cols) time and memory.
//   - Neighbors, Label, State, Distance: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows < 1 or cols < 1.
//   - ErrNonRectangular: Parse received rows of differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrOccupiedByObstacle: start/goal requested on a Blocked cell.
//   - ErrReservedCell: obstacle requested on the start or goal cell.
//   - ErrAlreadyLabeled, ErrNotLabeled, ErrInvalidLabel: label invariants.
//   - ErrUnknownCell: Parse met an unsupported rune.
package gridgraph
