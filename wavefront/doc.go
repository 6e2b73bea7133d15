// SPDX-License-Identifier: MIT

// Package wavefront implements grassfire expansion: a breadth-first search
// seeded at the goal that labels every reachable cell of a gridgraph.Grid
// with its distance to the goal.
//
// What
//
//   - The frontier is a FIFO queue seeded with the goal at distance 0.
//   - Each popped cell labels its traversable, unvisited orthogonal
//     neighbors with distance+1 and enqueues them; the visited set is keyed
//     by coordinate.
//   - Blocked cells are never enqueued and never labeled.
//   - The start cell keeps its marker but records its label; its distance is
//     the answer (Outcome Found) or the frontier empties (Outcome Unreachable).
//
// Why BFS order matters
//
//	Cells leave the queue in non-decreasing distance, so the first label a
//	cell receives is its shortest distance and never changes. WithStopAtStart
//	relies on this: after the start is discovered at distance d, the rest of
//	level d-1 is still expanded so every cell at distance d is labeled, then
//	the search stops. Without it the queue drains naturally, as the classic
//	grassfire does, at the same asymptotic cost.
//
// Hooks and cancellation
//
//   - WithOnLabel(fn):   called after each label; an error aborts the search.
//   - WithOnDequeue(fn): called for each popped frontier cell.
//   - WithContext(ctx):  checked at every pop; a done context yields Outcome
//     Cancelled and an error wrapping ErrCancelled and ctx.Err(). Labels
//     assigned so far stay on the grid and are consistent with BFS order.
//
// Determinism
//
//	Neighbors are expanded in the grid's fixed order (up, down, left, right),
//	so the label order and the labels themselves are reproducible.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)  (each cell enqueued at most once, four neighbor probes)
//   - Memory: O(N)  (queue, visited set, Result.Order)
//
// Errors
//
//   - ErrGridNil                       nil grid.
//   - gridgraph.ErrOutOfBounds         start or goal outside the grid.
//   - gridgraph.ErrOccupiedByObstacle  start or goal is Blocked.
//   - ErrGoalMismatch                  grid's Goal marker is not goal.
//   - ErrDirtyGrid                     labels left from a previous run.
//   - ErrCancelled                     context done mid-search.
//   - Wrapped OnLabel errors.
package wavefront
