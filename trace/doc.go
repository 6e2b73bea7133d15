// SPDX-License-Identifier: MIT

// Package trace recovers a shortest path from a grid labeled by wavefront.
//
// Starting at the start cell, the walker repeatedly steps to an orthogonal
// neighbor whose label is exactly one less than its own, until it arrives at
// the goal (distance 0). Ties are broken by the grid's fixed neighbor order
// (up, down, left, right), so the same labeling always yields the same path.
//
// By default the returned path holds only the intermediate cells, so a start
// at distance d yields d-1 cells. WithEndpoints includes start and goal
// (d+1 cells). Intermediate cells are marked OnPath unless WithoutMarking is
// given.
//
// A labeling that offers no descending neighbor, or a start label that
// disagrees with minDistance, is reported as ErrCorruptLabeling. The walk
// takes at most minDistance steps and never loops.
//
// Complexity: O(d) time, O(d) memory for the returned path.
package trace
