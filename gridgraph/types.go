// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
)

// Coord addresses a single cell. Row and Col are 0-indexed.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
// On an obstacle-free grid this equals the search distance.
func (c Coord) Manhattan(o Coord) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether c and o share an edge (no diagonals).
func (c Coord) Adjacent(o Coord) bool {
	return c.Manhattan(o) == 1
}

// CellState is the render-visible state of one cell.
type CellState uint8

const (
	// Empty is traversable and has not been reached by a search.
	Empty CellState = iota
	// Blocked is a permanent obstacle; never enqueued, never labeled.
	Blocked
	// Start marks the search origin. Traversable.
	Start
	// Goal marks the destination; the wavefront expands from here with distance 0.
	Goal
	// Labeled is traversable and carries a distance ≥ 1 to the goal.
	Labeled
	// OnPath marks a labeled cell that belongs to the reconstructed path.
	OnPath
)

var stateNames = [...]string{
	Empty:   "empty",
	Blocked: "blocked",
	Start:   "start",
	Goal:    "goal",
	Labeled: "labeled",
	OnPath:  "path",
}

// String returns the lower-case name of the state.
func (s CellState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Traversable reports whether a search may move through a cell in state s.
func (s CellState) Traversable() bool {
	return s != Blocked
}

// MarshalText encodes the state by name, so JSON frames stay readable.
func (s CellState) MarshalText() ([]byte, error) {
	if int(s) >= len(stateNames) {
		return nil, fmt.Errorf("gridgraph: cannot marshal %d as CellState", uint8(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *CellState) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = CellState(i)
			return nil
		}
	}
	return fmt.Errorf("gridgraph: unknown cell state %q", text)
}

// unlabeled marks a cell without a distance label in Grid.dist.
const unlabeled = -1

// neighborOffsets is the fixed expansion order: up, down, left, right.
// Both the wavefront and the path tie-break depend on it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rows×cols field of cells with distance labels.
// A Grid is not safe for concurrent mutation; one search owns it at a time.
type Grid struct {
	rows, cols int
	states     []CellState
	dist       []int
	labeled    int // cells carrying a label or path mark

	start, goal       Coord
	hasStart, hasGoal bool
}
