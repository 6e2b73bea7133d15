// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
)

// New constructs a rows×cols Grid with every cell Empty and unlabeled.
// Returns ErrInvalidDimensions if rows < 1 or cols < 1.
// Algorithmic complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrInvalidDimensions)
	}
	n := rows * cols
	g := &Grid{
		rows:   rows,
		cols:   cols,
		states: make([]CellState, n),
		dist:   make([]int, n),
	}
	for i := range g.dist {
		g.dist[i] = unlabeled
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Blocked cells are included; callers filter by state.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// index maps c to a row-major index: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// checkBounds wraps ErrOutOfBounds with the offending coordinate.
func (g *Grid) checkBounds(method string, c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%s%v on %dx%d grid: %w", method, c, g.rows, g.cols, ErrOutOfBounds)
	}
	return nil
}

// State returns the state of c. Out-of-bounds coordinates report Blocked,
// which keeps callers that probe borders from stepping outside.
func (g *Grid) State(c Coord) CellState {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.states[g.index(c)]
}

// Distance returns the distance label of c and whether one is present.
// The goal always reports (0, true).
func (g *Grid) Distance(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	if g.hasGoal && c == g.goal {
		return 0, true
	}
	d := g.dist[g.index(c)]
	if d == unlabeled {
		return 0, false
	}
	return d, true
}

// Start returns the start coordinate and whether one has been set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Goal returns the goal coordinate and whether one has been set.
func (g *Grid) Goal() (Coord, bool) { return g.goal, g.hasGoal }

// dropLabel clears any distance label held by cell i.
func (g *Grid) dropLabel(i int) {
	if g.dist[i] != unlabeled {
		g.dist[i] = unlabeled
		g.labeled--
	}
}

// SetStart moves the start marker to c.
// Returns ErrOutOfBounds or ErrOccupiedByObstacle.
// Placing start on the goal cell is allowed; the cell keeps the Goal state.
func (g *Grid) SetStart(c Coord) error {
	if err := g.checkBounds("SetStart", c); err != nil {
		return err
	}
	i := g.index(c)
	if g.states[i] == Blocked {
		return fmt.Errorf("SetStart%v: %w", c, ErrOccupiedByObstacle)
	}
	if g.hasStart && g.start != c {
		old := g.index(g.start)
		if g.states[old] == Start {
			g.states[old] = Empty
			g.dropLabel(old)
		}
	}
	g.dropLabel(i)
	if g.states[i] != Goal {
		g.states[i] = Start
	}
	g.start, g.hasStart = c, true

	return nil
}

// SetGoal moves the goal marker to c.
// Returns ErrOutOfBounds or ErrOccupiedByObstacle.
func (g *Grid) SetGoal(c Coord) error {
	if err := g.checkBounds("SetGoal", c); err != nil {
		return err
	}
	i := g.index(c)
	if g.states[i] == Blocked {
		return fmt.Errorf("SetGoal%v: %w", c, ErrOccupiedByObstacle)
	}
	if g.hasGoal && g.goal != c {
		old := g.index(g.goal)
		if g.hasStart && g.start == g.goal {
			g.states[old] = Start
		} else {
			g.states[old] = Empty
		}
	}
	g.dropLabel(i)
	g.states[i] = Goal
	g.goal, g.hasGoal = c, true

	return nil
}

// SetBlocked turns c into a permanent obstacle.
// Returns ErrOutOfBounds, or ErrReservedCell for the start or goal cell.
func (g *Grid) SetBlocked(c Coord) error {
	if err := g.checkBounds("SetBlocked", c); err != nil {
		return err
	}
	if (g.hasStart && c == g.start) || (g.hasGoal && c == g.goal) {
		return fmt.Errorf("SetBlocked%v: %w", c, ErrReservedCell)
	}
	i := g.index(c)
	g.dropLabel(i)
	g.states[i] = Blocked

	return nil
}

// Label assigns distance d ≥ 1 to a traversable, unlabeled cell.
// Empty cells become Labeled; the Start cell keeps its marker and records d.
// A label is set at most once between Resets (ErrAlreadyLabeled).
func (g *Grid) Label(c Coord, d int) error {
	if err := g.checkBounds("Label", c); err != nil {
		return err
	}
	i := g.index(c)
	switch {
	case d < 1:
		return fmt.Errorf("Label%v=%d: %w", c, d, ErrInvalidLabel)
	case g.states[i] == Blocked || g.states[i] == Goal:
		return fmt.Errorf("Label%v on %s cell: %w", c, g.states[i], ErrInvalidLabel)
	case g.dist[i] != unlabeled:
		return fmt.Errorf("Label%v=%d (has %d): %w", c, d, g.dist[i], ErrAlreadyLabeled)
	}
	g.dist[i] = d
	g.labeled++
	if g.states[i] == Empty {
		g.states[i] = Labeled
	}

	return nil
}

// MarkPath turns a Labeled cell into OnPath, keeping its distance.
// Start and Goal keep their markers; marking them is a no-op.
func (g *Grid) MarkPath(c Coord) error {
	if err := g.checkBounds("MarkPath", c); err != nil {
		return err
	}
	i := g.index(c)
	switch g.states[i] {
	case Labeled:
		g.states[i] = OnPath
		return nil
	case OnPath, Start, Goal:
		return nil
	default:
		return fmt.Errorf("MarkPath%v (%s): %w", c, g.states[i], ErrNotLabeled)
	}
}

// Dirty reports whether any cell still carries a label or path mark.
func (g *Grid) Dirty() bool {
	return g.labeled > 0
}

// Reset clears every distance label and path mark. Blocked, Start and Goal
// cells are kept, so the grid is ready for a fresh search.
// Complexity: O(rows×cols).
func (g *Grid) Reset() {
	for i, s := range g.states {
		if s == Labeled || s == OnPath {
			g.states[i] = Empty
		}
		g.dist[i] = unlabeled
	}
	g.labeled = 0
}

// Count returns how many cells are in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, st := range g.states {
		if st == s {
			n++
		}
	}
	return n
}
