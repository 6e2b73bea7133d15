// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of a Grid handed to renderers and observers.
// Distances holds -1 for unlabeled cells and 0 for the goal.
type Snapshot struct {
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	States    []CellState `json:"states"`
	Distances []int       `json:"distances"`
	Start     *Coord      `json:"start,omitempty"`
	Goal      *Coord      `json:"goal,omitempty"`
}

// Snapshot copies the current cell states and labels.
// Complexity: O(rows×cols).
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{
		Rows:      g.rows,
		Cols:      g.cols,
		States:    make([]CellState, len(g.states)),
		Distances: make([]int, len(g.dist)),
	}
	copy(s.States, g.states)
	copy(s.Distances, g.dist)
	if g.hasStart {
		start := g.start
		s.Start = &start
	}
	if g.hasGoal {
		goal := g.goal
		s.Goal = &goal
		s.Distances[g.index(goal)] = 0
	}

	return s
}

// At returns the state and label of (row, col) in the snapshot.
func (s Snapshot) At(row, col int) (CellState, int) {
	i := row*s.Cols + col
	return s.States[i], s.Distances[i]
}

// Cell runes used by String and Parse.
const (
	runeEmpty   = '.'
	runeBlocked = '#'
	runeStart   = 'S'
	runeGoal    = 'G'
	runePath    = '*'
	runeFar     = '+'
)

// labelRune encodes a distance in one rune: 1-9, then a-z for 10..35.
func labelRune(d int) rune {
	switch {
	case d < 10:
		return rune('0' + d)
	case d < 36:
		return rune('a' + d - 10)
	default:
		return runeFar
	}
}

// String draws the snapshot one row per line:
// '.' empty, '#' blocked, 'S' start, 'G' goal, '*' path,
// and labeled cells as their distance (1-9, a-z, '+' beyond 35).
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow(s.Rows * (s.Cols + 1))
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			state, d := s.At(r, c)
			switch state {
			case Blocked:
				b.WriteRune(runeBlocked)
			case Start:
				b.WriteRune(runeStart)
			case Goal:
				b.WriteRune(runeGoal)
			case OnPath:
				b.WriteRune(runePath)
			case Labeled:
				b.WriteRune(labelRune(d))
			default:
				b.WriteRune(runeEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String draws the grid; see Snapshot.String for the legend.
func (g *Grid) String() string {
	return g.Snapshot().String()
}

// Parse builds a Grid from an ASCII picture, one string per row:
// '.' empty, '#' blocked, 'S' start, 'G' goal.
// At most one 'S' and one 'G' are allowed.
// Returns ErrInvalidDimensions, ErrNonRectangular, ErrDuplicateMarker or
// ErrUnknownCell.
func Parse(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrInvalidDimensions)
	}
	cols := len([]rune(lines[0]))
	for r, line := range lines {
		if n := len([]rune(line)); n != cols {
			return nil, fmt.Errorf("Parse: row %d has %d cells, want %d: %w", r, n, cols, ErrNonRectangular)
		}
	}
	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	var start, goal *Coord
	for r, line := range lines {
		for c, ch := range []rune(line) {
			at := Coord{Row: r, Col: c}
			switch ch {
			case runeEmpty:
			case runeBlocked:
				g.states[g.index(at)] = Blocked
			case runeStart:
				if start != nil {
					return nil, fmt.Errorf("Parse: second start at %v (first %v): %w", at, *start, ErrDuplicateMarker)
				}
				start = &at
			case runeGoal:
				if goal != nil {
					return nil, fmt.Errorf("Parse: second goal at %v (first %v): %w", at, *goal, ErrDuplicateMarker)
				}
				goal = &at
			default:
				return nil, fmt.Errorf("Parse: %q at %v: %w", ch, at, ErrUnknownCell)
			}
		}
	}
	if goal != nil {
		if err = g.SetGoal(*goal); err != nil {
			return nil, err
		}
	}
	if start != nil {
		if err = g.SetStart(*start); err != nil {
			return nil, err
		}
	}

	return g, nil
}
