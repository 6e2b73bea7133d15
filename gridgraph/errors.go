// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates rows < 1 or cols < 1.
	ErrInvalidDimensions = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrOccupiedByObstacle indicates a start or goal placed on a Blocked cell.
	ErrOccupiedByObstacle = errors.New("gridgraph: cell is occupied by an obstacle")
	// ErrReservedCell indicates an obstacle placed on the start or goal cell.
	ErrReservedCell = errors.New("gridgraph: cell is reserved for start or goal")
	// ErrAlreadyLabeled indicates a second label for a cell within one search.
	ErrAlreadyLabeled = errors.New("gridgraph: cell already carries a distance label")
	// ErrNotLabeled indicates a path mark on a cell without a distance label.
	ErrNotLabeled = errors.New("gridgraph: cell carries no distance label")
	// ErrInvalidLabel indicates a distance < 1 or a label on a non-traversable cell.
	ErrInvalidLabel = errors.New("gridgraph: invalid distance label")
	// ErrDuplicateMarker indicates more than one 'S' or 'G' passed to Parse.
	ErrDuplicateMarker = errors.New("gridgraph: picture has more than one start or goal")
	// ErrUnknownCell indicates an unsupported rune passed to Parse.
	ErrUnknownCell = errors.New("gridgraph: unknown cell rune")
)
