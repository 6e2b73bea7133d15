// SPDX-License-Identifier: MIT

package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grassfire/gridgraph"
)

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("trace: grid is nil")

	// ErrCorruptLabeling indicates labels that do not describe a BFS
	// distance field for the given start, goal and distance.
	ErrCorruptLabeling = errors.New("trace: corrupt labeling")
)

// Options customizes Reconstruct.
type Options struct {
	// Endpoints includes start and goal in the returned path.
	Endpoints bool

	// Mark turns each intermediate cell into gridgraph.OnPath.
	Mark bool

	// OnStep is called for each intermediate cell, in walk order, after it
	// is marked. Returning an error stops the walk.
	OnStep func(at gridgraph.Coord) error
}

// Option configures Reconstruct.
type Option func(*Options)

// DefaultOptions excludes endpoints, marks the path and has a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Mark:   true,
		OnStep: func(gridgraph.Coord) error { return nil },
	}
}

// WithEndpoints includes start and goal in the returned path.
func WithEndpoints() Option {
	return func(o *Options) { o.Endpoints = true }
}

// WithoutMarking leaves cell states untouched.
func WithoutMarking() Option {
	return func(o *Options) { o.Mark = false }
}

// WithOnStep registers an observer for each intermediate cell.
// A nil fn is ignored.
func WithOnStep(fn func(at gridgraph.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Reconstruct walks from start down the distance labels to goal and returns
// the shortest path found, one cell per step.
//
// minDistance must be the start's label (0 when start == goal).
// Returns ErrGridNil, a wrapped gridgraph.ErrOutOfBounds, ErrCorruptLabeling,
// or a wrapped OnStep/MarkPath error. On error the partial path is returned.
func Reconstruct(g *gridgraph.Grid, start, goal gridgraph.Coord, minDistance int, opts ...Option) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, c := range []gridgraph.Coord{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("trace: endpoint %v on %dx%d grid: %w", c, g.Rows(), g.Cols(), gridgraph.ErrOutOfBounds)
		}
	}

	t := &tracer{grid: g, goal: goal}
	switch d, ok := t.label(start); {
	case minDistance < 0:
		return nil, fmt.Errorf("%w: negative distance %d", ErrCorruptLabeling, minDistance)
	case !ok:
		return nil, fmt.Errorf("%w: start %v is unlabeled", ErrCorruptLabeling, start)
	case d != minDistance:
		return nil, fmt.Errorf("%w: start %v has label %d, want %d", ErrCorruptLabeling, start, d, minDistance)
	}

	path := make([]gridgraph.Coord, 0, minDistance+1)
	if o.Endpoints {
		path = append(path, start)
	}
	cur := start
	for remaining := minDistance; remaining > 0; remaining-- {
		next, ok := t.descend(cur, remaining-1)
		if !ok {
			return path, fmt.Errorf("%w: no neighbor of %v labeled %d", ErrCorruptLabeling, cur, remaining-1)
		}
		cur = next
		if cur == goal {
			// Only the goal carries 0, so this is the last step.
			break
		}
		path = append(path, cur)
		if o.Mark {
			if err := g.MarkPath(cur); err != nil {
				return path, fmt.Errorf("trace: %w", err)
			}
		}
		if err := o.OnStep(cur); err != nil {
			return path, fmt.Errorf("trace: OnStep error at %v: %w", cur, err)
		}
	}
	if o.Endpoints && start != goal {
		path = append(path, goal)
	}

	return path, nil
}

// tracer reads labels relative to the search goal. wavefront only labels a
// grid whose Goal marker, if any, is that goal; any other Goal cell is
// treated as unlabeled.
type tracer struct {
	grid *gridgraph.Grid
	goal gridgraph.Coord
}

// label returns the distance of c from the search goal.
func (t *tracer) label(c gridgraph.Coord) (int, bool) {
	if c == t.goal {
		return 0, true
	}
	if t.grid.State(c) == gridgraph.Goal {
		return 0, false
	}
	return t.grid.Distance(c)
}

// descend returns the first neighbor of c, in neighbor order, labeled want.
func (t *tracer) descend(c gridgraph.Coord, want int) (gridgraph.Coord, bool) {
	for _, nbr := range t.grid.Neighbors(c) {
		if d, ok := t.label(nbr); ok && d == want {
			return nbr, true
		}
	}
	return gridgraph.Coord{}, false
}
