// SPDX-License-Identifier: MIT

package wavefront

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/grassfire/gridgraph"
)

// noDistance marks "start not discovered yet".
const noDistance = -1

// queueItem pairs a cell with its distance from the goal.
type queueItem struct {
	at    gridgraph.Coord
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	ctx     context.Context
	start   gridgraph.Coord
	queue   []queueItem
	visited mapset.Set[gridgraph.Coord]
	best    int
	res     *Result
}

// Search labels every cell reachable from goal with its breadth-first
// distance and reports whether start was reached.
//
// Returns ErrGridNil, a wrapped gridgraph.ErrOutOfBounds or
// gridgraph.ErrOccupiedByObstacle for bad endpoints, ErrGoalMismatch when the
// grid's Goal marker sits elsewhere, ErrDirtyGrid for a grid
// that was not Reset, ErrCancelled (joined with ctx.Err()) on cancellation,
// or a wrapped OnLabel error. Unreachable is not an error: the result carries
// Outcome == Unreachable and err == nil.
//
// start == goal is answered immediately as Found with Distance 0.
func Search(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate endpoints
	for _, c := range []gridgraph.Coord{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("wavefront: endpoint %v on %dx%d grid: %w", c, g.Rows(), g.Cols(), gridgraph.ErrOutOfBounds)
		}
		if g.State(c) == gridgraph.Blocked {
			return nil, fmt.Errorf("wavefront: endpoint %v: %w", c, gridgraph.ErrOccupiedByObstacle)
		}
	}
	// A foreign Goal marker cannot be labeled; refuse before touching the grid.
	if marker, ok := g.Goal(); ok && marker != goal {
		return nil, fmt.Errorf("wavefront: goal %v, marker at %v: %w", goal, marker, ErrGoalMismatch)
	}
	if g.Dirty() {
		return nil, ErrDirtyGrid
	}

	// Degenerate case: nothing to expand.
	if start == goal {
		return &Result{Outcome: Found, Order: []gridgraph.Coord{goal}}, nil
	}

	n := g.Size()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		queue:   make([]queueItem, 0, n),
		visited: mapset.New[gridgraph.Coord](),
		best:    noDistance,
		res: &Result{
			Outcome: Aborted,
			Order:   make([]gridgraph.Coord, 0, n),
		},
	}

	// Seed the frontier with the goal at distance 0.
	w.visited.Put(goal)
	w.res.Order = append(w.res.Order, goal)
	w.queue = append(w.queue, queueItem{at: goal})

	if err := w.loop(); err != nil {
		return w.res, err
	}
	if w.best == noDistance {
		w.res.Outcome = Unreachable
	} else {
		w.res.Outcome = Found
		w.res.Distance = w.best
	}

	return w.res, nil
}

// loop processes the frontier until empty, early stop, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			w.res.Outcome = Cancelled
			return fmt.Errorf("%w: %w", ErrCancelled, w.ctx.Err())
		default:
		}

		// Every cell of the level that discovered the start is expanded;
		// anything deeper cannot improve on it.
		if w.opts.StopAtStart && w.best != noDistance && w.queue[0].depth >= w.best {
			return nil
		}

		item := w.dequeue()
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the head of the frontier and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Expanded++
	w.opts.OnDequeue(item.at, item.depth)
	return item
}

// expand labels and enqueues every traversable, unvisited neighbor of item.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	for _, nbr := range w.grid.Neighbors(item.at) {
		if !w.grid.State(nbr).Traversable() || w.visited.Has(nbr) {
			continue
		}
		w.visited.Put(nbr)

		if nbr == w.start && (w.best == noDistance || next < w.best) {
			w.best = next
		}
		if err := w.grid.Label(nbr, next); err != nil {
			return fmt.Errorf("wavefront: %w", err)
		}
		w.queue = append(w.queue, queueItem{at: nbr, depth: next})
		w.res.Order = append(w.res.Order, nbr)
		w.res.Depth = next

		if err := w.opts.OnLabel(nbr, next); err != nil {
			return fmt.Errorf("wavefront: OnLabel error at %v: %w", nbr, err)
		}
	}
	return nil
}
