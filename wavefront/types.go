// SPDX-License-Identifier: MIT

// Package wavefront provides tunable options, results and error definitions
// for grassfire expansion over a gridgraph.Grid.
package wavefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/grassfire/gridgraph"
)

// Sentinel errors for Search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("wavefront: grid is nil")

	// ErrDirtyGrid is returned when the grid still carries labels from an
	// earlier run; call Grid.Reset first.
	ErrDirtyGrid = errors.New("wavefront: grid carries labels from a previous search")

	// ErrGoalMismatch is returned when the grid carries a Goal marker on a
	// cell other than the requested goal.
	ErrGoalMismatch = errors.New("wavefront: goal differs from the grid's goal marker")

	// ErrCancelled is returned, joined with ctx.Err(), when the context is
	// done before the frontier empties.
	ErrCancelled = errors.New("wavefront: search cancelled")
)

// Outcome is the verdict of a search for the start cell.
type Outcome int

const (
	// Aborted means a hook or an internal label failure stopped the search.
	Aborted Outcome = iota
	// Found means the start cell was labeled; Result.Distance holds its label.
	Found
	// Unreachable means the frontier emptied without reaching the start.
	Unreachable
	// Cancelled means the context was done at a frontier pop.
	Cancelled
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case Cancelled:
		return "cancelled"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result holds the outcome of a wavefront search:
//   - Outcome:  Found, Unreachable, Cancelled or Aborted.
//   - Distance: the start's distance to the goal (valid when Found).
//   - Order:    cells in label order, goal first; non-decreasing distance.
//   - Depth:    the largest distance assigned.
//   - Expanded: how many frontier cells were popped and expanded.
type Result struct {
	Outcome  Outcome
	Distance int
	Order    []gridgraph.Coord
	Depth    int
	Expanded int
}

// Reached reports whether the start cell was found.
func (r *Result) Reached() bool {
	return r != nil && r.Outcome == Found
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search.
type Options struct {
	// Ctx allows cancellation; checked at every frontier pop.
	Ctx context.Context

	// OnLabel is called after a cell receives its distance label.
	// Returning an error aborts the search and propagates the error.
	OnLabel func(at gridgraph.Coord, dist int) error

	// OnDequeue is called when a frontier cell is popped, before expansion.
	OnDequeue func(at gridgraph.Coord, dist int)

	// StopAtStart ends the search once the start is labeled and the rest of
	// the frontier level that discovered it has been expanded.
	// By default the goal's whole component is labeled.
	StopAtStart bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks
//   - full expansion (StopAtStart == false)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnLabel:   func(gridgraph.Coord, int) error { return nil },
		OnDequeue: func(gridgraph.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLabel registers a callback to run after each label assignment.
func WithOnLabel(fn func(at gridgraph.Coord, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// WithOnDequeue registers a callback to run on each frontier pop.
func WithOnDequeue(fn func(at gridgraph.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithStopAtStart enables early termination once the start's distance is
// confirmed minimal.
func WithStopAtStart() Option {
	return func(o *Options) {
		o.StopAtStart = true
	}
}
