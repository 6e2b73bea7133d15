// SPDX-License-Identifier: MIT

package obstacle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grassfire/gridgraph"
)

// Sentinel errors for obstacle generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("obstacle: grid is nil")
	// ErrDensityRange indicates a density outside [0,100].
	ErrDensityRange = errors.New("obstacle: density must be within [0,100]")
	// ErrInsufficientFreeCells indicates more obstacles than candidate cells.
	ErrInsufficientFreeCells = errors.New("obstacle: not enough free cells for requested density")
)

const (
	methodGenerate = "Generate"
	maxDensity     = 100
)

// Target returns how many obstacles Generate places for the given grid size
// and density: floor(density×cells/100).
func Target(cells, density int) int {
	return cells * density / maxDensity
}

// Generate blocks Target(rows×cols, density) cells of g and returns them in
// placement order. Only Empty cells that are not the start, the goal or
// otherwise excluded are candidates.
// Returns ErrGridNil, ErrDensityRange, ErrInsufficientFreeCells, or a wrapped
// OnBlock error (cells placed before the error stay Blocked and are returned).
func Generate(g *gridgraph.Grid, density int, opts ...Option) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if density < 0 || density > maxDensity {
		return nil, fmt.Errorf("%s: density=%d: %w", methodGenerate, density, ErrDensityRange)
	}
	cfg := newConfig(opts...)

	// 1) Protect the markers by full coordinate.
	if start, ok := g.Start(); ok {
		cfg.exclude.Put(start)
	}
	if goal, ok := g.Goal(); ok {
		cfg.exclude.Put(goal)
	}

	// 2) Collect candidates in row-major order.
	candidates := make([]gridgraph.Coord, 0, g.Size())
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if g.State(c) != gridgraph.Empty || cfg.exclude.Has(c) || cfg.excludeCols.Has(c.Col) {
			continue
		}
		candidates = append(candidates, c)
	}

	// 3) Fail fast when the request cannot be met.
	target := Target(g.Size(), density)
	if target > len(candidates) {
		return nil, fmt.Errorf("%s: %d obstacles requested, %d free cells: %w",
			methodGenerate, target, len(candidates), ErrInsufficientFreeCells)
	}

	// 4) Partial Fisher–Yates: the first target slots become the sample.
	placed := make([]gridgraph.Coord, 0, target)
	for i := 0; i < target; i++ {
		j := i + cfg.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		c := candidates[i]
		if err := g.SetBlocked(c); err != nil {
			return placed, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		placed = append(placed, c)
		if err := cfg.onBlock(c); err != nil {
			return placed, fmt.Errorf("%s: OnBlock at %v: %w", methodGenerate, c, err)
		}
	}

	return placed, nil
}
