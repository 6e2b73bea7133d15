// SPDX-License-Identifier: MIT

package wavefront_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassfire/gridgraph"
	"github.com/katalvlaran/grassfire/wavefront"
)

// parse builds a grid from an ASCII picture and returns its markers.
func parse(t *testing.T, lines ...string) (*gridgraph.Grid, gridgraph.Coord, gridgraph.Coord) {
	t.Helper()
	g, err := gridgraph.Parse(lines...)
	require.NoError(t, err)
	start, ok := g.Start()
	require.True(t, ok, "picture needs an S")
	goal, ok := g.Goal()
	require.True(t, ok, "picture needs a G")
	return g, start, goal
}

// TestSearch_Errors verifies that invalid inputs are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := wavefront.Search(nil, gridgraph.Coord{}, gridgraph.Coord{})
	assert.ErrorIs(t, err, wavefront.ErrGridNil)

	g, start, goal := parse(t,
		"S.#",
		"..G",
	)
	_, err = wavefront.Search(g, gridgraph.Coord{Row: 5, Col: 0}, goal)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = wavefront.Search(g, start, gridgraph.Coord{Row: 0, Col: -1})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = wavefront.Search(g, start, gridgraph.Coord{Row: 0, Col: 2})
	assert.ErrorIs(t, err, gridgraph.ErrOccupiedByObstacle)

	_, err = wavefront.Search(g, start, goal)
	require.NoError(t, err)
	_, err = wavefront.Search(g, start, goal)
	assert.ErrorIs(t, err, wavefront.ErrDirtyGrid, "second run without Reset")
}

// TestSearch_OpenGrid8x8 is the reference scenario: no obstacles,
// (0,0) → (7,7) must be 14 steps.
func TestSearch_OpenGrid8x8(t *testing.T) {
	g, err := gridgraph.New(8, 8)
	require.NoError(t, err)
	start, goal := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 7, Col: 7}
	require.NoError(t, g.SetStart(start))
	require.NoError(t, g.SetGoal(goal))

	res, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Found, res.Outcome)
	assert.True(t, res.Reached())
	assert.Equal(t, 14, res.Distance)
	assert.Len(t, res.Order, 64, "whole grid labeled")
	assert.Equal(t, 64, res.Expanded)
	assert.Equal(t, 14, res.Depth)
}

// TestSearch_Manhattan: without obstacles every pair's distance equals the
// Manhattan distance.
func TestSearch_Manhattan(t *testing.T) {
	const rows, cols = 4, 5
	g, err := gridgraph.New(rows, cols)
	require.NoError(t, err)

	for gi := 0; gi < rows*cols; gi++ {
		for si := 0; si < rows*cols; si++ {
			goal, start := g.Coordinate(gi), g.Coordinate(si)
			g.Reset()
			res, err := wavefront.Search(g, start, goal)
			require.NoError(t, err)
			require.Equal(t, wavefront.Found, res.Outcome)
			assert.Equal(t, start.Manhattan(goal), res.Distance, "%v→%v", start, goal)
		}
	}
}

// TestSearch_Labels checks every label on a small maze.
//
//	S.#.        S4#2
//	..#.   →    43#1
//	...G        321G
func TestSearch_Labels(t *testing.T) {
	g, start, goal := parse(t,
		"S.#.",
		"..#.",
		"...G",
	)
	res, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Distance)
	assert.Equal(t, "S4#2\n43#1\n321G\n", g.String())
	d, ok := g.Distance(start)
	assert.True(t, ok)
	assert.Equal(t, 5, d)
}

// TestSearch_OrderIsBFS: Order starts at the goal and never decreases.
func TestSearch_OrderIsBFS(t *testing.T) {
	g, start, goal := parse(t,
		"S....#....",
		".##.##.##.",
		".........G",
		".#.##..#..",
	)
	res, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, goal, res.Order[0])

	prev := 0
	for _, c := range res.Order[1:] {
		d, ok := g.Distance(c)
		require.True(t, ok, "%v unlabeled", c)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
	assert.Equal(t, 0, g.Count(gridgraph.Empty), "component fully labeled")
}

// TestSearch_Unreachable covers a goal walled in by obstacles: the outcome is
// Unreachable with a nil error and only the goal's pocket is labeled.
func TestSearch_Unreachable(t *testing.T) {
	g, start, goal := parse(t,
		"S....",
		"..###",
		"..#G#",
		"..###",
	)
	res, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Unreachable, res.Outcome)
	assert.False(t, res.Reached())
	assert.Equal(t, []gridgraph.Coord{goal}, res.Order)
	assert.Zero(t, g.Count(gridgraph.Labeled))
}

// TestSearch_StartWalledIn: the goal's component is labeled but the start
// stays unreached.
func TestSearch_StartWalledIn(t *testing.T) {
	g, start, goal := parse(t,
		"S#..",
		"##.G",
	)
	res, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Unreachable, res.Outcome)
	assert.Equal(t, 3, g.Count(gridgraph.Labeled))
	_, ok := g.Distance(start)
	assert.False(t, ok)
}

// TestSearch_StartEqualsGoal covers the degenerate case on a 1×1 grid and on
// a fully enclosed cell.
func TestSearch_StartEqualsGoal(t *testing.T) {
	g, err := gridgraph.New(1, 1)
	require.NoError(t, err)
	c := gridgraph.Coord{}
	require.NoError(t, g.SetGoal(c))
	require.NoError(t, g.SetStart(c))

	res, err := wavefront.Search(g, c, c)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Found, res.Outcome)
	assert.Zero(t, res.Distance)

	g2, _, _ := parse(t,
		"S#.",
		"#G#",
		".#.",
	)
	mid := gridgraph.Coord{Row: 1, Col: 1}
	res, err = wavefront.Search(g2, mid, mid)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Found, res.Outcome)
	assert.Zero(t, res.Distance)
	assert.False(t, g2.Dirty(), "no expansion needed")
}

// TestSearch_Deterministic: two runs on an identically reset grid give the
// same labels and the same order.
func TestSearch_Deterministic(t *testing.T) {
	g, start, goal := parse(t,
		"S..#......",
		".#.#.####.",
		".#...#....",
		".####.#.#.",
		"......#..G",
	)
	first, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)
	snap := g.Snapshot()

	g.Reset()
	second, err := wavefront.Search(g, start, goal)
	require.NoError(t, err)

	assert.Equal(t, snap, g.Snapshot())
	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.Distance, second.Distance)
}

// TestSearch_StopAtStart yields the same distance as a full drain but stops
// right after the discovering level.
func TestSearch_StopAtStart(t *testing.T) {
	lines := []string{
		"..........",
		"..S.......",
		"..........",
		".......G..",
		"..........",
	}
	full, start, goal := parse(t, lines...)
	want, err := wavefront.Search(full, start, goal)
	require.NoError(t, err)

	early, _, _ := parse(t, lines...)
	got, err := wavefront.Search(early, start, goal, wavefront.WithStopAtStart())
	require.NoError(t, err)

	assert.Equal(t, wavefront.Found, got.Outcome)
	assert.Equal(t, want.Distance, got.Distance)
	assert.Equal(t, got.Distance, got.Depth, "nothing deeper than the start is labeled")
	assert.Less(t, len(got.Order), len(want.Order))

	// Every cell within the start's distance is labeled, and labels agree.
	for i := 0; i < full.Size(); i++ {
		c := full.Coordinate(i)
		fd, _ := full.Distance(c)
		ed, ok := early.Distance(c)
		if fd <= got.Distance {
			require.True(t, ok, "%v (d=%d) missing from the early run", c, fd)
			assert.Equal(t, fd, ed)
		} else {
			assert.False(t, ok, "%v (d=%d) labeled beyond the start level", c, fd)
		}
	}
}

// TestSearch_GoalMarkerElsewhere: a goal that is not the grid's Goal marker
// is refused before any label is written.
func TestSearch_GoalMarkerElsewhere(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetGoal(gridgraph.Coord{Row: 2, Col: 2}))

	res, err := wavefront.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 0, Col: 2})
	assert.ErrorIs(t, err, wavefront.ErrGoalMismatch)
	assert.Nil(t, res)
	assert.False(t, g.Dirty(), "grid untouched")
	assert.Equal(t, 8, g.Count(gridgraph.Empty))

	// The marker itself is accepted, and the search runs to completion.
	res, err = wavefront.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, wavefront.Found, res.Outcome)
	assert.Equal(t, 4, res.Distance)
}

// TestSearch_CancelMidExpansion raises cancellation from the label hook:
// the result is Cancelled and every label already assigned matches the full
// search, so the partial grid is a BFS prefix.
func TestSearch_CancelMidExpansion(t *testing.T) {
	lines := []string{
		"S.......",
		"........",
		"...##...",
		"...##...",
		"........",
		".......G",
	}
	ref, start, goal := parse(t, lines...)
	_, err := wavefront.Search(ref, start, goal)
	require.NoError(t, err)

	g, _, _ := parse(t, lines...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	labels := 0
	res, err := wavefront.Search(g, start, goal,
		wavefront.WithContext(ctx),
		wavefront.WithOnLabel(func(gridgraph.Coord, int) error {
			labels++
			if labels == 10 {
				cancel()
			}
			return nil
		}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, wavefront.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, wavefront.Cancelled, res.Outcome)
	assert.False(t, res.Reached())

	assert.GreaterOrEqual(t, len(res.Order), 11)
	prev := 0
	for _, c := range res.Order {
		d, ok := g.Distance(c)
		require.True(t, ok)
		want, _ := ref.Distance(c)
		assert.Equal(t, want, d, "label of %v", c)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
	assert.Equal(t, len(res.Order)-1, g.Count(gridgraph.Labeled))
}

// TestSearch_CancelledBeforeStart: an already-done context stops at the first pop.
func TestSearch_CancelledBeforeStart(t *testing.T) {
	g, start, goal := parse(t, "S...G")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := wavefront.Search(g, start, goal, wavefront.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, wavefront.Cancelled, res.Outcome)
	assert.Equal(t, []gridgraph.Coord{goal}, res.Order)
	assert.Zero(t, res.Expanded)
}

// TestSearch_HookError aborts the search and wraps the hook's error.
func TestSearch_HookError(t *testing.T) {
	g, start, goal := parse(t, "S...G")
	boom := errors.New("boom")
	res, err := wavefront.Search(g, start, goal,
		wavefront.WithOnLabel(func(at gridgraph.Coord, d int) error {
			if d == 2 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, wavefront.Aborted, res.Outcome)
	assert.Equal(t, 2, g.Count(gridgraph.Labeled))
}

// TestSearch_Hooks asserts that hooks fire in BFS order with their distances.
func TestSearch_Hooks(t *testing.T) {
	g, start, goal := parse(t, "S..G")
	var labeled, popped []int
	res, err := wavefront.Search(g, start, goal,
		wavefront.WithOnLabel(func(_ gridgraph.Coord, d int) error {
			labeled = append(labeled, d)
			return nil
		}),
		wavefront.WithOnDequeue(func(_ gridgraph.Coord, d int) { popped = append(popped, d) }),
		wavefront.WithOnLabel(nil), // nil hooks are ignored
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, labeled)
	assert.Equal(t, []int{0, 1, 2, 3}, popped)
	assert.Equal(t, res.Expanded, len(popped))
}

// TestOutcome_String covers every verdict name.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", wavefront.Found.String())
	assert.Equal(t, "unreachable", wavefront.Unreachable.String())
	assert.Equal(t, "cancelled", wavefront.Cancelled.String())
	assert.Equal(t, "aborted", wavefront.Aborted.String())
	assert.Equal(t, "Outcome(9)", wavefront.Outcome(9).String())
}
