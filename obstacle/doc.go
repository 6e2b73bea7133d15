// SPDX-License-Identifier: MIT

// Package obstacle places randomized Blocked cells on a gridgraph.Grid.
//
// What
//
//   - Generate blocks floor(density×rows×cols/100) cells, chosen uniformly
//     without replacement from the Empty cells that are not excluded.
//   - Start and goal markers are never blocked (full-coordinate exclusion).
//   - WithExclude adds arbitrary protected cells; WithExcludeColumn protects a
//     whole column (useful to keep a start row entrance open).
//
// Termination
//
//	Candidates are collected once and sampled by a partial Fisher–Yates
//	shuffle, so Generate performs exactly target draws. A density that asks
//	for more obstacles than there are candidates fails up front with
//	ErrInsufficientFreeCells instead of retrying.
//
// Determinism
//
//	WithSeed (or WithRand) fixes the draw sequence; together with the
//	row-major candidate order the placed set is reproducible.
//
// Options
//
//   - WithSeed(seed):          deterministic *rand.Rand.
//   - WithRand(r):             caller-owned RNG (panics on nil).
//   - WithExclude(cells...):   never block these cells.
//   - WithExcludeColumn(col):  never block any cell in column col (panics on col<0).
//   - WithOnBlock(fn):         observer after each placement; an error aborts.
//
// Errors
//
//   - ErrGridNil               grid pointer is nil.
//   - ErrDensityRange          density outside [0,100].
//   - ErrInsufficientFreeCells more obstacles requested than candidate cells.
//   - Wrapped OnBlock errors.
//
// Complexity: O(rows×cols) time and memory.
package obstacle
