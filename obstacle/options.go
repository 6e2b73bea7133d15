// SPDX-License-Identifier: MIT
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil RNG, nil hook, negative column). Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package obstacle

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/grassfire/gridgraph"
)

// Option customizes Generate by mutating a config before sampling begins.
type Option func(*config)

// config aggregates all knobs used by Generate.
type config struct {
	rng         *rand.Rand
	exclude     mapset.Set[gridgraph.Coord]
	excludeCols mapset.Set[int]
	onBlock     func(c gridgraph.Coord) error
}

// newConfig applies opts in order over the defaults:
// a time-seeded RNG, no extra exclusions and a no-op hook.
func newConfig(opts ...Option) config {
	cfg := config{
		exclude:     mapset.New[gridgraph.Coord](),
		excludeCols: mapset.New[int](),
		onBlock:     func(gridgraph.Coord) error { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("obstacle: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithExclude protects the given cells from being blocked.
// Out-of-bounds cells are ignored.
func WithExclude(cells ...gridgraph.Coord) Option {
	return func(c *config) {
		for _, cell := range cells {
			c.exclude.Put(cell)
		}
	}
}

// WithExcludeColumn protects every cell of column col. Panics if col < 0.
func WithExcludeColumn(col int) Option {
	if col < 0 {
		panic("obstacle: WithExcludeColumn(col<0)")
	}
	return func(c *config) {
		c.excludeCols.Put(col)
	}
}

// WithOnBlock registers an observer called after each placed obstacle.
// Returning an error stops Generate. Panics on nil.
func WithOnBlock(fn func(c gridgraph.Coord) error) Option {
	if fn == nil {
		panic("obstacle: WithOnBlock(nil)")
	}
	return func(c *config) {
		c.onBlock = fn
	}
}
