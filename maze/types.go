// Package maze core types and functional options.
//
// Options follow the validate-and-panic policy: option constructors panic
// on meaningless inputs (nil RNG), while New itself never panics and
// reports bad length vectors through sentinel errors.
package maze

import (
	"math/rand" // RNG source for edge priorities
)

// Point is a cell coordinate: one small unsigned component per dimension,
// each in [0, length of that dimension). Points are plain slices; callers
// own the memory they pass in, and the maze never retains a caller's Point.
type Point []uint8

// Clone returns an independent copy of p.
// Complexity: O(D).
func (p Point) Clone() Point {
	return append(Point(nil), p...)
}

// DefaultSeed seeds the random source when no WithRand/WithSeed option is
// supplied. Kept stable so zero-configuration construction is reproducible.
const DefaultSeed int64 = 123456789

// Option customizes maze construction by mutating a config before
// generation begins.
type Option func(*config)

// config aggregates construction knobs; resolved once per New call.
type config struct {
	// rng yields edge priorities; nil resolves to a DefaultSeed source.
	rng *rand.Rand
}

// WithRand provides an explicit RNG for edge-priority draws.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies options in order (last wins) and resolves defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
