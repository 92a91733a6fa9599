// SPDX-License-Identifier: MIT
// Package: dockyard/grid
//
// options.go - functional options for Random.
//
// Contract:
//   • Options are functional (type RandomOption func(*randomConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil rng, probability outside [0,1]). Random itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand;
//     without either, a fixed default seed is used.

package grid

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultRandomSeed   int64 = 1   // used when no seed is given, or seed==0
	defaultBuildingRate       = 0.2 // share of Building cells
	defaultCraneRate          = 0.2 // share of Crane cells
)

// RandomOption customizes Random by mutating a randomConfig before the
// grid is drawn. Later options override earlier ones.
type RandomOption func(*randomConfig)

// randomConfig aggregates all knobs used by Random.
type randomConfig struct {
	rng          *rand.Rand
	buildingRate float64
	craneRate    float64
	openOrigin   bool
}

// newRandomConfig applies opts over the deterministic defaults.
func newRandomConfig(opts ...RandomOption) randomConfig {
	cfg := randomConfig{
		buildingRate: defaultBuildingRate,
		craneRate:    defaultCraneRate,
		openOrigin:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed draws cells from a fresh RNG seeded with seed.
// seed==0 selects the fixed default seed.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws cells from r. Panics on nil; prefer WithSeed for
// reproducible runs. r is not safe to share across goroutines.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithBuildingRate sets the probability that a cell is a Building.
// Panics if p is outside [0,1].
func WithBuildingRate(p float64) RandomOption {
	if p < 0 || p > 1 {
		panic("grid: WithBuildingRate(p outside [0,1])")
	}
	return func(c *randomConfig) {
		c.buildingRate = p
	}
}

// WithCraneRate sets the probability that a cell is a Crane.
// Panics if p is outside [0,1].
func WithCraneRate(p float64) RandomOption {
	if p < 0 || p > 1 {
		panic("grid: WithCraneRate(p outside [0,1])")
	}
	return func(c *randomConfig) {
		c.craneRate = p
	}
}

// WithOpenOrigin controls whether a Building drawn at (0,0) is replaced by
// Open. Enabled by default, since no path exists from a blocked origin.
func WithOpenOrigin(open bool) RandomOption {
	return func(c *randomConfig) {
		c.openOrigin = open
	}
}
