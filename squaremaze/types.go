// Package squaremaze types: branching strategies, grid coordinates and
// the functional-option configuration surface.
package squaremaze

import (
	"math/rand"
	"strings"
)

// Strategy selects how many of a position's viable candidate moves become
// new frontier cells on each branch-out. It is the primary driver of
// visual branch density.
type Strategy int

const (
	// StrategyRandom activates a uniformly random-sized subset of the
	// candidate moves: all of them when there is at most one, otherwise a
	// subset of size drawn uniformly from [1, len-1].
	StrategyRandom Strategy = iota

	// StrategyPartial activates at most two candidate moves.
	StrategyPartial

	// StrategyFull activates every candidate move.
	StrategyFull
)

// String returns the canonical lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyPartial:
		return "partial"
	case StrategyFull:
		return "full"
	default:
		return "random"
	}
}

// ParseStrategy maps a case-insensitive strategy name to a Strategy.
// Unrecognized names fall back to StrategyRandom.
func ParseStrategy(name string) Strategy {
	switch strings.ToLower(name) {
	case "partial":
		return StrategyPartial
	case "full":
		return StrategyFull
	default:
		return StrategyRandom
	}
}

// Point is a grid coordinate: X ∈ [0, width), Y ∈ [0, height).
type Point struct {
	X, Y int
}

// Growth-rate clamp bounds. A rate of exactly 0 would gate every draw and
// stall the build forever, so the floor is enforced rather than rejected.
const (
	minGrowthRate = 0.1
	maxGrowthRate = 1.0
)

// defaultSpacing is the coarse sub-grid factor used to sample seed centers
// so that seed clusters cannot overlap.
const defaultSpacing = 5

// seedMargin is the minimum distance of a seed center from every border.
const seedMargin = 2

// Options holds the tunable parameters for maze construction.
//
// Fields:
//   - Trees       — number of competing seed clusters, ≥ 1.
//   - GrowthRate  — per-cell Bernoulli gate, clamped to [0.1, 1.0].
//   - Strategy    — branching policy (see Strategy).
//   - Spacing     — seed-placement spacing factor, ≥ 1.
//   - Seed        — RNG seed; 0 selects a fixed default stream.
//   - Rand        — explicit RNG, overrides Seed when non-nil.
//   - SeedCenters — pinned cluster centers; nil means sample randomly.
type Options struct {
	Trees       int
	GrowthRate  float64
	Strategy    Strategy
	Spacing     int
	Seed        int64
	Rand        *rand.Rand
	SeedCenters []Point
}

// DefaultOptions returns the Options New starts from:
// one tree, rate 1.0, StrategyRandom, spacing 5, default RNG stream.
func DefaultOptions() Options {
	return Options{
		Trees:      1,
		GrowthRate: maxGrowthRate,
		Strategy:   StrategyRandom,
		Spacing:    defaultSpacing,
	}
}

// Option configures maze construction via functional arguments.
// Invalid values are surfaced by New as ErrInvalidParameter or
// ErrInvalidDimensions; Option setters themselves never panic.
type Option func(*Options)

// WithTrees sets the number of competing seed clusters. Must be ≥ 1.
func WithTrees(n int) Option {
	return func(o *Options) { o.Trees = n }
}

// WithGrowthRate sets the per-cell growth probability. Values below 0.1
// are raised to 0.1 and values above 1.0 are lowered to 1.0 during
// construction; the clamp is documented behavior, not an error.
func WithGrowthRate(rate float64) Option {
	return func(o *Options) { o.GrowthRate = rate }
}

// WithStrategy sets the branching policy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSpacing overrides the seed-placement spacing factor. Must be ≥ 1.
func WithSpacing(spacing int) Option {
	return func(o *Options) { o.Spacing = spacing }
}

// WithSeed selects a deterministic RNG stream. Seed 0 selects the fixed
// default stream, so identical option sets always build identical mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand provides an explicit RNG, taking precedence over WithSeed.
// Panics on nil to surface programmer error early; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("squaremaze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeedCenters pins the seed cluster centers instead of sampling them.
// The list length must equal the tree count; each center must keep the
// 2-cell border margin and centers must be at least 4 cells apart on one
// axis (Chebyshev), which keeps cluster cells 2 blocks from each other.
func WithSeedCenters(centers ...Point) Option {
	return func(o *Options) {
		o.SeedCenters = append([]Point(nil), centers...)
	}
}
