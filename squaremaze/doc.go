// Package squaremaze generates a perfect-maze-like structure on a square
// grid by growing several competing trees outward from seed clusters.
//
// What:
//
//   - Maze owns the grid, per-tree frontier sets, the tree-merge partition,
//     and the entry/exit slots.
//   - Step advances growth by exactly one iteration; Build runs to
//     completion; Done polls completion idempotently.
//   - Colliding growth fronts are bridged and merged into one canonical
//     tree, the single loop-avoidance device of the algorithm.
//   - The first branch to reach the left edge places the entry; the first
//     to reach the right edge places the exit.
//
// Why:
//
//   - Procedural level/maze generation with organic, uneven branch density.
//   - Animated consumers: call Step per frame and read the grid view.
//   - One-shot consumers: call Build and rasterize the final grid.
//
// Complexity:
//
//   - Step:  O(F·d) per iteration, F = live frontier positions, d = 4.
//   - Build: O(W×H) activations overall — every cell is painted at most
//     twice and every frontier position branches exactly once.
//   - Memory: O(W×H) for the grid plus O(F) frontier bookkeeping.
//
// Options:
//
//   - WithTrees:       number of competing seed clusters (default 1).
//   - WithGrowthRate:  per-cell Bernoulli gate in [0.1, 1.0] (default 1.0);
//     lower values are raised to 0.1, a rate of 0 would stall forever.
//   - WithStrategy:    StrategyRandom / StrategyPartial / StrategyFull.
//   - WithSpacing:     coarse seed-placement spacing factor (default 5).
//   - WithSeed / WithRand: deterministic randomness source.
//   - WithSeedCenters: pin seed cluster centers instead of sampling.
//
// Errors:
//
//   - ErrInvalidDimensions: grid too small for the requested seed clusters,
//     or pinned centers violate the border margin / pairwise spacing.
//   - ErrInvalidParameter: tree count < 1, spacing < 1, or a pinned-center
//     count that disagrees with the tree count.
//
// Both errors are construction-time only; once New succeeds the growth
// loop is total and cannot fail.
package squaremaze
