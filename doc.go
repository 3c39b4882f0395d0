// Package mazegrow grows perfect-maze-like structures on 2D grids by
// racing multiple independent "trees" of active cells toward each other
// from randomly placed seeds.
//
// 🌱 What is mazegrow?
//
//	A small, deterministic, in-memory generation library:
//		• Multi-tree frontier growth with a per-cell Bernoulli growth gate
//		• Collision handling: colliding growth fronts bridge and merge
//		  into one canonical tree (union-find partition)
//		• Configurable branching density (Random / Partial / Full)
//		• Automatic entry (left edge) and exit (right edge) placement
//		• Read-only grid view for external renderers and UIs
//
// ✨ Why choose mazegrow?
//
//   - Deterministic – every stochastic choice flows through one seedable RNG
//   - Rock-solid guarantees – validated construction, total growth loop
//   - Pure Go – no cgo, no hidden deps
//   - Renderer-agnostic – the core never draws, logs, or touches disk
//
// Everything lives in one subpackage:
//
//	squaremaze/ — the grid state machine: construction, Step/Build growth,
//	              tree partition, entry/exit placement, component scans
//
// Quick ASCII example of two trees about to merge:
//
//	██ ·· ██
//	██ →← ██
//	██ ·· ██
//
// Dive into squaremaze's package documentation for the full contract.
package mazegrow
