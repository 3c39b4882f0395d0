// Package squaremaze core state: the grid, construction and the read-only
// view consumed by renderers, CLIs and GUIs.
package squaremaze

import "math/rand"

// Maze is the multi-tree growth state machine. It is mutated in place by
// Step/Build and becomes effectively immutable once Done reports true.
//
// The grid is row-major: index = y*width + x. Value 0 means unoccupied; a
// positive value is the raw tree id that painted the cell. Raw ids are
// historical — membership decisions must resolve through Canonical.
//
// Not safe for concurrent use; independent Maze instances share nothing.
type Maze struct {
	width, height int
	rate          float64
	strategy      Strategy
	cells         []int
	part          *partition
	frontiers     map[int][]Point
	entry, exit   *Point
	rng           *rand.Rand
}

// New constructs a maze with treeCount seed clusters painted and their
// frontiers armed, ready for Step or Build.
//
// Steps:
//  1. Apply options over DefaultOptions; clamp the growth rate to
//     [0.1, 1.0] and fold unknown strategies back to StrategyRandom.
//  2. Validate parameters (ErrInvalidParameter) and dimensions against
//     the coarse seed sub-grid (ErrInvalidDimensions). Fail fast: no
//     partial state escapes.
//  3. Resolve seed centers — pinned via WithSeedCenters, or sampled as
//     distinct coarse offsets per axis so no two clusters can overlap.
//  4. Paint each cluster as a 5-cell plus (center, ±x, ±y) with its raw
//     tree id (1-based) and seed the tree's frontier with those 5 cells.
//
// Complexity: O(W×H) for the grid allocation plus O(trees) seeding.
func New(width, height int, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Normalize the stochastic knobs.
	rate := o.GrowthRate
	if rate < minGrowthRate {
		rate = minGrowthRate
	}
	if rate > maxGrowthRate {
		rate = maxGrowthRate
	}
	strategy := o.Strategy
	switch strategy {
	case StrategyRandom, StrategyPartial, StrategyFull:
	default:
		strategy = StrategyRandom
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	// 2. Validate parameters before touching any state.
	if o.Trees < 1 || o.Spacing < 1 {
		return nil, ErrInvalidParameter
	}
	if o.SeedCenters != nil && len(o.SeedCenters) != o.Trees {
		return nil, ErrInvalidParameter
	}

	// 3. Resolve seed centers.
	centers, err := resolveCenters(width, height, o, rng)
	if err != nil {
		return nil, err
	}

	m := &Maze{
		width:     width,
		height:    height,
		rate:      rate,
		strategy:  strategy,
		cells:     make([]int, width*height),
		part:      newPartition(o.Trees),
		frontiers: make(map[int][]Point, o.Trees),
		rng:       rng,
	}

	// 4. Paint the plus-shaped clusters and arm the frontiers.
	for i, c := range centers {
		tree := i + 1
		cluster := []Point{
			{c.X - 1, c.Y}, {c.X, c.Y}, {c.X + 1, c.Y},
			{c.X, c.Y - 1}, {c.X, c.Y + 1},
		}
		for _, p := range cluster {
			m.paint(p.X, p.Y, tree)
		}
		m.frontiers[tree] = cluster
	}

	return m, nil
}

// resolveCenters produces the seed cluster centers: the pinned list when
// provided (validated for margin and pairwise spacing), otherwise a random
// sample from the coarse sub-grid. Sampling draws distinct coarse offsets
// per axis, so any two sampled centers differ by at least Spacing on both
// axes and clusters stay ≥ 2 blocks apart.
func resolveCenters(width, height int, o Options, rng *rand.Rand) ([]Point, error) {
	if o.SeedCenters != nil {
		for i, c := range o.SeedCenters {
			if c.X < seedMargin || c.X >= width-seedMargin ||
				c.Y < seedMargin || c.Y >= height-seedMargin {
				return nil, ErrInvalidDimensions
			}
			for _, prev := range o.SeedCenters[:i] {
				if chebyshev(c, prev) < 2*seedMargin {
					return nil, ErrInvalidDimensions
				}
			}
		}
		return o.SeedCenters, nil
	}

	// Coarse axes: each tree claims one distinct offset per axis.
	nx := (width - 2*seedMargin) / o.Spacing
	ny := (height - 2*seedMargin) / o.Spacing
	if o.Trees > nx || o.Trees > ny {
		return nil, ErrInvalidDimensions
	}

	xs := sampleOffsets(nx, o.Trees, rng)
	ys := sampleOffsets(ny, o.Trees, rng)
	centers := make([]Point, o.Trees)
	for i := range centers {
		centers[i] = Point{seedMargin + xs[i]*o.Spacing, seedMargin + ys[i]*o.Spacing}
	}

	return centers, nil
}

// chebyshev returns the Chebyshev (king-move) distance between two points.
func chebyshev(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Width returns the grid width in cells.
func (m *Maze) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *Maze) Height() int { return m.height }

// At returns the raw tree id occupying (x, y), 0 when the cell is empty
// or the coordinates are out of bounds. Renderers typically only care
// whether the value is zero.
func (m *Maze) At(x, y int) int {
	if !m.inBounds(x, y) {
		return 0
	}
	return m.cells[m.index(x, y)]
}

// Canonical resolves a raw tree id (as returned by At) to the canonical
// tree id it currently belongs to after zero or more merges.
func (m *Maze) Canonical(id int) int {
	return m.part.find(id)
}

// Entry returns the entry coordinate on the x=0 edge, if one has been set.
func (m *Maze) Entry() (Point, bool) {
	if m.entry == nil {
		return Point{}, false
	}
	return *m.entry, true
}

// Exit returns the exit coordinate on the x=width-1 edge, if set.
func (m *Maze) Exit() (Point, bool) {
	if m.exit == nil {
		return Point{}, false
	}
	return *m.exit, true
}

// Done reports whether every tree has finished growing. It keeps
// returning true once the maze is complete.
func (m *Maze) Done() bool { return len(m.frontiers) == 0 }

// LiveTrees returns the number of trees that still hold frontier
// positions.
func (m *Maze) LiveTrees() int { return len(m.frontiers) }

// index maps (x, y) to a row-major index: y*width + x.
func (m *Maze) index(x, y int) int { return y*m.width + x }

// inBounds reports whether (x, y) lies within the grid boundaries.
func (m *Maze) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// paint occupies (x, y) with the given raw tree id. Cells are never
// erased; repainting only happens on merge bridges, where the cell stays
// occupied and both raw ids resolve to the same canonical tree.
func (m *Maze) paint(x, y, tree int) {
	m.cells[m.index(x, y)] = tree
}
