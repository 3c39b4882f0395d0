// Package squaremaze growth loop: one Step is one atomic iteration over
// every live tree's frontier, fully resolving merges and entry/exit
// placement before returning.
package squaremaze

import "sort"

// Step performs exactly one growth iteration and reports whether the maze
// is complete (no live trees remain).
//
// Steps:
//  1. Snapshot the live canonical ids, ascending, so merges mid-iteration
//     neither skip nor double-process a tree.
//  2. Per tree, walk its frontier from the back. Each position draws its
//     own uniform value against the growth rate — a per-cell Bernoulli
//     gate, not a per-iteration one — and gated-out positions stay in the
//     frontier for a future iteration.
//  3. A selected position is consumed (a position branches exactly once)
//     and branches out; new heads are collected.
//  4. A tree that merges away mid-iteration stops being processed here —
//     its remaining frontier has already moved to the surviving tree.
//  5. Heads are appended to the tree's canonical frontier; a tree whose
//     frontier ends the pass empty is finished and leaves the live set.
//
// Complexity: O(F·d), F = live frontier positions, d = 4 directions.
func (m *Maze) Step() bool {
	// 1. Deterministic processing order under a seeded RNG.
	ids := make([]int, 0, len(m.frontiers))
	for id := range m.frontiers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, tree := range ids {
		if _, live := m.frontiers[tree]; !live {
			// Absorbed by a tree processed earlier in this iteration.
			continue
		}

		var heads []Point
		for i := len(m.frontiers[tree]) - 1; i >= 0; i-- {
			branches, live := m.frontiers[tree]
			if !live {
				// 4. Merged away mid-pass; the survivor owns the rest.
				break
			}
			// 2. Per-position Bernoulli gate.
			if m.rng.Float64() >= m.rate {
				continue
			}
			// 3. Consume the position, then branch.
			pos := branches[i]
			m.frontiers[tree] = append(branches[:i], branches[i+1:]...)
			heads = append(heads, m.branchOut(pos, tree)...)
		}

		// 5. New heads always land on the canonical tree, which is the
		// merge target when this tree was absorbed above.
		canon := m.part.find(tree)
		m.frontiers[canon] = append(m.frontiers[canon], heads...)
		if len(m.frontiers[canon]) == 0 {
			delete(m.frontiers, canon)
		}
	}

	return len(m.frontiers) == 0
}

// Build runs Step until the maze is complete. Fully synchronous; callers
// wanting per-iteration observation drive Step themselves.
func (m *Maze) Build() {
	for !m.Step() {
	}
}

// branchOut expands one consumed frontier position: gather the viable
// candidate moves, filter them through the branching strategy, and
// activate the survivors with the tree's id.
func (m *Maze) branchOut(pos Point, tree int) []Point {
	moves := m.selectMoves(m.freeMoves(pos, tree))
	for _, mv := range moves {
		m.paint(mv.X, mv.Y, tree)
	}
	return moves
}

// freeMoves computes the candidate moves around pos for the given tree:
// up to four 1-cell moves, each validated two cells ahead. Edge placement
// takes precedence over everything — a position that reaches the right
// edge places the exit, one that reaches the left edge places the entry,
// and in both cases the position emits no further moves.
func (m *Maze) freeMoves(pos Point, tree int) []Point {
	x, y := pos.X, pos.Y
	var moves []Point

	// Forward (+x). Reaching the right edge always terminates the branch,
	// whether or not it wins the exit slot.
	if x+2 == m.width {
		if m.exit == nil {
			m.paint(x+1, y, tree)
			m.exit = &Point{X: x + 1, Y: y}
		}
		return nil
	} else if m.windowYClear(x+1, y) {
		if m.joinX(x, y, tree, 1) {
			moves = append(moves, Point{X: x + 1, Y: y})
		}
	}

	// Backward (−x), or entry placement at the left edge. Entry wins over
	// any move already collected for this position.
	if x > 1 {
		if m.windowYClear(x-1, y) && m.joinX(x, y, tree, -1) {
			moves = append(moves, Point{X: x - 1, Y: y})
		}
	} else if m.entry == nil {
		m.paint(0, y, tree)
		m.entry = &Point{X: 0, Y: y}
		return nil
	}

	// Sideways (±y). Boundary failures drop the direction silently.
	if y+2 < m.height && m.windowXClear(x, y+1) {
		if m.joinY(x, y, tree, 1) {
			moves = append(moves, Point{X: x, Y: y + 1})
		}
	}
	if y > 1 && m.windowXClear(x, y-1) {
		if m.joinY(x, y, tree, -1) {
			moves = append(moves, Point{X: x, Y: y - 1})
		}
	}

	return moves
}

// windowYClear reports whether the vertical 3-cell window centered on
// (x, y) — the candidate cell and its two neighbors along y — is fully
// inside the grid and unoccupied. This perpendicular window is what keeps
// branches separated by at least one empty cell outside merge points.
func (m *Maze) windowYClear(x, y int) bool {
	if y-1 < 0 || y+1 >= m.height {
		return false
	}
	return m.cells[m.index(x, y-1)] == 0 &&
		m.cells[m.index(x, y)] == 0 &&
		m.cells[m.index(x, y+1)] == 0
}

// windowXClear is windowYClear's horizontal counterpart for ±y moves.
func (m *Maze) windowXClear(x, y int) bool {
	if x-1 < 0 || x+1 >= m.width {
		return false
	}
	return m.cells[m.index(x-1, y)] == 0 &&
		m.cells[m.index(x, y)] == 0 &&
		m.cells[m.index(x+1, y)] == 0
}

// joinX inspects the vertical 3-cell window two cells ahead along x
// (dir = ±1). An empty window clears the move. A window holding a cell of
// a different canonical tree rejects the move but bridges the gap — the
// one- and two-cell-ahead positions are activated with the current tree —
// and merges the current tree into the occupant. A window holding the
// current tree's own cells simply rejects the move.
func (m *Maze) joinX(x, y, tree, dir int) bool {
	ahead := x + 2*dir
	for dy := -1; dy <= 1; dy++ {
		occupant := m.cells[m.index(ahead, y+dy)]
		if occupant == 0 {
			continue
		}
		cur, other := m.part.find(tree), m.part.find(occupant)
		if cur != other {
			m.paint(x+dir, y, tree)
			m.paint(ahead, y, tree)
			m.merge(cur, other)
		}
		return false
	}

	return true
}

// joinY is joinX's counterpart along y: the window two cells ahead spans
// the perpendicular (x) axis.
func (m *Maze) joinY(x, y, tree, dir int) bool {
	ahead := y + 2*dir
	for dx := -1; dx <= 1; dx++ {
		occupant := m.cells[m.index(x+dx, ahead)]
		if occupant == 0 {
			continue
		}
		cur, other := m.part.find(tree), m.part.find(occupant)
		if cur != other {
			m.paint(x, y+dir, tree)
			m.paint(x, ahead, tree)
			m.merge(cur, other)
		}
		return false
	}

	return true
}

// merge unifies two canonical trees after a growth-front collision: the
// merging-away tree's entire frontier moves to the target and the
// partition is remapped so every raw id that resolved to from now
// resolves to into. Merging into a tree that already finished revives it;
// the transferred positions grow on from the next iteration.
func (m *Maze) merge(from, into int) {
	if from == into {
		return
	}
	m.frontiers[into] = append(m.frontiers[into], m.frontiers[from]...)
	delete(m.frontiers, from)
	m.part.absorb(from, into)
}

// selectMoves applies the branching strategy to the candidate moves.
func (m *Maze) selectMoves(moves []Point) []Point {
	switch m.strategy {
	case StrategyFull:
		return moves
	case StrategyPartial:
		k := 2
		if len(moves) < k {
			k = len(moves)
		}
		return samplePoints(moves, k, m.rng)
	default: // StrategyRandom
		if len(moves) <= 1 {
			return moves
		}
		return samplePoints(moves, 1+m.rng.Intn(len(moves)-1), m.rng)
	}
}
