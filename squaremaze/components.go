package squaremaze

// componentOffsets is the 4-neighborhood used for occupancy connectivity.
var componentOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components finds all contiguous regions of occupied cells under
// 4-connectivity, ignoring tree ids — two adjacent occupied cells are
// connected even if their raw ids differ (merge bridges repaint raw ids,
// connectivity is purely geometric). Components and their points are
// returned in row-major scan/BFS order, so the result is deterministic.
//
// A fully built single-tree maze yields exactly one component.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Components() [][]Point {
	seen := make([]bool, len(m.cells))
	var comps [][]Point

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i0 := m.index(x, y)
			if m.cells[i0] == 0 || seen[i0] {
				continue
			}
			// BFS to collect the component.
			queue := []Point{{X: x, Y: y}}
			seen[i0] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, d := range componentOffsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !m.inBounds(vx, vy) {
						continue
					}
					vi := m.index(vx, vy)
					if m.cells[vi] == 0 || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, Point{X: vx, Y: vy})
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
