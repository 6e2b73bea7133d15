// SPDX-License-Identifier: MIT

package gridgraph

// Regions finds all 4-connected regions of traversable (non-Blocked) cells.
// Each region lists its cells in discovery order; regions are ordered by
// their first cell in row-major order.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.states))
	var regions [][]Coord

	for i0, s := range g.states {
		if s == Blocked || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, d := range neighborOffsets {
				v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v)
				if g.states[vi] != Blocked && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b lie in the same traversable region.
// Both must be in bounds and not Blocked.
func (g *Grid) Connected(a, b Coord) bool {
	if g.State(a) == Blocked || g.State(b) == Blocked {
		return false
	}
	for _, region := range g.Regions() {
		var hasA, hasB bool
		for _, c := range region {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
