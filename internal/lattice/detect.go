package lattice

// Detect reports whether the newly inserted point pt completes a square
// with three previously placed points. It scans the history in insertion
// order and, for each prior point, checks the two 90°-rotation
// constructions that treat pt and the prior point as adjacent corners:
// the "left-hand" orientation first, then the "right-hand" one. The first
// square whose remaining two vertices are in bounds and occupied wins.
//
// Cost is O(len(history)): four bounds checks and two occupancy lookups
// per orientation.
func Detect(g *Grid, pt Point) (Square, bool) {
	x, y := pt.X, pt.Y

	for _, p := range g.Points() {
		if p == pt {
			// Cannot occur when pt was just inserted, but guarded so the
			// detector is safe against arbitrary call order.
			continue
		}
		xt, yt := p.X, p.Y

		// Left-hand side of the segment pt--p.
		c3 := Point{X: xt + yt - y, Y: yt - xt + x}
		c4 := Point{X: x + yt - y, Y: y - xt + x}
		if g.Occupied(c3) && g.Occupied(c4) {
			return Square{V1: pt, V2: c3, V3: p, V4: c4}, true
		}

		// Right-hand side.
		c3 = Point{X: xt - yt + y, Y: yt + xt - x}
		c4 = Point{X: x - yt + y, Y: y + xt - x}
		if g.Occupied(c3) && g.Occupied(c4) {
			return Square{V1: pt, V2: c3, V3: p, V4: c4}, true
		}
	}

	return Square{}, false
}
