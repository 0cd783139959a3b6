package lattice

import "strings"

// Render draws the grid as ASCII art in Cartesian orientation (y grows
// upward, so rows print from y=N-1 down). Square vertices print as '#',
// other occupied cells as '.', empty cells as a space. Intended only for
// small grids; callers gate on a size threshold.
func Render(g *Grid, sq Square) string {
	var b strings.Builder
	b.Grow(g.size * (2*g.size + 1))

	for y := g.size - 1; y >= 0; y-- {
		for x := 0; x < g.size; x++ {
			p := Point{X: x, Y: y}
			switch {
			case sq.Contains(p):
				b.WriteString("# ")
			case g.Occupied(p):
				b.WriteString(". ")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
