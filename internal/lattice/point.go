package lattice

import "math"

// Point is an integer cell coordinate on the lattice. Valid coordinates
// lie in [0, N) on both axes for a grid of size N.
type Point struct {
	X int
	Y int
}

// Square holds the four vertices of a detected square in construction
// order: the newly placed point, its first partner, the scanned existing
// point, and the second partner. V2 and V3 are adjacent corners, so the
// distance between them is a true side length.
type Square struct {
	V1, V2, V3, V4 Point
}

// DistanceSq returns the squared Euclidean distance between two points.
func DistanceSq(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Side returns the Euclidean side length of the square.
func (s Square) Side() float64 {
	return math.Sqrt(float64(DistanceSq(s.V2, s.V3)))
}

// Vertices returns the four corners in construction order.
func (s Square) Vertices() [4]Point {
	return [4]Point{s.V1, s.V2, s.V3, s.V4}
}

// Contains reports whether p is one of the square's vertices.
func (s Square) Contains(p Point) bool {
	return p == s.V1 || p == s.V2 || p == s.V3 || p == s.V4
}
