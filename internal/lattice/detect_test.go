package lattice

import (
	"testing"

	"github.com/banshee-data/lattice.report/internal/testutil"
)

func TestDetect_TooFewPoints(t *testing.T) {
	g := makeTestGrid(t, 5, 1)
	pt := Point{X: 2, Y: 2}
	existing := []Point{{X: 0, Y: 0}, {X: 0, Y: 2}}

	// Zero, one and two existing points can never complete a square.
	for n := 0; n <= len(existing); n++ {
		g.Reset()
		for _, p := range existing[:n] {
			g.Insert(p)
		}
		g.Insert(pt)
		if _, ok := Detect(g, pt); ok {
			t.Fatalf("Detect with %d existing points reported a square", n)
		}
	}
}

// Known axis-aligned configuration: three corners placed, the fourth
// completes {(0,0),(0,2),(2,0),(2,2)}.
func TestDetect_AxisAligned(t *testing.T) {
	g := makeTestGrid(t, 4, 1)
	for _, p := range []Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}} {
		g.Insert(p)
	}
	pt := Point{X: 2, Y: 2}
	g.Insert(pt)

	sq, ok := Detect(g, pt)
	if !ok {
		t.Fatal("expected a square, got none")
	}

	want := map[Point]bool{
		{X: 0, Y: 0}: true, {X: 0, Y: 2}: true,
		{X: 2, Y: 0}: true, {X: 2, Y: 2}: true,
	}
	for _, v := range sq.Vertices() {
		if !want[v] {
			t.Fatalf("unexpected vertex %v in square %+v", v, sq)
		}
		delete(want, v)
	}
	if len(want) != 0 {
		t.Fatalf("square %+v missing vertices %v", sq, want)
	}

	// V2/V3 are adjacent corners: the reported side must be the true
	// side length 2, not the diagonal 2√2.
	if got := sq.Side(); got != 2.0 {
		t.Fatalf("Side() = %v, want 2", got)
	}
}

// A tilted square must be found through the same construction.
func TestDetect_Tilted(t *testing.T) {
	g := makeTestGrid(t, 4, 1)
	for _, p := range []Point{{X: 1, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 3}} {
		g.Insert(p)
	}
	pt := Point{X: 0, Y: 2}
	g.Insert(pt)

	sq, ok := Detect(g, pt)
	if !ok {
		t.Fatal("expected a tilted square, got none")
	}
	if sq.V1 != pt {
		t.Fatalf("V1 = %v, want the new point %v", sq.V1, pt)
	}
	if got := DistanceSq(sq.V2, sq.V3); got != 5 {
		t.Fatalf("side squared = %d, want 5", got)
	}
}

func TestDetect_NoFalsePositive(t *testing.T) {
	g := makeTestGrid(t, 5, 1)
	// Three collinear points plus one off the line: no square exists.
	for _, p := range []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}} {
		g.Insert(p)
	}
	pt := Point{X: 4, Y: 3}
	g.Insert(pt)

	if sq, ok := Detect(g, pt); ok {
		t.Fatalf("Detect reported square %+v on square-free configuration", sq)
	}
}

// Candidate vertices that fall outside the lattice must be rejected even
// when their wrapped positions happen to be occupied.
func TestDetect_OutOfBoundsCandidates(t *testing.T) {
	g := makeTestGrid(t, 3, 1)
	// (0,0) and (2,2) as adjacent corners would need vertices outside a
	// 3-grid in both orientations.
	g.Insert(Point{X: 0, Y: 0})
	pt := Point{X: 2, Y: 2}
	g.Insert(pt)

	if sq, ok := Detect(g, pt); ok {
		t.Fatalf("Detect reported square %+v with out-of-bounds vertices", sq)
	}
}

// checkSquareGeometry validates the full side/diagonal relation of a
// detected square: traversal order V1->V3->V2->V4 walks the perimeter, so
// those four edges are equal and the two remaining pairs are diagonals.
func checkSquareGeometry(t *testing.T, g *Grid, sq Square) {
	t.Helper()

	vs := sq.Vertices()
	for i, v := range vs {
		if !g.InBounds(v) {
			t.Fatalf("vertex %d = %v out of bounds", i, v)
		}
		if !g.Occupied(v) {
			t.Fatalf("vertex %d = %v not occupied", i, v)
		}
		for j := i + 1; j < len(vs); j++ {
			if v == vs[j] {
				t.Fatalf("vertices %d and %d coincide at %v", i, j, v)
			}
		}
	}

	side := DistanceSq(sq.V1, sq.V3)
	if side == 0 {
		t.Fatal("degenerate square with zero side")
	}
	for name, got := range map[string]int{
		"V3-V2": DistanceSq(sq.V3, sq.V2),
		"V2-V4": DistanceSq(sq.V2, sq.V4),
		"V4-V1": DistanceSq(sq.V4, sq.V1),
	} {
		if got != side {
			t.Fatalf("edge %s squared = %d, want %d", name, got, side)
		}
	}
	if got := DistanceSq(sq.V1, sq.V2); got != 2*side {
		t.Fatalf("diagonal V1-V2 squared = %d, want %d", got, 2*side)
	}
	if got := DistanceSq(sq.V3, sq.V4); got != 2*side {
		t.Fatalf("diagonal V3-V4 squared = %d, want %d", got, 2*side)
	}
}

// Fill random grids until detection fires and validate every returned
// square algebraically.
func TestDetect_RandomizedGeometry(t *testing.T) {
	rng := testutil.SeededRand(99)
	for run := 0; run < 50; run++ {
		g, err := NewGrid(10, rng)
		testutil.AssertNoError(t, err)
		for {
			p, err := g.SampleEmpty()
			if err != nil {
				t.Fatalf("run %d: %v", run, err)
			}
			g.Insert(p)
			sq, ok := Detect(g, p)
			if !ok {
				continue
			}
			if sq.V1 != p {
				t.Fatalf("run %d: V1 = %v, want new point %v", run, sq.V1, p)
			}
			checkSquareGeometry(t, g, sq)
			break
		}
	}
}
