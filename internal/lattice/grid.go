package lattice

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrGridFull is returned by SampleEmpty when every cell is occupied.
// Reaching it means the caller's stop condition failed; trials are
// expected to finish long before saturation.
var ErrGridFull = errors.New("lattice: grid is fully occupied")

// Grid is an N×N occupancy grid with an insertion-ordered point history.
// Cells are stored flat, indexed y*size+x. A Grid owns its random source
// so runs are reproducible from a seed.
//
// Invariant: a point appears in the history exactly once iff its
// occupancy flag is set.
type Grid struct {
	size   int
	cells  []bool
	points []Point
	rng    *rand.Rand
}

// NewGrid creates an empty grid of the given side length. Size must be at
// least 2; anything smaller cannot contain a square.
func NewGrid(size int, rng *rand.Rand) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("lattice: grid size must be >= 2, got %d", size)
	}
	if rng == nil {
		return nil, errors.New("lattice: nil random source")
	}
	return &Grid{
		size:  size,
		cells: make([]bool, size*size),
		// Sized for the empirical ~1.7N occupancy before a square appears.
		points: make([]Point, 0, 2*size),
		rng:    rng,
	}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// Count returns the number of occupied cells.
func (g *Grid) Count() int { return len(g.points) }

// InBounds reports whether p lies within [0, N) on both axes.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Occupied reports whether the cell at p holds a point. Out-of-bounds
// coordinates are never occupied.
func (g *Grid) Occupied(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.Y*g.size+p.X]
}

// Insert marks p occupied and appends it to the history. Inserting an
// occupied or out-of-bounds point is a no-op; the return value reports
// whether the point was actually added.
func (g *Grid) Insert(p Point) bool {
	if !g.InBounds(p) || g.cells[p.Y*g.size+p.X] {
		return false
	}
	g.cells[p.Y*g.size+p.X] = true
	g.points = append(g.points, p)
	return true
}

// SampleEmpty draws uniform random coordinates, rejecting occupied cells,
// until an empty one is found. Returns ErrGridFull when no empty cell
// exists rather than spinning forever.
func (g *Grid) SampleEmpty() (Point, error) {
	if len(g.points) == g.size*g.size {
		return Point{}, ErrGridFull
	}
	for {
		p := Point{X: g.rng.Intn(g.size), Y: g.rng.Intn(g.size)}
		if !g.cells[p.Y*g.size+p.X] {
			return p, nil
		}
	}
}

// Points returns the occupied points in insertion order. The slice is
// shared with the grid and must not be mutated or retained across Reset.
func (g *Grid) Points() []Point {
	return g.points
}

// Reset clears every occupancy flag and empties the history, keeping the
// allocated storage for the next trial.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = false
	}
	g.points = g.points[:0]
}
