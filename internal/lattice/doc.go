// Package lattice owns the grid model of the square-trial engine.
//
// Responsibilities: bounded occupancy state, rejection sampling of empty
// cells, and incremental square detection against the placed point set.
// Key types: Grid, Point, Square.
//
// No statistics or reporting code is allowed in this package.
package lattice
