// Package square provides coordinates for uniform square grids with
// 8-connected adjacency (sides and corners).
package square

import "golang.org/x/exp/constraints"

// Coord represents a position on a square grid.
type Coord[T constraints.Signed] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// directions lists the eight neighbor offsets: four sides, four corners.
var directions = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Add returns the component-wise sum of two coordinates.
func (c Coord[T]) Add(d Coord[T]) Coord[T] {
	return Coord[T]{X: c.X + d.X, Y: c.Y + d.Y}
}

// Neighbors returns the eight adjacent coordinates.
func (c Coord[T]) Neighbors() []Coord[T] {
	out := make([]Coord[T], len(directions))
	for i, d := range directions {
		out[i] = Coord[T]{X: c.X + T(d[0]), Y: c.Y + T(d[1])}
	}
	return out
}

// Distance returns the Chebyshev distance between two coordinates: the
// minimum number of 8-connected steps.
func (c Coord[T]) Distance(d Coord[T]) T {
	return max(abs(c.X-d.X), abs(c.Y-d.Y))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
