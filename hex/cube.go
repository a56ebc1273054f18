package hex

import "golang.org/x/exp/constraints"

// Cube represents a position on a hex grid using cube coordinates. Valid
// coordinates satisfy q+r+s = 0; conversions and Round always produce valid
// values, and the arithmetic here preserves the invariant but does not
// revalidate it.
type Cube[T constraints.Signed] struct {
	Q T `json:"q"`
	R T `json:"r"`
	S T `json:"s"`
}

// cubeDirections mirrors axialDirections, clockwise from east.
var cubeDirections = [6][3]int{
	{1, 0, -1}, {0, 1, -1}, {-1, 1, 0}, {-1, 0, 1}, {0, -1, 1}, {1, -1, 0},
}

// Add returns the component-wise sum of two coordinates.
func (c Cube[T]) Add(d Cube[T]) Cube[T] {
	return Cube[T]{Q: c.Q + d.Q, R: c.R + d.R, S: c.S + d.S}
}

// Neighbors returns the six adjacent coordinates.
func (c Cube[T]) Neighbors() []Cube[T] {
	out := make([]Cube[T], len(cubeDirections))
	for i, d := range cubeDirections {
		out[i] = Cube[T]{Q: c.Q + T(d[0]), R: c.R + T(d[1]), S: c.S + T(d[2])}
	}
	return out
}

// Distance returns the hex distance between two coordinates: the largest
// absolute component difference.
func (c Cube[T]) Distance(d Cube[T]) T {
	return max(abs(c.Q-d.Q), abs(c.R-d.R), abs(c.S-d.S))
}

// ToAxial converts to axial coordinates by dropping the derived s component.
func (c Cube[T]) ToAxial() Axial[T] {
	return Axial[T]{Q: c.Q, R: c.R}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
