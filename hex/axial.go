// Package hex provides coordinate systems for pointy-top hexagonal grids:
// axial, cube, offset (odd-r), and doubled (width) layouts, with conversions
// between them. Formulas follow the Red Blob Games hexagonal grids reference.
package hex

import "golang.org/x/exp/constraints"

// Axial represents a position on a hex grid using axial coordinates.
// It is the hub system: the other layouts convert through it.
type Axial[T constraints.Signed] struct {
	Q T `json:"q"`
	R T `json:"r"`
}

// axialDirections lists the six neighbor offsets, clockwise from east.
var axialDirections = [6][2]int{
	{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
}

// Add returns the component-wise sum of two coordinates.
func (a Axial[T]) Add(b Axial[T]) Axial[T] {
	return Axial[T]{Q: a.Q + b.Q, R: a.R + b.R}
}

// Neighbors returns the six adjacent coordinates.
func (a Axial[T]) Neighbors() []Axial[T] {
	out := make([]Axial[T], len(axialDirections))
	for i, d := range axialDirections {
		out[i] = Axial[T]{Q: a.Q + T(d[0]), R: a.R + T(d[1])}
	}
	return out
}

// Distance returns the hex distance (minimum number of steps) between two
// coordinates.
func (a Axial[T]) Distance(b Axial[T]) T {
	return a.ToCube().Distance(b.ToCube())
}

// ToCube converts to cube coordinates. The third component is derived:
// s = -q - r.
func (a Axial[T]) ToCube() Cube[T] {
	return Cube[T]{Q: a.Q, R: a.R, S: -a.Q - a.R}
}

// ToOffset converts to odd-r offset coordinates.
func (a Axial[T]) ToOffset() Offset[T] {
	return Offset[T]{
		Col: a.Q + (a.R-(a.R&1))/2,
		Row: a.R,
	}
}

// ToDoubled converts to doubled-width coordinates.
func (a Axial[T]) ToDoubled() Doubled[T] {
	return Doubled[T]{Col: 2*a.Q + a.R, Row: a.R}
}

// Area returns every coordinate within the given radius of a, including a
// itself. A radius-r area contains 3r(r+1)+1 coordinates. Returns nil for a
// negative radius.
func (a Axial[T]) Area(radius int) []Axial[T] {
	if radius < 0 {
		return nil
	}
	out := make([]Axial[T], 0, 3*radius*(radius+1)+1)
	for dq := -radius; dq <= radius; dq++ {
		lo := max(-radius, -dq-radius)
		hi := min(radius, -dq+radius)
		for dr := lo; dr <= hi; dr++ {
			out = append(out, Axial[T]{Q: a.Q + T(dq), R: a.R + T(dr)})
		}
	}
	return out
}

// Ring returns the coordinates at exactly the given radius from a, walking
// the hexagon clockwise. Ring(0) is a itself; a radius-r ring contains 6r
// coordinates. Returns nil for a negative radius.
func (a Axial[T]) Ring(radius int) []Axial[T] {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Axial[T]{a}
	}
	out := make([]Axial[T], 0, 6*radius)
	cur := Axial[T]{Q: a.Q + T(radius), R: a.R}
	for side := 0; side < 6; side++ {
		d := axialDirections[(side+2)%6]
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = Axial[T]{Q: cur.Q + T(d[0]), R: cur.R + T(d[1])}
		}
	}
	return out
}

// LineTo returns the coordinates crossed by a straight line from a to b,
// inclusive of both endpoints. Computed by interpolating in cube space and
// rounding each sample to the nearest hex.
func (a Axial[T]) LineTo(b Axial[T]) []Axial[T] {
	ac, bc := a.ToCube(), b.ToCube()
	n := int(ac.Distance(bc))
	if n <= 0 {
		return []Axial[T]{a}
	}
	out := make([]Axial[T], 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q := float64(ac.Q) + (float64(bc.Q)-float64(ac.Q))*t
		r := float64(ac.R) + (float64(bc.R)-float64(ac.R))*t
		s := float64(ac.S) + (float64(bc.S)-float64(ac.S))*t
		out = append(out, Round[T](q, r, s).ToAxial())
	}
	return out
}
