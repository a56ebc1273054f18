package hex

import "golang.org/x/exp/constraints"

// Doubled represents a position on a hex grid using doubled-width
// coordinates: columns count half-steps, so valid coordinates satisfy
// (col+row) even. The layout covers rectangular maps like offset coordinates
// but keeps the neighbor offsets uniform across rows.
type Doubled[T constraints.Signed] struct {
	// Col is the doubled column; it advances by two per full hex step.
	Col T `json:"col"`
	// Row is the row.
	Row T `json:"row"`
}

// doubledDirections lists the six neighbor offsets, clockwise from east.
var doubledDirections = [6][2]int{
	{2, 0}, {1, 1}, {-1, 1}, {-2, 0}, {-1, -1}, {1, -1},
}

// Add returns the component-wise sum of two coordinates. The sum of two
// valid coordinates is valid: even parity is preserved.
func (d Doubled[T]) Add(e Doubled[T]) Doubled[T] {
	return Doubled[T]{Col: d.Col + e.Col, Row: d.Row + e.Row}
}

// Neighbors returns the six adjacent coordinates.
func (d Doubled[T]) Neighbors() []Doubled[T] {
	out := make([]Doubled[T], len(doubledDirections))
	for i, dir := range doubledDirections {
		out[i] = Doubled[T]{Col: d.Col + T(dir[0]), Row: d.Row + T(dir[1])}
	}
	return out
}

// Distance returns the hex distance between two coordinates.
func (d Doubled[T]) Distance(e Doubled[T]) T {
	return d.ToAxial().Distance(e.ToAxial())
}

// ToAxial converts to axial coordinates. The division is exact for valid
// (even-parity) coordinates.
func (d Doubled[T]) ToAxial() Axial[T] {
	return Axial[T]{Q: (d.Col - d.Row) / 2, R: d.Row}
}

// DoubledFromAxial converts axial coordinates to doubled-width coordinates.
func DoubledFromAxial[T constraints.Signed](a Axial[T]) Doubled[T] {
	return a.ToDoubled()
}
