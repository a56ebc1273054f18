package hex

import "golang.org/x/exp/constraints"

// Offset represents a position on a hex grid using odd-r offset coordinates:
// rows run straight and odd rows shift half a hex to the right. Convenient
// for rectangular maps; note that the neighbor offsets depend on row parity.
type Offset[T constraints.Signed] struct {
	// Col is the column within the row.
	Col T `json:"col"`
	// Row is the row.
	Row T `json:"row"`
}

// Neighbor offsets for even and odd rows, clockwise from east.
var (
	offsetEvenDirections = [6][2]int{
		{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1},
	}
	offsetOddDirections = [6][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}, {1, -1},
	}
)

// Add returns the component-wise sum of two coordinates.
//
// Addition is layout arithmetic, not hex translation: summing offset pairs
// across rows of different parity does not correspond to a straight hex
// move. Convert through axial for geometric work.
func (o Offset[T]) Add(p Offset[T]) Offset[T] {
	return Offset[T]{Col: o.Col + p.Col, Row: o.Row + p.Row}
}

// Neighbors returns the six adjacent coordinates, picking the offset table
// for this coordinate's row parity.
func (o Offset[T]) Neighbors() []Offset[T] {
	dirs := &offsetEvenDirections
	if o.Row&1 != 0 {
		dirs = &offsetOddDirections
	}
	out := make([]Offset[T], len(dirs))
	for i, d := range dirs {
		out[i] = Offset[T]{Col: o.Col + T(d[0]), Row: o.Row + T(d[1])}
	}
	return out
}

// Distance returns the hex distance between two coordinates.
func (o Offset[T]) Distance(p Offset[T]) T {
	return o.ToAxial().Distance(p.ToAxial())
}

// ToAxial converts to axial coordinates.
func (o Offset[T]) ToAxial() Axial[T] {
	return Axial[T]{
		Q: o.Col - (o.Row-(o.Row&1))/2,
		R: o.Row,
	}
}

// OffsetFromAxial converts axial coordinates to odd-r offset coordinates.
func OffsetFromAxial[T constraints.Signed](a Axial[T]) Offset[T] {
	return a.ToOffset()
}
