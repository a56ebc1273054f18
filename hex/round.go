package hex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Round converts fractional cube coordinates to the nearest valid hex. Each
// component is rounded independently, then the component with the largest
// rounding error is recomputed from the other two so the result satisfies
// q+r+s = 0.
func Round[T constraints.Signed](q, r, s float64) Cube[T] {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	qDiff := math.Abs(rq - q)
	rDiff := math.Abs(rr - r)
	sDiff := math.Abs(rs - s)

	if qDiff > rDiff && qDiff > sDiff {
		rq = -rr - rs
	} else if rDiff > sDiff {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}

	return Cube[T]{Q: T(rq), R: T(rr), S: T(rs)}
}
