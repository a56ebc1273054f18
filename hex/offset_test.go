package hex

import (
	"slices"
	"testing"
)

func TestOffsetNeighbors(t *testing.T) {
	tests := []struct {
		name string
		c    Offset[int]
		want []Offset[int]
	}{
		{
			name: "even row",
			c:    Offset[int]{Col: 0, Row: 0},
			want: []Offset[int]{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}},
		},
		{
			name: "odd row",
			c:    Offset[int]{Col: 2, Row: 1},
			want: []Offset[int]{{3, 1}, {3, 2}, {2, 2}, {1, 1}, {2, 0}, {3, 0}},
		},
		{
			name: "negative odd row",
			c:    Offset[int]{Col: 0, Row: -3},
			want: []Offset[int]{{1, -3}, {1, -2}, {0, -2}, {-1, -3}, {0, -4}, {1, -4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Neighbors()
			if len(got) != 6 {
				t.Fatalf("Neighbors(%v) returned %d coordinates, want 6", tt.c, len(got))
			}
			for _, w := range tt.want {
				if !slices.Contains(got, w) {
					t.Errorf("Neighbors(%v) missing %v", tt.c, w)
				}
			}
		})
	}
}

// Neighbors must agree with axial adjacency whatever the row parity.
func TestOffsetNeighborsMatchAxial(t *testing.T) {
	coords := []Offset[int]{
		{0, 0}, {3, 2}, {2, 1}, {-1, 1}, {0, -3}, {-2, -2}, {5, -1},
	}
	for _, c := range coords {
		for _, n := range c.Neighbors() {
			if d := c.ToAxial().Distance(n.ToAxial()); d != 1 {
				t.Errorf("neighbor %v of %v is at hex distance %d", n, c, d)
			}
		}
	}
}

func TestOffsetAxialRoundTrip(t *testing.T) {
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			a := Axial[int]{Q: q, R: r}
			if back := a.ToOffset().ToAxial(); back != a {
				t.Errorf("axial %v -> offset %v -> axial %v", a, a.ToOffset(), back)
			}
		}
	}
	for col := -3; col <= 3; col++ {
		for row := -3; row <= 3; row++ {
			o := Offset[int]{Col: col, Row: row}
			if back := OffsetFromAxial(o.ToAxial()); back != o {
				t.Errorf("offset %v -> axial %v -> offset %v", o, o.ToAxial(), back)
			}
		}
	}
}

func TestOffsetDistance(t *testing.T) {
	tests := []struct {
		a, b Offset[int]
		want int
	}{
		{Offset[int]{0, 0}, Offset[int]{0, 0}, 0},
		{Offset[int]{0, 0}, Offset[int]{1, 0}, 1},
		{Offset[int]{0, 0}, Offset[int]{0, 1}, 1},
		{Offset[int]{0, 0}, Offset[int]{2, 1}, 3},
		{Offset[int]{1, 1}, Offset[int]{1, 1}, 0},
		{Offset[int]{-2, 0}, Offset[int]{2, 0}, 4},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
