package hex

import (
	"slices"
	"testing"
)

func TestDoubledNeighbors(t *testing.T) {
	tests := []struct {
		name string
		c    Doubled[int]
		want []Doubled[int]
	}{
		{
			name: "center",
			c:    Doubled[int]{Col: 0, Row: 0},
			want: []Doubled[int]{{2, 0}, {1, 1}, {-1, 1}, {-2, 0}, {-1, -1}, {1, -1}},
		},
		{
			name: "off center",
			c:    Doubled[int]{Col: 3, Row: 1},
			want: []Doubled[int]{{5, 1}, {4, 2}, {2, 2}, {1, 1}, {2, 0}, {4, 0}},
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
			for _, n := range got {
				if (n.Col+n.Row)%2 != 0 {
					t.Errorf("neighbor %v of %v breaks the even-parity invariant", n, tt.c)
				}
			}
		})
	}
}

func TestDoubledAxialRoundTrip(t *testing.T) {
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			a := Axial[int]{Q: q, R: r}
			if back := a.ToDoubled().ToAxial(); back != a {
				t.Errorf("axial %v -> doubled %v -> axial %v", a, a.ToDoubled(), back)
			}
		}
	}
	for col := -4; col <= 4; col++ {
		for row := -4; row <= 4; row++ {
			if (col+row)%2 != 0 {
				continue
			}
			d := Doubled[int]{Col: col, Row: row}
			if back := DoubledFromAxial(d.ToAxial()); back != d {
				t.Errorf("doubled %v -> axial %v -> doubled %v", d, d.ToAxial(), back)
			}
		}
	}
}

func TestDoubledDistance(t *testing.T) {
	tests := []struct {
		a, b Doubled[int]
		want int
	}{
		{Doubled[int]{0, 0}, Doubled[int]{0, 0}, 0},
		{Doubled[int]{0, 0}, Doubled[int]{2, 0}, 1},
		{Doubled[int]{0, 0}, Doubled[int]{1, 1}, 1},
		{Doubled[int]{0, 0}, Doubled[int]{4, 0}, 2},
		{Doubled[int]{0, 0}, Doubled[int]{3, 1}, 2},
		{Doubled[int]{-2, 0}, Doubled[int]{2, 2}, 3},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
