package hex

import (
	"slices"
	"testing"
)

func TestAxialNeighbors(t *testing.T) {
	tests := []struct {
		name string
		c    Axial[int]
		want []Axial[int]
	}{
		{
			name: "center",
			c:    Axial[int]{Q: 0, R: 0},
			want: []Axial[int]{{1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}},
		},
		{
			name: "off center",
			c:    Axial[int]{Q: 2, R: -3},
			want: []Axial[int]{{3, -3}, {2, -2}, {1, -2}, {1, -3}, {2, -4}, {3, -4}},
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

func TestAxialAdd(t *testing.T) {
	a := Axial[int]{Q: 2, R: -3}
	b := Axial[int]{Q: -1, R: 1}
	if got := a.Add(b); got != (Axial[int]{Q: 1, R: -2}) {
		t.Errorf("Add = %v, want {1 -2}", got)
	}
}

func TestAxialToCube(t *testing.T) {
	tests := []struct {
		in   Axial[int]
		want Cube[int]
	}{
		{Axial[int]{0, 0}, Cube[int]{0, 0, 0}},

		{Axial[int]{1, -1}, Cube[int]{1, -1, 0}},
		{Axial[int]{1, 0}, Cube[int]{1, 0, -1}},
		{Axial[int]{0, 1}, Cube[int]{0, 1, -1}},
		{Axial[int]{-1, 1}, Cube[int]{-1, 1, 0}},
		{Axial[int]{-1, 0}, Cube[int]{-1, 0, 1}},
		{Axial[int]{0, -1}, Cube[int]{0, -1, 1}},

		{Axial[int]{2, -2}, Cube[int]{2, -2, 0}},
		{Axial[int]{2, -1}, Cube[int]{2, -1, -1}},
		{Axial[int]{2, 0}, Cube[int]{2, 0, -2}},
		{Axial[int]{1, 1}, Cube[int]{1, 1, -2}},
		{Axial[int]{0, 2}, Cube[int]{0, 2, -2}},
		{Axial[int]{-1, 2}, Cube[int]{-1, 2, -1}},
		{Axial[int]{-2, 2}, Cube[int]{-2, 2, 0}},
		{Axial[int]{-2, 1}, Cube[int]{-2, 1, 1}},
		{Axial[int]{-2, 0}, Cube[int]{-2, 0, 2}},
		{Axial[int]{-1, -1}, Cube[int]{-1, -1, 2}},
		{Axial[int]{0, -2}, Cube[int]{0, -2, 2}},
		{Axial[int]{1, -2}, Cube[int]{1, -2, 1}},
	}
	for _, tt := range tests {
		if got := tt.in.ToCube(); got != tt.want {
			t.Errorf("ToCube(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if back := tt.want.ToAxial(); back != tt.in {
			t.Errorf("ToAxial(%v) = %v, want %v", tt.want, back, tt.in)
		}
	}
}

func TestAxialDistance(t *testing.T) {
	tests := []struct {
		a, b Axial[int]
		want int
	}{
		{Axial[int]{0, 0}, Axial[int]{0, 0}, 0},
		{Axial[int]{2, -3}, Axial[int]{2, -3}, 0},
		{Axial[int]{0, 0}, Axial[int]{1, -1}, 1},
		{Axial[int]{0, 0}, Axial[int]{2, -2}, 2},
		{Axial[int]{0, 0}, Axial[int]{2, 0}, 2},
		{Axial[int]{-2, 1}, Axial[int]{1, -1}, 3},
		{Axial[int]{-2, 2}, Axial[int]{2, -2}, 4},
		{Axial[int]{3, -1}, Axial[int]{-1, 2}, 4},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestAxialArea(t *testing.T) {
	center := Axial[int]{Q: 0, R: 0}

	if got := center.Area(-1); got != nil {
		t.Errorf("Area(-1) = %v, want nil", got)
	}
	if got := center.Area(0); !slices.Equal(got, []Axial[int]{center}) {
		t.Errorf("Area(0) = %v, want just the center", got)
	}

	for _, radius := range []int{1, 2, 3} {
		got := center.Area(radius)
		want := 3*radius*(radius+1) + 1
		if len(got) != want {
			t.Errorf("Area(%d) has %d coordinates, want %d", radius, len(got), want)
		}
		for _, c := range got {
			if center.Distance(c) > radius {
				t.Errorf("Area(%d) contains %v at distance %d", radius, c, center.Distance(c))
			}
		}
	}

	// An off-center area is the centered one translated.
	off := Axial[int]{Q: 4, R: -1}
	for _, c := range off.Area(2) {
		if off.Distance(c) > 2 {
			t.Errorf("Area(2) around %v contains %v at distance %d", off, c, off.Distance(c))
		}
	}
}

func TestAxialRing(t *testing.T) {
	center := Axial[int]{Q: 0, R: 0}

	if got := center.Ring(-1); got != nil {
		t.Errorf("Ring(-1) = %v, want nil", got)
	}
	if got := center.Ring(0); !slices.Equal(got, []Axial[int]{center}) {
		t.Errorf("Ring(0) = %v, want just the center", got)
	}

	ring1 := center.Ring(1)
	if len(ring1) != 6 {
		t.Fatalf("Ring(1) has %d coordinates, want 6", len(ring1))
	}
	for _, n := range center.Neighbors() {
		if !slices.Contains(ring1, n) {
			t.Errorf("Ring(1) missing neighbor %v", n)
		}
	}

	// Ring(r) is exactly Area(r) minus Area(r-1).
	ring2 := center.Ring(2)
	if len(ring2) != 12 {
		t.Fatalf("Ring(2) has %d coordinates, want 12", len(ring2))
	}
	inner := center.Area(1)
	for _, c := range ring2 {
		if center.Distance(c) != 2 {
			t.Errorf("Ring(2) contains %v at distance %d", c, center.Distance(c))
		}
		if slices.Contains(inner, c) {
			t.Errorf("Ring(2) contains inner coordinate %v", c)
		}
	}
	for _, c := range center.Area(2) {
		if center.Distance(c) == 2 && !slices.Contains(ring2, c) {
			t.Errorf("Ring(2) missing %v", c)
		}
	}
}

func TestAxialLineTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Axial[int]
		want []Axial[int]
	}{
		{
			name: "self",
			a:    Axial[int]{Q: 1, R: 1},
			b:    Axial[int]{Q: 1, R: 1},
			want: []Axial[int]{{1, 1}},
		},
		{
			name: "along q",
			a:    Axial[int]{Q: 0, R: 0},
			b:    Axial[int]{Q: 3, R: 0},
			want: []Axial[int]{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "along r",
			a:    Axial[int]{Q: 0, R: 0},
			b:    Axial[int]{Q: 0, R: -2},
			want: []Axial[int]{{0, 0}, {0, -1}, {0, -2}},
		},
		{
			name: "diagonal",
			a:    Axial[int]{Q: 0, R: 0},
			b:    Axial[int]{Q: 2, R: -1},
			want: []Axial[int]{{0, 0}, {1, -1}, {2, -1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.LineTo(tt.b); !slices.Equal(got, tt.want) {
				t.Errorf("LineTo(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	// Longer lines: every step lands on an adjacent hex.
	a := Axial[int]{Q: -2, R: 1}
	b := Axial[int]{Q: 1, R: 2}
	line := a.LineTo(b)
	if len(line) != int(a.Distance(b))+1 {
		t.Fatalf("LineTo(%v, %v) has %d coordinates, want %d", a, b, len(line), a.Distance(b)+1)
	}
	if line[0] != a || line[len(line)-1] != b {
		t.Errorf("LineTo(%v, %v) endpoints = %v, %v", a, b, line[0], line[len(line)-1])
	}
	for i := 1; i < len(line); i++ {
		if line[i-1].Distance(line[i]) != 1 {
			t.Errorf("LineTo step %v -> %v is not adjacent", line[i-1], line[i])
		}
	}
}

func TestAxialToOffsetToDoubled(t *testing.T) {
	// Spot conversions; the offset and doubled suites cover the round trips.
	if got := (Axial[int]{Q: 2, R: 3}).ToOffset(); got != (Offset[int]{Col: 3, Row: 3}) {
		t.Errorf("ToOffset({2 3}) = %v, want {3 3}", got)
	}
	if got := (Axial[int]{Q: 2, R: 3}).ToDoubled(); got != (Doubled[int]{Col: 7, Row: 3}) {
		t.Errorf("ToDoubled({2 3}) = %v, want {7 3}", got)
	}
}
