package core

import "testing"

func TestBoundsOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		a, b         Bounds
		xGive, yGive float64
		expected     bool
	}{
		{
			name:     "overlapping boxes",
			a:        Bounds{X: 0, Y: 0, W: 10, H: 10},
			b:        Bounds{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Bounds{X: 0, Y: 0, W: 10, H: 10},
			b:        Bounds{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        Bounds{X: 0, Y: 0, W: 10, H: 10},
			b:        Bounds{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Bounds{X: 0, Y: 0, W: 20, H: 20},
			b:        Bounds{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "horizontal give removes shallow overlap",
			a:        Bounds{X: 0, Y: 0, W: 66, H: 87},
			b:        Bounds{X: 56, Y: 0, W: 96, H: 76},
			xGive:    15,
			expected: false,
		},
		{
			name:     "horizontal give keeps deep overlap",
			a:        Bounds{X: 0, Y: 0, W: 66, H: 87},
			b:        Bounds{X: 40, Y: 0, W: 96, H: 76},
			xGive:    15,
			expected: true,
		},
		{
			name:     "vertical give separates adjacent lanes",
			a:        Bounds{X: 0, Y: 111, W: 66, H: 87},
			b:        Bounds{X: 0, Y: 142 + 83, W: 96, H: 76},
			yGive:    30,
			expected: false,
		},
		{
			name:     "vertical give keeps same lane",
			a:        Bounds{X: 0, Y: 111, W: 66, H: 87},
			b:        Bounds{X: 0, Y: 142, W: 96, H: 76},
			xGive:    15,
			yGive:    30,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b, tc.xGive, tc.yGive); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a, tc.xGive, tc.yGive); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsEdges(t *testing.T) {
	b := Bounds{X: 5, Y: 10, W: 20, H: 16}

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", b.Bottom())
	}
	if cx, cy := b.Center(); cx != 15 || cy != 18 {
		t.Errorf("Center() = (%v, %v), expected (15, 18)", cx, cy)
	}
	if b.Empty() {
		t.Error("20x16 box reported empty")
	}
	for _, e := range []Bounds{{X: 5, Y: 5}, {W: 10}, {H: 10}, {W: -1, H: 4}} {
		if !e.Empty() {
			t.Errorf("%+v should be empty", e)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{2, 0, 4, 2},
		{-1, 0, 4, 0},
		{5, 0, 4, 4},
		{0, 0, 5, 0},
		{5, 0, 5, 5},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
