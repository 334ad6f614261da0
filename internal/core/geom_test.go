package core

import "testing"

func TestWrapToroidal(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		size     int
		expected Position
	}{
		{
			name:     "inside grid unchanged",
			pos:      Position{X: 3, Y: 7},
			size:     10,
			expected: Position{X: 3, Y: 7},
		},
		{
			name:     "past right edge wraps to left",
			pos:      Position{X: 10, Y: 5},
			size:     10,
			expected: Position{X: 0, Y: 5},
		},
		{
			name:     "past bottom edge wraps to top",
			pos:      Position{X: 5, Y: 10},
			size:     10,
			expected: Position{X: 5, Y: 0},
		},
		{
			name:     "negative x wraps to right edge",
			pos:      Position{X: -1, Y: 5},
			size:     10,
			expected: Position{X: 9, Y: 5},
		},
		{
			name:     "negative y wraps to bottom edge",
			pos:      Position{X: 5, Y: -1},
			size:     10,
			expected: Position{X: 5, Y: 9},
		},
		{
			name:     "corner wraps both axes",
			pos:      Position{X: -1, Y: 20},
			size:     20,
			expected: Position{X: 19, Y: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.pos.Wrap(tc.size)
			if result != tc.expected {
				t.Errorf("Wrap(%d) = %v, expected %v", tc.size, result, tc.expected)
			}
		})
	}
}

func TestWrapAlwaysInBounds(t *testing.T) {
	const size = 20
	for x := -2 * size; x <= 2*size; x++ {
		for y := -2 * size; y <= 2*size; y++ {
			w := Position{X: x, Y: y}.Wrap(size)
			if !w.In(size) {
				t.Fatalf("Wrap produced out-of-bounds position %v for (%d,%d)", w, x, y)
			}
		}
	}
}

func TestAddFollowsDirection(t *testing.T) {
	p := Position{X: 5, Y: 5}

	if got := p.Add(DirUp); got != (Position{X: 5, Y: 4}) {
		t.Errorf("Add(DirUp) = %v", got)
	}
	if got := p.Add(DirDown); got != (Position{X: 5, Y: 6}) {
		t.Errorf("Add(DirDown) = %v", got)
	}
	if got := p.Add(DirLeft); got != (Position{X: 4, Y: 5}) {
		t.Errorf("Add(DirLeft) = %v", got)
	}
	if got := p.Add(DirRight); got != (Position{X: 6, Y: 5}) {
		t.Errorf("Add(DirRight) = %v", got)
	}
}

func TestOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite of opposite of %v should be itself", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v should not be its own opposite", d)
		}
	}
}

func TestRandDeterminism(t *testing.T) {
	r1 := NewRand(42)
	r2 := NewRand(42)

	for i := 0; i < 100; i++ {
		if r1.Intn(1000) != r2.Intn(1000) {
			t.Fatal("Same seed should produce identical sequences")
		}
	}
}
