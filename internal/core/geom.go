// Package core provides fundamental types and utilities shared by all game
// engines. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Position represents a grid cell coordinate.
type Position struct {
	X, Y int
}

// Direction represents a movement direction on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset for this direction.
// Y grows downward, matching screen coordinates.
func (d Direction) Delta() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	case DirRight:
		return Position{X: 1, Y: 0}
	default:
		return Position{}
	}
}

// Opposite returns the reverse of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Directions lists all four directions in a stable order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Add returns p shifted one cell in the given direction, unbounded.
func (p Position) Add(d Direction) Position {
	delta := d.Delta()
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Wrap maps p onto a size×size toroidal grid. Negative coordinates wrap to
// the far edge, so the result always satisfies 0 <= x,y < size.
func (p Position) Wrap(size int) Position {
	return Position{
		X: ((p.X % size) + size) % size,
		Y: ((p.Y % size) + size) % size,
	}
}

// In reports whether p lies within a size×size grid.
func (p Position) In(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
