package grid

import (
	"errors"
	"fmt"

	"github.com/wrightdylan/advent-of-code-2024/direction"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with zero width or zero height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrDimensionMismatch indicates len(cells) differs from width*height.
	ErrDimensionMismatch = errors.New("grid: cell count does not match dimensions")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrCollision indicates a Slide where neither cell holds the empty value.
	ErrCollision = errors.New("grid: collision")
)

// Point is a signed grid coordinate. X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Step moves p one cell toward d.
func (p Point) Step(d direction.Ortho) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// StepN moves p n cells toward d.
func (p Point) StepN(d direction.Ortho, n int) Point {
	dx, dy := d.Delta()
	return p.Add(dx*n, dy*n)
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "x,y", the puzzle's own notation.
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Neighbour is an adjacent position and the heading taken to reach it.
type Neighbour struct {
	Pos Point
	Dir direction.Ortho
}

// neighbourOrder fixes the scan order of Neighbours.
var neighbourOrder = [4]direction.Ortho{direction.East, direction.South, direction.West, direction.North}

// Grid is a dense Width×Height array of cells in row-major order.
// Dimensions never change after construction.
type Grid[T comparable] struct {
	width, height int
	cells         []T
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
