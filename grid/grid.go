package grid

import (
	"fmt"
	"strings"

	"github.com/wrightdylan/advent-of-code-2024/direction"
)

// New wraps cells as a width×height grid without copying.
// Returns ErrEmptyGrid if either dimension is not positive and
// ErrDimensionMismatch if len(cells) != width*height.
func New[T comparable](width, height int, cells []T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %d×%d", ErrDimensionMismatch, len(cells), width, height)
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// NewFill allocates a width×height grid with every cell set to fill.
// Panics if either dimension is not positive.
func NewFill[T comparable](width, height int, fill T) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic(ErrEmptyGrid)
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p lies within [0,Width)×[0,Height).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to its row-major offset: y*Width + x.
func (g *Grid[T]) index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major offset back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// At returns the cell at p. Panics if p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	g.mustContain(p)
	return g.cells[g.index(p)]
}

// Set overwrites the cell at p. Panics if p is out of bounds.
func (g *Grid[T]) Set(p Point, v T) {
	g.mustContain(p)
	g.cells[g.index(p)] = v
}

// Get returns the cell at p, or ErrOutOfBounds.
func (g *Grid[T]) Get(p Point) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return g.cells[g.index(p)], nil
}

// Peek returns the cell one step from `from` toward d without mutating the grid.
func (g *Grid[T]) Peek(from Point, d direction.Ortho) (T, error) {
	return g.Get(from.Step(d))
}

// PeekOffset returns the cell at from+(dx,dy).
func (g *Grid[T]) PeekOffset(from Point, dx, dy int) (T, error) {
	return g.Get(from.Add(dx, dy))
}

// Slide swaps the cell at `from` with its neighbour toward d, provided at least
// one of the two holds the empty value.
// Returns ErrOutOfBounds if either cell is off-grid and ErrCollision if
// neither cell is empty; the grid is unchanged on error.
func (g *Grid[T]) Slide(from Point, d direction.Ortho, empty T) error {
	to := from.Step(d)
	if !g.InBounds(from) || !g.InBounds(to) {
		return fmt.Errorf("%w: slide %s toward %s", ErrOutOfBounds, from, d)
	}
	fi, ti := g.index(from), g.index(to)
	if g.cells[fi] != empty && g.cells[ti] != empty {
		return fmt.Errorf("%w: slide %s toward %s", ErrCollision, from, d)
	}
	g.cells[fi], g.cells[ti] = g.cells[ti], g.cells[fi]

	return nil
}

// Neighbours returns the in-bounds orthogonal neighbours of p, each tagged
// with the heading from p, in the order East, South, West, North.
func (g *Grid[T]) Neighbours(p Point) []Neighbour {
	out := make([]Neighbour, 0, len(neighbourOrder))
	for _, d := range neighbourOrder {
		q := p.Step(d)
		if g.InBounds(q) {
			out = append(out, Neighbour{Pos: q, Dir: d})
		}
	}

	return out
}

// PlaceAt writes v to every point. Points outside the grid are skipped.
func (g *Grid[T]) PlaceAt(points []Point, v T) {
	for _, p := range points {
		if g.InBounds(p) {
			g.cells[g.index(p)] = v
		}
	}
}

// Find returns the first position, in row-major order, holding v.
func (g *Grid[T]) Find(v T) (Point, bool) {
	for i, c := range g.cells {
		if c == v {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// Count returns how many cells hold v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for i, c := range g.cells {
		fn(g.Coordinate(i), c)
	}
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Render draws the grid one row per line using glyph for each cell.
func (g *Grid[T]) Render(glyph func(T) rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			sb.WriteRune(glyph(c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// mustContain panics when p is outside the grid.
func (g *Grid[T]) mustContain(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: index %s out of range [0,%d)×[0,%d)", p, g.width, g.height))
	}
}
