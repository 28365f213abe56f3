// Package memspace finds walks across a square memory region while bytes
// fall into it and corrupt cells, from the top-left corner to the
// bottom-right one.
package memspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wrightdylan/advent-of-code-2024/bfs"
	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// Defaults for the full-size puzzle input.
const (
	DefaultSize   = 71
	DefaultFallen = 1024
)

var (
	// ErrBadCoordinate indicates a line that is not "x,y" with integers.
	ErrBadCoordinate = errors.New("memspace: malformed coordinate")

	// ErrBadSize indicates a non-positive region size or byte count.
	ErrBadSize = errors.New("memspace: size and fallen count must be positive")

	// ErrNoBlocker indicates the exit stays reachable after every byte.
	ErrNoBlocker = errors.New("memspace: exit is never cut off")
)

// Cell is the state of one memory cell.
type Cell uint8

const (
	Safe Cell = iota
	Corrupted
)

func safe(c Cell) bool { return c == Safe }

// ParseBytes reads one "x,y" coordinate per line.
func ParseBytes(input string) ([]grid.Point, error) {
	var out []grid.Point
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		l, r, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadCoordinate, i+1, line)
		}
		x, errX := strconv.Atoi(l)
		y, errY := strconv.Atoi(r)
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadCoordinate, i+1, err)
		}
		out = append(out, grid.Pt(x, y))
	}
	return out, nil
}

// Space returns a size×size region with the given points corrupted.
// Points outside the region are ignored.
func Space(size int, corrupted []grid.Point) *grid.Grid[Cell] {
	g := grid.NewFill(size, size, Safe)
	g.PlaceAt(corrupted, Corrupted)
	return g
}

// shortest returns the shortest walk from the top-left to the bottom-right
// corner, or bfs.ErrUnreachable.
func shortest(g *grid.Grid[Cell]) ([]grid.Point, error) {
	exit := grid.Pt(g.Width()-1, g.Height()-1)
	res, err := bfs.BFS(g, grid.Pt(0, 0), safe, bfs.WithTarget(exit))
	if err != nil {
		return nil, err
	}
	return res.PathTo(exit)
}

// MinSteps returns the fewest steps from corner to corner once the first
// fallen bytes have landed.
func MinSteps(points []grid.Point, size, fallen int) (int, error) {
	if size <= 0 || fallen <= 0 {
		return 0, ErrBadSize
	}
	path, err := shortest(Space(size, points[:min(fallen, len(points))]))
	if err != nil {
		return 0, fmt.Errorf("memspace: %w", err)
	}
	return len(path) - 1, nil
}

// FirstBlocker drops the bytes after the first fallen ones one at a time and
// returns the first that cuts the exit off. The walk is only recomputed when
// a byte lands on the current one.
func FirstBlocker(points []grid.Point, size, fallen int) (grid.Point, error) {
	if size <= 0 || fallen <= 0 {
		return grid.Point{}, ErrBadSize
	}
	fallen = min(fallen, len(points))
	g := Space(size, points[:fallen])

	path, err := shortest(g)
	if err != nil {
		return grid.Point{}, fmt.Errorf("memspace: already blocked: %w", err)
	}
	onPath := pointSet(path)

	for _, p := range points[fallen:] {
		if !g.InBounds(p) {
			continue
		}
		g.Set(p, Corrupted)
		if !onPath[p] {
			continue
		}
		path, err = shortest(g)
		if errors.Is(err, bfs.ErrUnreachable) || errors.Is(err, bfs.ErrStartBlocked) {
			return p, nil
		}
		if err != nil {
			return grid.Point{}, fmt.Errorf("memspace: %w", err)
		}
		onPath = pointSet(path)
	}

	return grid.Point{}, ErrNoBlocker
}

func pointSet(ps []grid.Point) map[grid.Point]bool {
	m := make(map[grid.Point]bool, len(ps))
	for _, p := range ps {
		m[p] = true
	}
	return m
}
