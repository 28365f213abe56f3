// Package maze parses the puzzle's character maps (# wall, . path, S start,
// E end) into a grid.Grid[Tile] and answers walkability queries on it.
//
// Input is contest data and assumed well formed; Parse still reports
// malformed maps with sentinel errors, and MustParse turns them into a panic
// for callers that treat bad input as a bug.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// Sentinel errors for maze parsing.
var (
	ErrEmptyInput      = errors.New("maze: input is empty")
	ErrNonRectangular  = errors.New("maze: rows have differing lengths")
	ErrUnknownTile     = errors.New("maze: unknown tile")
	ErrMissingStart    = errors.New("maze: no start marker")
	ErrMissingEnd      = errors.New("maze: no end marker")
	ErrDuplicateMarker = errors.New("maze: marker appears more than once")
)

// Tile is the kind of a single maze cell.
type Tile uint8

const (
	Wall Tile = iota
	Path
	Start
	End
)

// Rune returns the map character for t.
func (t Tile) Rune() rune {
	switch t {
	case Path:
		return '.'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '#'
	}
}

// Walkable reports whether a reindeer may stand on t.
func (t Tile) Walkable() bool { return t != Wall }

// Maze is a parsed map with its start and end positions.
type Maze struct {
	Grid  *grid.Grid[Tile]
	start grid.Point
	end   grid.Point
}

// Parse reads a rectangular character map. Blank leading and trailing lines
// and carriage returns are ignored.
func Parse(text string) (*Maze, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r", "")), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyInput
	}
	width, height := len(lines[0]), len(lines)
	cells := make([]Tile, 0, width*height)

	var start, end *grid.Point
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(line), width)
		}
		for x, ch := range line {
			t, err := tileOf(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at %d,%d", err, x, y)
			}
			p := grid.Pt(x, y)
			switch t {
			case Start:
				if start != nil {
					return nil, fmt.Errorf("%w: S at %s and %s", ErrDuplicateMarker, *start, p)
				}
				start = &p
			case End:
				if end != nil {
					return nil, fmt.Errorf("%w: E at %s and %s", ErrDuplicateMarker, *end, p)
				}
				end = &p
			}
			cells = append(cells, t)
		}
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if end == nil {
		return nil, ErrMissingEnd
	}

	g, err := grid.New(width, height, cells)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	return &Maze{Grid: g, start: *start, end: *end}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Maze {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

func tileOf(ch rune) (Tile, error) {
	switch ch {
	case '#':
		return Wall, nil
	case '.':
		return Path, nil
	case 'S':
		return Start, nil
	case 'E':
		return End, nil
	}
	return Wall, fmt.Errorf("%w %q", ErrUnknownTile, ch)
}

// Start returns the start position.
func (m *Maze) Start() grid.Point { return m.start }

// End returns the end position.
func (m *Maze) End() grid.Point { return m.end }

// Walkable reports whether p is inside the maze and not a wall.
func (m *Maze) Walkable(p grid.Point) bool {
	t, err := m.Grid.Get(p)
	return err == nil && t.Walkable()
}

// Exits returns the walkable neighbours of p, East, South, West, North.
func (m *Maze) Exits(p grid.Point) []grid.Neighbour {
	all := m.Grid.Neighbours(p)
	out := all[:0]
	for _, n := range all {
		if m.Grid.At(n.Pos).Walkable() {
			out = append(out, n)
		}
	}
	return out
}

// String renders the maze back to its character form.
func (m *Maze) String() string {
	return m.Grid.Render(Tile.Rune)
}
