// Package warehouse simulates a robot pushing boxes around a walled floor.
//
// Boxes are either one cell wide (Box) or two (BoxLeft + BoxRight). A push
// moves every box in contact with the one in front of the robot; it succeeds
// only if none of them would hit a wall or leave the grid.
package warehouse

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// Sentinel errors for Parse.
var (
	ErrMissingMoves   = errors.New("warehouse: no blank line before the move list")
	ErrNonRectangular = errors.New("warehouse: rows have differing lengths")
	ErrUnknownTile    = errors.New("warehouse: unknown tile")
	ErrRobot          = errors.New("warehouse: map must hold exactly one robot")
)

// Tile is the content of one floor cell. The robot is tracked separately
// and always stands on Floor.
type Tile uint8

const (
	Floor Tile = iota
	Wall
	Box
	BoxLeft
	BoxRight
)

// Rune returns the map character for t.
func (t Tile) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Box:
		return 'O'
	case BoxLeft:
		return '['
	case BoxRight:
		return ']'
	default:
		return '.'
	}
}

// Warehouse is a floor plan with the robot's position.
type Warehouse struct {
	Grid  *grid.Grid[Tile]
	Robot grid.Point
}

// Parse reads a map, a blank line, and a list of arrow moves that may span
// several lines.
func Parse(input string) (*Warehouse, []direction.Ortho, error) {
	input = strings.ReplaceAll(input, "\r", "")
	plan, moveText, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, nil, ErrMissingMoves
	}

	lines := strings.Split(plan, "\n")
	width := len(lines[0])
	cells := make([]Tile, 0, width*len(lines))
	var robot *grid.Point
	for y, line := range lines {
		if len(line) != width {
			return nil, nil, fmt.Errorf("%w: row %d", ErrNonRectangular, y)
		}
		for x, ch := range line {
			t := Floor
			switch ch {
			case '.':
			case '#':
				t = Wall
			case 'O':
				t = Box
			case '[':
				t = BoxLeft
			case ']':
				t = BoxRight
			case '@':
				if robot != nil {
					return nil, nil, fmt.Errorf("%w: second robot at %d,%d", ErrRobot, x, y)
				}
				robot = &grid.Point{X: x, Y: y}
			default:
				return nil, nil, fmt.Errorf("%w %q at %d,%d", ErrUnknownTile, ch, x, y)
			}
			cells = append(cells, t)
		}
	}
	if robot == nil {
		return nil, nil, ErrRobot
	}

	g, err := grid.New(width, len(lines), cells)
	if err != nil {
		return nil, nil, fmt.Errorf("warehouse: %w", err)
	}

	var moves []direction.Ortho
	for _, ch := range moveText {
		if ch == '\n' {
			continue
		}
		d, err := direction.ParseArrow(ch)
		if err != nil {
			return nil, nil, fmt.Errorf("warehouse: %w", err)
		}
		moves = append(moves, d)
	}

	return &Warehouse{Grid: g, Robot: *robot}, moves, nil
}

// Widen returns a copy with every cell doubled horizontally. Single boxes
// become BoxLeft/BoxRight pairs.
func (w *Warehouse) Widen() *Warehouse {
	cells := make([]Tile, 0, 2*w.Grid.Width()*w.Grid.Height())
	w.Grid.Each(func(_ grid.Point, t Tile) {
		switch t {
		case Box:
			cells = append(cells, BoxLeft, BoxRight)
		default:
			cells = append(cells, t, t)
		}
	})
	g, err := grid.New(2*w.Grid.Width(), w.Grid.Height(), cells)
	if err != nil {
		panic(err)
	}
	return &Warehouse{Grid: g, Robot: grid.Pt(2*w.Robot.X, w.Robot.Y)}
}

// Move tries to step the robot toward d, pushing any boxes in the way, and
// reports whether it moved.
func (w *Warehouse) Move(d direction.Ortho) bool {
	next := w.Robot.Step(d)
	t, err := w.Grid.Get(next)
	if err != nil || t == Wall {
		return false
	}
	if t == Floor {
		w.Robot = next
		return true
	}

	moving, ok := w.collect(next, d)
	if !ok {
		return false
	}

	// farthest first, so each box slides onto floor
	dx, dy := d.Delta()
	slices.SortFunc(moving, func(a, b grid.Point) int {
		return cmp.Compare(b.X*dx+b.Y*dy, a.X*dx+a.Y*dy)
	})
	for _, p := range moving {
		if err := w.Grid.Slide(p, d, Floor); err != nil {
			panic(fmt.Sprintf("warehouse: verified push failed: %v", err))
		}
	}
	w.Robot = next

	return true
}

// collect gathers every box cell that a push into first toward d would move.
// It returns false if any of them is blocked.
func (w *Warehouse) collect(first grid.Point, d direction.Ortho) ([]grid.Point, bool) {
	var moving []grid.Point
	seen := make(map[grid.Point]bool)
	queue := []grid.Point{first}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[p] {
			continue
		}
		seen[p] = true

		t, err := w.Grid.Get(p)
		if err != nil {
			return nil, false
		}
		switch t {
		case Floor:
			continue
		case Wall:
			return nil, false
		case BoxLeft:
			queue = append(queue, p.Step(direction.East))
		case BoxRight:
			queue = append(queue, p.Step(direction.West))
		}
		moving = append(moving, p)
		queue = append(queue, p.Step(d))
	}

	return moving, true
}

// Run applies moves in order and returns how many of them moved the robot.
func (w *Warehouse) Run(moves []direction.Ortho) int {
	n := 0
	for _, d := range moves {
		if w.Move(d) {
			n++
		}
	}
	return n
}

// GPS sums 100×row + column over every box, measured at its left edge.
func (w *Warehouse) GPS() int {
	sum := 0
	w.Grid.Each(func(p grid.Point, t Tile) {
		if t == Box || t == BoxLeft {
			sum += 100*p.Y + p.X
		}
	})
	return sum
}

// String renders the floor plan with the robot as '@'.
func (w *Warehouse) String() string {
	rows := strings.Split(strings.TrimSuffix(w.Grid.Render(Tile.Rune), "\n"), "\n")
	row := []rune(rows[w.Robot.Y])
	row[w.Robot.X] = '@'
	rows[w.Robot.Y] = string(row)
	return strings.Join(rows, "\n")
}

// Simulate parses input, optionally widens it, runs every move and returns
// the final GPS sum.
func Simulate(input string, wide bool) (int, error) {
	w, moves, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if wide {
		w = w.Widen()
	}
	w.Run(moves)
	return w.GPS(), nil
}
