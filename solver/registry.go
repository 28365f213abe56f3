// Package solver maps (day, part) pairs to puzzle solutions and runs them,
// singly or as a bounded-concurrency batch, with structured logging.
package solver

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strconv"

	"github.com/wrightdylan/advent-of-code-2024/bestpath"
	"github.com/wrightdylan/advent-of-code-2024/memspace"
	"github.com/wrightdylan/advent-of-code-2024/racetrack"
	"github.com/wrightdylan/advent-of-code-2024/towels"
	"github.com/wrightdylan/advent-of-code-2024/warehouse"
)

// ErrUnknownPuzzle indicates no solution is registered for a day and part.
var ErrUnknownPuzzle = errors.New("solver: unknown puzzle")

// Func solves one puzzle part for the given input text.
type Func func(ctx context.Context, input string) (string, error)

// Puzzle is a registered solution.
type Puzzle struct {
	Day   int
	Part  int
	Title string
	Solve Func
}

// String formats p as "day D part P".
func (p Puzzle) String() string {
	return fmt.Sprintf("day %d part %d", p.Day, p.Part)
}

type key struct{ day, part int }

var registry = map[key]Puzzle{}

func register(day, part int, title string, fn Func) {
	registry[key{day, part}] = Puzzle{Day: day, Part: part, Title: title, Solve: fn}
}

func init() {
	register(15, 1, "Warehouse Woes", func(_ context.Context, in string) (string, error) {
		return itoa(warehouse.Simulate(in, false))
	})
	register(15, 2, "Warehouse Woes (wide)", func(_ context.Context, in string) (string, error) {
		return itoa(warehouse.Simulate(in, true))
	})
	register(16, 1, "Reindeer Maze", func(_ context.Context, in string) (string, error) {
		score, err := bestpath.Score(in)
		return strconv.FormatInt(score, 10), err
	})
	register(16, 2, "Reindeer Maze (best seats)", func(_ context.Context, in string) (string, error) {
		return itoa(bestpath.Tiles(in))
	})
	register(18, 1, "RAM Run", func(_ context.Context, in string) (string, error) {
		pts, err := memspace.ParseBytes(in)
		if err != nil {
			return "", err
		}
		return itoa(memspace.MinSteps(pts, memspace.DefaultSize, memspace.DefaultFallen))
	})
	register(18, 2, "RAM Run (first blocker)", func(_ context.Context, in string) (string, error) {
		pts, err := memspace.ParseBytes(in)
		if err != nil {
			return "", err
		}
		p, err := memspace.FirstBlocker(pts, memspace.DefaultSize, memspace.DefaultFallen)
		if err != nil {
			return "", err
		}
		return p.String(), nil
	})
	register(19, 1, "Linen Layout", func(ctx context.Context, in string) (string, error) {
		t, err := tallyTowels(ctx, in)
		return strconv.Itoa(t.Possible), err
	})
	register(19, 2, "Linen Layout (all arrangements)", func(ctx context.Context, in string) (string, error) {
		t, err := tallyTowels(ctx, in)
		return strconv.Itoa(t.Total), err
	})
	register(20, 1, "Race Condition", func(ctx context.Context, in string) (string, error) {
		return itoa(countCheats(ctx, in, racetrack.ShortRadius))
	})
	register(20, 2, "Race Condition (long cheats)", func(ctx context.Context, in string) (string, error) {
		return itoa(countCheats(ctx, in, racetrack.LongRadius))
	})
}

func itoa(n int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func tallyTowels(ctx context.Context, in string) (towels.Tally, error) {
	c, designs, err := towels.Parse(in)
	if err != nil {
		return towels.Tally{}, err
	}
	return towels.CountArrangements(ctx, c, designs, runtime.GOMAXPROCS(0))
}

func countCheats(ctx context.Context, in string, radius int) (int, error) {
	c, err := racetrack.Parse(ctx, in)
	if err != nil {
		return 0, err
	}
	return racetrack.CountCheats(ctx, c, radius, racetrack.DefaultSaving, runtime.GOMAXPROCS(0))
}

// Lookup returns the puzzle registered for day and part.
func Lookup(day, part int) (Puzzle, error) {
	p, ok := registry[key{day, part}]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: day %d part %d", ErrUnknownPuzzle, day, part)
	}
	return p, nil
}

// Available lists every registered puzzle ordered by day, then part.
func Available() []Puzzle {
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Part, b.Part)
	})
	return out
}
