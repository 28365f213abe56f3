// Package racetrack counts the shortcuts ("cheats") available on a race
// course: a racer may leave the track, pass through walls for up to radius
// steps, and rejoin the track further along.
//
// Every cheat is scored from two breadth-first distance maps, one from the
// start and one from the end, so the course need not be a single corridor:
//
//	saving = best - (fromStart[a] + |a-b| + toEnd[b])
//
// CountCheats splits the track cells across workers with errgroup; the
// distance maps are read-only once the Course is built.
package racetrack

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wrightdylan/advent-of-code-2024/bfs"
	"github.com/wrightdylan/advent-of-code-2024/grid"
	"github.com/wrightdylan/advent-of-code-2024/maze"
)

const (
	// ShortRadius is the cheat length of the first race.
	ShortRadius = 2

	// LongRadius is the cheat length of the updated rules.
	LongRadius = 20

	// DefaultSaving is the smallest saving worth reporting.
	DefaultSaving = 100
)

var (
	// ErrNoRoute indicates the end cannot be reached without cheating.
	ErrNoRoute = errors.New("racetrack: end is not reachable from start")

	// ErrBadRadius indicates a non-positive cheat radius.
	ErrBadRadius = errors.New("racetrack: cheat radius must be positive")

	// ErrBadSaving indicates a non-positive minimum saving.
	ErrBadSaving = errors.New("racetrack: minimum saving must be positive")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("racetrack: workers must be positive")
)

// Course is a parsed track with its distance maps.
type Course struct {
	Maze *maze.Maze
	Best int // honest race time, start to end

	track     []grid.Point // cells reachable from start, in BFS order
	fromStart map[grid.Point]int
	toEnd     map[grid.Point]int
}

// Parse reads a course map (# wall, . track, S start, E end).
func Parse(ctx context.Context, input string) (*Course, error) {
	m, err := maze.Parse(input)
	if err != nil {
		return nil, err
	}
	return NewCourse(ctx, m)
}

// NewCourse measures m from both ends.
func NewCourse(ctx context.Context, m *maze.Maze) (*Course, error) {
	fwd, err := bfs.BFS(m.Grid, m.Start(), maze.Tile.Walkable, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	best, ok := fwd.Reached(m.End())
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoRoute, m.Start(), m.End())
	}
	back, err := bfs.BFS(m.Grid, m.End(), maze.Tile.Walkable, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &Course{
		Maze:      m,
		Best:      best,
		track:     fwd.Order,
		fromStart: fwd.Depth,
		toEnd:     back.Depth,
	}, nil
}

// cheatsFrom calls fn with the saving of every cheat that leaves the track
// at a and rejoins it within radius steps, when that saving is positive.
func (c *Course) cheatsFrom(a grid.Point, radius int, fn func(saving int)) {
	base := c.fromStart[a]
	for dy := -radius; dy <= radius; dy++ {
		span := radius - abs(dy)
		for dx := -span; dx <= span; dx++ {
			rest, ok := c.toEnd[a.Add(dx, dy)]
			if !ok {
				continue
			}
			if saving := c.Best - (base + abs(dx) + abs(dy) + rest); saving > 0 {
				fn(saving)
			}
		}
	}
}

// Savings returns how many cheats of at most radius steps save each amount
// of time.
func (c *Course) Savings(radius int) (map[int]int, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	hist := make(map[int]int)
	for _, a := range c.track {
		c.cheatsFrom(a, radius, func(s int) { hist[s]++ })
	}
	return hist, nil
}

// CountCheats counts cheats of at most radius steps that save at least
// minSaving, using up to workers goroutines.
func CountCheats(ctx context.Context, c *Course, radius, minSaving, workers int) (int, error) {
	switch {
	case radius < 1:
		return 0, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	case minSaving < 1:
		return 0, fmt.Errorf("%w: %d", ErrBadSaving, minSaving)
	case workers < 1:
		return 0, fmt.Errorf("%w: %d", ErrBadWorkers, workers)
	}
	workers = min(workers, max(len(c.track), 1))

	counts := make([]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(c.track); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.cheatsFrom(c.track[i], radius, func(s int) {
					if s >= minSaving {
						counts[w]++
					}
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
