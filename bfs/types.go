package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start is outside the grid")

	// ErrStartBlocked is returned when the start cell is not passable.
	ErrStartBlocked = errors.New("bfs: start cell is not passable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a cell the search never reached.
	ErrUnreachable = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	OnEnqueue func(p grid.Point, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p grid.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Target, if set, stops the search as soon as that cell is visited.
	Target *grid.Point

	// FilterStep can veto individual moves by returning false.
	FilterStep func(from, to grid.Point) bool

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit, no target and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(grid.Point, int) {},
		OnVisit:    func(grid.Point, int) error { return nil },
		FilterStep: func(_, _ grid.Point) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p grid.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTarget stops the search once p has been visited.
func WithTarget(p grid.Point) Option {
	return func(o *Options) {
		o.Target = &p
	}
}

// WithFilterStep skips moves for which fn returns false.
func WithFilterStep(fn func(from, to grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterStep = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: steps from the start to each reached cell.
//   - Parent: predecessor of each reached cell in the BFS tree.
type Result struct {
	Order  []grid.Point
	Depth  map[grid.Point]int
	Parent map[grid.Point]grid.Point
}

// Reached reports whether p was reached, and at what depth.
func (r *Result) Reached(p grid.Point) (int, bool) {
	d, ok := r.Depth[p]
	return d, ok
}

// PathTo reconstructs the path from the start cell to dest, both included.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, dest)
	}
	path := []grid.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
