package bfs

import (
	"context"
	"fmt"

	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	grid     *grid.Grid[T]
	passable func(T) bool
	opts     Options
	ctx      context.Context
	queue    []queueItem
	res      *Result
}

// BFS runs breadth-first search over the cells of g for which passable
// returns true, starting from start and moving orthogonally.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any error returned by an OnVisit hook.
func BFS[T comparable](g *grid.Grid[T], start grid.Point, passable func(T) bool, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if passable == nil {
		return nil, fmt.Errorf("%w: passable predicate is nil", ErrOptionViolation)
	}

	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if !passable(g.At(start)) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	n := g.Width() * g.Height()
	w := &walker[T]{
		grid:     g,
		passable: passable,
		opts:     o,
		ctx:      o.Ctx,
		queue:    make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]grid.Point, 0, n),
			Depth:  make(map[grid.Point]int, n),
			Parent: make(map[grid.Point]grid.Point, n),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue records p at depth d with its parent and adds it to the queue.
func (w *walker[T]) enqueue(p grid.Point, d int, parent *grid.Point) {
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.pos, err)
		}
		if w.opts.Target != nil && item.pos == *w.opts.Target {
			return nil
		}
		w.enqueueNeighbours(item)
	}
	return nil
}

// enqueueNeighbours enqueues each unseen passable neighbour of item that the
// filter and MaxDepth allow.
func (w *walker[T]) enqueueNeighbours(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.grid.Neighbours(item.pos) {
		if _, seen := w.res.Depth[nb.Pos]; seen {
			continue
		}
		if !w.passable(w.grid.At(nb.Pos)) || !w.opts.FilterStep(item.pos, nb.Pos) {
			continue
		}
		w.enqueue(nb.Pos, next, &item.pos)
	}
}
