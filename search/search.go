package search

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/wrightdylan/advent-of-code-2024/corridor"
)

// ShortestPaths runs the direction-aware search over g from (Start, Heading)
// to any state at End.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Every option must be valid (ErrOptionViolation).
//  3. Start and End must be handles of g (ErrNodeNotFound).
//  4. No edge in g may have negative weight (ErrNegativeCost).
//
// If End is never reached the error is ErrNoPath and the Result is nil.
func ShortestPaths(g *corridor.Graph, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Policy == nil {
		cfg.Policy = TurnPenalty(g.TurnPenalty())
	}

	// 3) Validate endpoints
	if _, ok := g.Node(cfg.Start); !ok {
		return nil, fmt.Errorf("%w: start %d", ErrNodeNotFound, cfg.Start)
	}
	if _, ok := g.Node(cfg.End); !ok {
		return nil, fmt.Errorf("%w: end %d", ErrNodeNotFound, cfg.End)
	}

	// 4) Pre-scan all edges to detect negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%d", ErrNegativeCost, e.Key, e.Weight)
		}
	}

	// 5) Run
	states := 4 * g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[State]int64, states),
		prev:    make(map[State][]link, states),
		visited: make(map[State]bool, states),
		pq:      make(statePQ, 0, states),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if len(r.ends) == 0 {
		return nil, ErrNoPath
	}

	return &Result{
		Distance: r.best,
		Ends:     r.ends,
		Settled:  len(r.visited),
		origin:   r.origin,
		prev:     r.prev,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *corridor.Graph
	options Options
	origin  State
	dist    map[State]int64  // best known distance per state
	prev    map[State][]link // predecessor links per state
	visited map[State]bool   // states whose distance is final
	pq      statePQ

	best int64   // distance of the first end state popped
	ends []State // end states settled at best
}

// init seeds the heap with the origin state at distance zero.
func (r *runner) init() {
	r.origin = State{Node: r.options.Start, Dir: r.options.Heading}
	r.dist[r.origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: r.origin, dist: 0})
}

// process pops states in (distance, node, direction) order until the heap is
// exhausted, MaxDistance is exceeded, or every end state tied at the best
// distance has been settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		// 1) Pop the smallest item; skip stale entries.
		item := heap.Pop(&r.pq).(*stateItem)
		u, d := item.state, item.dist
		if r.visited[u] {
			continue
		}

		// 2) Stop past the cap, or past the best end distance.
		if d > cfg.MaxDistance {
			break
		}
		if len(r.ends) > 0 && d > r.best {
			break
		}
		r.visited[u] = true

		// 3) End states are recorded, never expanded.
		if u.Node == cfg.End {
			if len(r.ends) == 0 {
				r.best = d
			}
			r.ends = append(r.ends, u)
			if !cfg.AllPaths {
				break
			}
			continue
		}

		// 4) Relax every traversal leaving u.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every edge incident to u.Node, in both directions for a
// self-loop, except the one launching straight back the way u was entered.
func (r *runner) relax(u State, d int64) error {
	cfg := r.options
	back := u.Dir.Flip()
	for _, e := range r.g.EdgesWith(u.Node) {
		for _, tr := range e.Traversals(u.Node) {
			if tr.Launch == back {
				continue
			}
			turn := cfg.Policy(u.Dir, tr.Launch)
			if turn < 0 {
				return fmt.Errorf("%w: policy(%s, %s)=%d", ErrNegativeCost, u.Dir, tr.Launch, turn)
			}

			nd := d + cfg.StepCost + e.Weight + turn
			if nd > cfg.MaxDistance {
				continue
			}

			v := State{Node: tr.To, Dir: tr.Arrive}
			l := link{from: u, edge: e.Key}
			cur, seen := r.dist[v]
			switch {
			case !seen || nd < cur:
				r.dist[v] = nd
				r.prev[v] = []link{l}
				heap.Push(&r.pq, &stateItem{state: v, dist: nd})
			case nd == cur && cfg.AllPaths:
				r.prev[v] = append(r.prev[v], l)
			}
		}
	}

	return nil
}

// stateItem is a heap entry.
type stateItem struct {
	state State
	dist  int64
}

// statePQ is a min-heap ordered by distance, then node handle, then
// direction. Stale entries are skipped on pop.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c < 0
	}
	if a.state.Node != b.state.Node {
		return a.state.Node < b.state.Node
	}
	return a.state.Dir < b.state.Dir
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
