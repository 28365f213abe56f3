package search

import (
	"math"
	"slices"

	"github.com/wrightdylan/advent-of-code-2024/corridor"
)

// Result is the outcome of a successful search. It is read-only.
type Result struct {
	// Distance is the minimal cost from the origin state to the end node.
	Distance int64
	// Ends lists the end states settled at Distance, in pop order. Without
	// WithAllPaths it holds exactly one state.
	Ends []State
	// Settled is the number of states whose distance was finalised.
	Settled int

	origin State
	prev   map[State][]link
}

// Origin returns the initial (Start, Heading) state.
func (r *Result) Origin() State { return r.origin }

// Paths enumerates every recorded minimal route, one per distinct chain of
// predecessor links. The count can grow exponentially with the number of
// tied junctions; use PathCount or Edges when only aggregates are needed.
func (r *Result) Paths() []Path {
	var out []Path
	for _, end := range r.Ends {
		r.unwind(end, []int{end.Node}, nil, func(nodes []int, edges []corridor.EdgeKey) {
			p := Path{Nodes: slices.Clone(nodes), Edges: slices.Clone(edges), Cost: r.Distance}
			slices.Reverse(p.Nodes)
			slices.Reverse(p.Edges)
			out = append(out, p)
		})
	}
	return out
}

// unwind walks predecessor links backward from s, calling emit with the
// reversed node and edge sequences each time a state without predecessors
// (the origin) is reached.
func (r *Result) unwind(s State, nodes []int, edges []corridor.EdgeKey, emit func([]int, []corridor.EdgeKey)) {
	links := r.prev[s]
	if len(links) == 0 {
		emit(nodes, edges)
		return
	}
	for _, l := range links {
		r.unwind(l.from, append(nodes, l.from.Node), append(edges, l.edge), emit)
	}
}

// PathCount returns how many distinct routes Paths would enumerate, without
// building them. Tie counts grow exponentially with the number of tied
// junctions; the count saturates at math.MaxInt.
func (r *Result) PathCount() int {
	memo := make(map[State]int)
	var count func(State) int
	count = func(s State) int {
		if n, ok := memo[s]; ok {
			return n
		}
		links := r.prev[s]
		n := 0
		if len(links) == 0 {
			n = 1
		}
		for _, l := range links {
			n = satAdd(n, count(l.from))
		}
		memo[s] = n
		return n
	}

	total := 0
	for _, end := range r.Ends {
		total = satAdd(total, count(end))
	}
	return total
}

// satAdd adds two non-negative counts, clamping at math.MaxInt.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Edges returns every edge key that lies on at least one recorded minimal
// route, ordered by key.
func (r *Result) Edges() []corridor.EdgeKey {
	seen := make(map[State]bool)
	keys := make(map[corridor.EdgeKey]bool)
	stack := slices.Clone(r.Ends)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		for _, l := range r.prev[s] {
			keys[l.edge] = true
			stack = append(stack, l.from)
		}
	}

	out := make([]corridor.EdgeKey, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	slices.SortFunc(out, corridor.EdgeKey.Compare)
	return out
}
