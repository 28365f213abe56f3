package corridor

import (
	"cmp"
	"slices"

	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// Graph is the compressed node/edge view of a layout.
// It exclusively owns its nodes and edges and is read-only after Build.
type Graph struct {
	nodes       []*Node
	byPos       map[grid.Point]int
	edges       map[EdgeKey]*Edge
	incident    map[int][]*Edge
	turnPenalty int64
}

func newGraph(turnPenalty int64) *Graph {
	return &Graph{
		byPos:       make(map[grid.Point]int),
		edges:       make(map[EdgeKey]*Edge),
		incident:    make(map[int][]*Edge),
		turnPenalty: turnPenalty,
	}
}

// addNode registers a new node at pos and returns its handle.
func (g *Graph) addNode(pos grid.Point, exits []grid.Neighbour) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, &Node{ID: id, Pos: pos, Exits: exits})
	g.byPos[pos] = id
	return id
}

// nodeFor returns the handle registered at pos, creating it on first sight.
func (g *Graph) nodeFor(pos grid.Point, exits []grid.Neighbour) int {
	if id, ok := g.byPos[pos]; ok {
		return id
	}
	return g.addNode(pos, exits)
}

// finish builds the sorted incidence lists.
func (g *Graph) finish() {
	for _, e := range g.sortedEdges() {
		g.incident[e.Key.Lo] = append(g.incident[e.Key.Lo], e)
		if e.Key.Hi != e.Key.Lo {
			g.incident[e.Key.Hi] = append(g.incident[e.Key.Hi], e)
		}
	}
}

func (g *Graph) sortedEdges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Edge) int { return a.Key.Compare(b.Key) })
	return out
}

// TurnPenalty returns the bend cost the graph was built with.
func (g *Graph) TurnPenalty() int64 { return g.turnPenalty }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with handle id.
func (g *Graph) Node(id int) (*Node, bool) {
	if id < 0 || id >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// NodeAt returns the handle registered at pos.
func (g *Graph) NodeAt(pos grid.Point) (int, bool) {
	id, ok := g.byPos[pos]
	return id, ok
}

// Nodes returns every node ordered by handle.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// Edge returns the edge stored under key.
func (g *Graph) Edge(key EdgeKey) (*Edge, bool) {
	e, ok := g.edges[key]
	return e, ok
}

// Lookup finds the edge leaving a heading da and b heading db. The result is
// the same whichever endpoint is named first.
func (g *Graph) Lookup(a, b int, da, db direction.Ortho) (*Edge, bool) {
	return g.Edge(NormaliseKey(a, b, da, db))
}

// Edges returns every edge ordered by key.
func (g *Graph) Edges() []*Edge {
	return g.sortedEdges()
}

// EdgesWith returns the edges incident to node, ordered by key.
func (g *Graph) EdgesWith(node int) []*Edge {
	return g.incident[node]
}

// EdgesBetween returns every edge joining a and b, lightest first.
func (g *Graph) EdgesBetween(a, b int) []*Edge {
	lo, hi := min(a, b), max(a, b)
	var out []*Edge
	for _, e := range g.incident[lo] {
		if e.Key.Lo == lo && e.Key.Hi == hi {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(x, y *Edge) int { return cmp.Compare(x.Weight, y.Weight) })
	return out
}
