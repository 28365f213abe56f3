package corridor

import (
	"slices"

	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// walk is one pending step of a corridor walk.
type walk struct {
	pos    grid.Point
	dir    direction.Ortho // heading taken to reach pos
	weight int64           // accumulated since leaving origin
	tiles  []grid.Point    // cells covered so far, origin first
	origin int             // node the corridor started from
	launch direction.Ortho // heading the corridor left origin in
}

// builder holds the mutable state of a single Build call.
type builder struct {
	layout  Layout
	penalty int64
	g       *Graph
	visited map[grid.Point]bool
	stack   []walk
}

// Build walks layout from its start cell and returns the compressed graph.
// The graph is immutable once returned.
//
// Steps:
//  1. Register start as node 0 and end as node 1; mark both visited.
//  2. Push a walk for every exit of the start cell.
//  3. Pop walks until the stack is empty, closing corridors at the end cell,
//     the start cell and junctions, and advancing through corridor cells.
//  4. Sort every node's incident edge list for deterministic iteration.
func Build(layout Layout, opts ...Option) (*Graph, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	start, end := layout.Start(), layout.End()
	if start == end {
		return nil, ErrStartIsEnd
	}

	b := &builder{
		layout:  layout,
		penalty: cfg.TurnPenalty,
		g:       newGraph(cfg.TurnPenalty),
		visited: make(map[grid.Point]bool),
	}

	// 1) reserved handles
	startExits := layout.Exits(start)
	b.g.addNode(start, startExits)
	b.g.addNode(end, layout.Exits(end))
	b.visited[start] = true
	b.visited[end] = true

	// 2) seed one walk per start exit
	for _, n := range startExits {
		b.push(walk{pos: n.Pos, dir: n.Dir, tiles: []grid.Point{start}, origin: StartNode, launch: n.Dir})
	}

	// 3) main loop
	for len(b.stack) > 0 {
		w := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.step(w, start, end)
	}

	// 4) deterministic incidence
	b.g.finish()

	return b.g, nil
}

func (b *builder) push(w walk) { b.stack = append(b.stack, w) }

// step classifies one popped cell and acts on it.
func (b *builder) step(w walk, start, end grid.Point) {
	switch w.pos {
	case end:
		b.close(w, EndNode, true)
		return
	case start:
		b.close(w, StartNode, false)
		return
	}

	exits := b.layout.Exits(w.pos)
	b.visited[w.pos] = true

	if len(exits) > 2 {
		b.junction(w, exits, end)
		return
	}

	// corridor cell: advance into the forward exit, if any
	tiles := append(w.tiles, w.pos)
	forward := 0
	for _, n := range exits {
		if n.Dir == w.dir.Flip() {
			continue
		}
		cost := int64(1)
		if n.Dir != w.dir {
			cost += b.penalty
		}
		t := tiles
		if forward > 0 {
			t = slices.Clone(tiles)
		}
		forward++
		b.push(walk{pos: n.Pos, dir: n.Dir, weight: w.weight + cost, tiles: t, origin: w.origin, launch: w.launch})
	}
}

// junction closes the corridor at a branching cell and branches into every
// exit not yet walked. The end cell is always branched into, since it is
// marked visited up front but is never walked from.
func (b *builder) junction(w walk, exits []grid.Neighbour, end grid.Point) {
	id := b.g.nodeFor(w.pos, exits)
	b.close(w, id, false)

	for _, n := range exits {
		if b.visited[n.Pos] && n.Pos != end {
			continue
		}
		b.push(walk{pos: n.Pos, dir: n.Dir, tiles: []grid.Point{w.pos}, origin: id, launch: n.Dir})
	}
}

// close records the corridor that ends at node. An existing edge with the
// same key is kept unless overwrite is set.
func (b *builder) close(w walk, node int, overwrite bool) {
	key := NormaliseKey(w.origin, node, w.launch, w.dir.Flip())
	if _, ok := b.g.edges[key]; ok && !overwrite {
		return
	}
	tiles := make([]grid.Point, 0, len(w.tiles)+1)
	tiles = append(tiles, w.tiles...)
	tiles = append(tiles, w.pos)
	b.g.edges[key] = &Edge{Key: key, Weight: w.weight, Tiles: tiles}
}
