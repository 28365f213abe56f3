// Package bestpath scores reindeer mazes: the cheapest route from S to E
// when every step costs 1 and every quarter turn costs 1000, and how many
// tiles lie on at least one such route.
//
// It wires maze parsing, corridor compression and the direction-aware search
// together; each stage is available separately in its own package.
package bestpath

import (
	"fmt"

	"github.com/wrightdylan/advent-of-code-2024/corridor"
	"github.com/wrightdylan/advent-of-code-2024/grid"
	"github.com/wrightdylan/advent-of-code-2024/maze"
	"github.com/wrightdylan/advent-of-code-2024/search"
)

// Report summarises one analysed maze.
type Report struct {
	Score int64 // minimal route cost
	Tiles int   // distinct cells on any minimal route
	Paths int   // number of distinct minimal routes
	Nodes int   // nodes in the compressed graph
	Edges int   // edges in the compressed graph
}

// Options configures Analyse.
type Options struct {
	TurnPenalty int64
}

// Option is a functional option for Analyse.
type Option func(*Options)

// WithTurnPenalty sets the cost of one quarter turn, both inside corridors
// and at junctions. Default corridor.DefaultTurnPenalty.
func WithTurnPenalty(n int64) Option {
	return func(o *Options) {
		o.TurnPenalty = n
	}
}

// Analyse parses input, compresses it and searches every minimal route.
// An unreachable end is reported as search.ErrNoPath.
func Analyse(input string, opts ...Option) (*Report, error) {
	cfg := Options{TurnPenalty: corridor.DefaultTurnPenalty}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := maze.Parse(input)
	if err != nil {
		return nil, err
	}
	g, err := corridor.Build(m, corridor.WithTurnPenalty(cfg.TurnPenalty))
	if err != nil {
		return nil, fmt.Errorf("bestpath: %w", err)
	}
	res, err := search.ShortestPaths(g, search.WithAllPaths())
	if err != nil {
		return nil, fmt.Errorf("bestpath: %w", err)
	}

	return &Report{
		Score: res.Distance,
		Tiles: TilesOnBestPaths(g, res),
		Paths: res.PathCount(),
		Nodes: g.NodeCount(),
		Edges: g.EdgeCount(),
	}, nil
}

// Score returns the minimal route cost through input.
func Score(input string) (int64, error) {
	r, err := Analyse(input)
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

// Tiles returns how many cells of input lie on at least one minimal route.
func Tiles(input string) (int, error) {
	r, err := Analyse(input)
	if err != nil {
		return 0, err
	}
	return r.Tiles, nil
}

// TilesOnBestPaths counts the distinct cells covered by the edges on any
// recorded minimal route of res. The origin cell is always counted.
func TilesOnBestPaths(g *corridor.Graph, res *search.Result) int {
	seen := make(map[grid.Point]struct{})
	if n, ok := g.Node(res.Origin().Node); ok {
		seen[n.Pos] = struct{}{}
	}
	for _, k := range res.Edges() {
		e, ok := g.Edge(k)
		if !ok {
			continue
		}
		for _, p := range e.Tiles {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}
