package corridor_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrightdylan/advent-of-code-2024/corridor"
	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
	"github.com/wrightdylan/advent-of-code-2024/maze"
)

// straight has a single four-step corridor from S to E.
const straight = `#######
#S...E#
#######`

// plus has one junction at (3,2): E is north of it, two dead ends east and south.
const plus = `#######
###E###
#S....#
###.###
#######`

// ring has two mirror-image routes of equal cost from S to E.
const ring = `#####
#...#
#S#E#
#...#
#####`

// sealed has no route at all.
const sealed = `#####
#S#E#
#####`

const fixture1 = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

func build(t *testing.T, text string, opts ...corridor.Option) *corridor.Graph {
	t.Helper()
	g, err := corridor.Build(maze.MustParse(text), opts...)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestBuild_Errors(t *testing.T) {
	_, err := corridor.Build(nil)
	assert.ErrorIs(t, err, corridor.ErrNilLayout)

	_, err = corridor.Build(maze.MustParse(straight), corridor.WithTurnPenalty(-1))
	assert.ErrorIs(t, err, corridor.ErrBadPenalty)

	_, err = corridor.Build(sameCell{})
	assert.ErrorIs(t, err, corridor.ErrStartIsEnd)
}

// sameCell is a degenerate layout whose start and end coincide.
type sameCell struct{}

func (sameCell) Start() grid.Point                 { return grid.Pt(0, 0) }
func (sameCell) End() grid.Point                   { return grid.Pt(0, 0) }
func (sameCell) Exits(grid.Point) []grid.Neighbour { return nil }

//----------------------------------------------------------------------------//
// Shapes
//----------------------------------------------------------------------------//

// TestBuild_Straight collapses a corridor into one edge.
func TestBuild_Straight(t *testing.T) {
	g := build(t, straight)

	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	e, ok := g.Lookup(corridor.StartNode, corridor.EndNode, direction.East, direction.West)
	require.True(t, ok)
	assert.Equal(t, int64(3), e.Weight)

	want := []grid.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}}
	if diff := cmp.Diff(want, e.Tiles); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%s", diff)
	}
}

// TestBuild_Junction registers the junction as node 2 and drops dead ends.
func TestBuild_Junction(t *testing.T) {
	g := build(t, plus)

	require.Equal(t, 3, g.NodeCount())
	id, ok := g.NodeAt(grid.Pt(3, 2))
	require.True(t, ok)
	assert.Equal(t, 2, id)

	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Len(t, n.Exits, 4)

	require.Equal(t, 2, g.EdgeCount(), "dead ends emit no edges")

	in, ok := g.Lookup(0, 2, direction.East, direction.West)
	require.True(t, ok)
	assert.Equal(t, int64(1), in.Weight)

	out, ok := g.Lookup(2, 1, direction.North, direction.South)
	require.True(t, ok)
	assert.Equal(t, int64(0), out.Weight)
	assert.Equal(t, corridor.EdgeKey{Lo: 1, Hi: 2, LoDir: direction.South, HiDir: direction.North}, out.Key)

	assert.Len(t, g.EdgesWith(2), 2)
	assert.Len(t, g.EdgesWith(0), 1)
	_, ok = g.Node(3)
	assert.False(t, ok)
}

// TestBuild_ParallelEdges keeps both routes between the same node pair.
func TestBuild_ParallelEdges(t *testing.T) {
	g := build(t, ring)

	between := g.EdgesBetween(corridor.EndNode, corridor.StartNode)
	require.Len(t, between, 2)
	for _, e := range between {
		assert.Equal(t, int64(2003), e.Weight, "two bends plus three steps")
		assert.Len(t, e.Tiles, 5)
	}
	assert.NotEqual(t, between[0].Key, between[1].Key)
}

// TestBuild_TurnPenalty shows the penalty is folded into corridor weights.
func TestBuild_TurnPenalty(t *testing.T) {
	g := build(t, ring, corridor.WithTurnPenalty(0))
	for _, e := range g.Edges() {
		assert.Equal(t, int64(len(e.Tiles)-2), e.Weight)
	}
	assert.Equal(t, int64(0), g.TurnPenalty())
}

func TestBuild_Sealed(t *testing.T) {
	g := build(t, sealed)
	assert.Equal(t, 2, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.EdgesWith(corridor.StartNode))
}

// TestBuild_SingleTurn uses a 15×15 maze: twelve steps east, one bend, twelve north.
func TestBuild_SingleTurn(t *testing.T) {
	g := build(t, singleTurn())

	require.Equal(t, 1, g.EdgeCount())
	e := g.Edges()[0]
	assert.Equal(t, int64(11+1001+11), e.Weight)
	assert.Len(t, e.Tiles, 25)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestEdgeSymmetry looks every edge up from both endpoints.
func TestEdgeSymmetry(t *testing.T) {
	for name, text := range map[string]string{"plus": plus, "ring": ring, "fixture1": fixture1} {
		t.Run(name, func(t *testing.T) {
			g := build(t, text)
			require.NotZero(t, g.EdgeCount())
			for _, e := range g.Edges() {
				k := e.Key
				ab, ok := g.Lookup(k.Lo, k.Hi, k.LoDir, k.HiDir)
				require.True(t, ok)
				ba, ok := g.Lookup(k.Hi, k.Lo, k.HiDir, k.LoDir)
				require.True(t, ok)
				assert.Same(t, ab, ba)
				assert.Equal(t, ab.Weight, ba.Weight)
				assert.LessOrEqual(t, k.Lo, k.Hi)
			}
		})
	}
}

// TestFixture_WeightsDecompose checks weight = steps + 1000×bends on the published maze.
func TestFixture_WeightsDecompose(t *testing.T) {
	g := build(t, fixture1)

	start, _ := g.Node(corridor.StartNode)
	end, _ := g.Node(corridor.EndNode)
	assert.Equal(t, grid.Pt(1, 13), start.Pos)
	assert.Equal(t, grid.Pt(13, 1), end.Pos)

	for _, e := range g.Edges() {
		steps := int64(len(e.Tiles) - 2)
		assert.Zero(t, (e.Weight-steps)%corridor.DefaultTurnPenalty, "edge %s", e.Key)
		assert.True(t, e.Has(e.Key.Lo) && e.Has(e.Key.Hi))
	}
}

func TestTraversals(t *testing.T) {
	e := &corridor.Edge{Key: corridor.NormaliseKey(4, 2, direction.North, direction.East)}
	assert.Equal(t, corridor.EdgeKey{Lo: 2, Hi: 4, LoDir: direction.East, HiDir: direction.North}, e.Key)

	tr := e.Traversals(2)
	require.Len(t, tr, 1)
	assert.Equal(t, corridor.Traversal{From: 2, Launch: direction.East, To: 4, Arrive: direction.South}, tr[0])

	assert.Empty(t, e.Traversals(7))

	loop := &corridor.Edge{Key: corridor.NormaliseKey(3, 3, direction.West, direction.North)}
	assert.Equal(t, direction.North, loop.Key.LoDir)
	assert.Len(t, loop.Traversals(3), 2)
}

func singleTurn() string {
	rows := []string{strings.Repeat("#", 15), "#############E#"}
	for i := 0; i < 11; i++ {
		rows = append(rows, "#############.#")
	}
	rows = append(rows, "#S"+strings.Repeat(".", 12)+"#", strings.Repeat("#", 15))
	return strings.Join(rows, "\n")
}
