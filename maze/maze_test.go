package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
	"github.com/wrightdylan/advent-of-code-2024/maze"
)

const small = `#####
#S..#
#.#E#
#####`

func TestParse(t *testing.T) {
	m, err := maze.Parse(small + "\n")
	require.NoError(t, err)

	assert.Equal(t, 5, m.Grid.Width())
	assert.Equal(t, 4, m.Grid.Height())
	assert.Equal(t, grid.Pt(1, 1), m.Start())
	assert.Equal(t, grid.Pt(3, 2), m.End())
	assert.Equal(t, maze.Wall, m.Grid.At(grid.Pt(2, 2)))
	assert.Equal(t, small+"\n", m.String())
}

func TestParse_CRLF(t *testing.T) {
	m, err := maze.Parse("#####\r\n#S.E#\r\n#####\r\n")
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(3, 1), m.End())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyInput},
		{"Blank", "\n\n", maze.ErrEmptyInput},
		{"Ragged", "###\n#S.E#\n###", maze.ErrNonRectangular},
		{"Unknown", "####\n#SxE\n####", maze.ErrUnknownTile},
		{"NoStart", "###\n#.E\n###", maze.ErrMissingStart},
		{"NoEnd", "###\n#S.\n###", maze.ErrMissingEnd},
		{"TwoStarts", "####\n#SSE\n####", maze.ErrDuplicateMarker},
		{"TwoEnds", "####\n#SEE\n####", maze.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { maze.MustParse("#?#") })
	assert.NotPanics(t, func() { maze.MustParse(small) })
}

func TestExits(t *testing.T) {
	m := maze.MustParse(small)

	exits := m.Exits(grid.Pt(1, 1))
	require.Len(t, exits, 2)
	assert.Equal(t, grid.Neighbour{Pos: grid.Pt(2, 1), Dir: direction.East}, exits[0])
	assert.Equal(t, grid.Neighbour{Pos: grid.Pt(1, 2), Dir: direction.South}, exits[1])

	// the end tile counts as walkable
	exits = m.Exits(grid.Pt(3, 1))
	require.Len(t, exits, 2)
	assert.Equal(t, direction.South, exits[0].Dir)

	assert.True(t, m.Walkable(grid.Pt(3, 2)))
	assert.False(t, m.Walkable(grid.Pt(0, 0)))
	assert.False(t, m.Walkable(grid.Pt(-1, 0)))
}
