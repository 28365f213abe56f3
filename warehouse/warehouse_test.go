package warehouse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
	"github.com/wrightdylan/advent-of-code-2024/warehouse"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		file string
		wide bool
		want int
	}{
		{"small.txt", false, 2028},
		{"large.txt", false, 10092},
		{"large.txt", true, 9021},
		{"wide.txt", true, 618},
	}
	for _, tc := range tests {
		name := tc.file
		if tc.wide {
			name += "/wide"
		}
		t.Run(name, func(t *testing.T) {
			got, err := warehouse.Simulate(fixture(t, tc.file), tc.wide)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	w, moves, err := warehouse.Parse(fixture(t, "small.txt"))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(2, 2), w.Robot)
	assert.Equal(t, 8, w.Grid.Width())
	assert.Len(t, moves, 15)
	assert.Equal(t, direction.West, moves[0])
	assert.Equal(t, 6, w.Grid.Count(warehouse.Box))

	_, _, err = warehouse.Parse("#@#")
	assert.ErrorIs(t, err, warehouse.ErrMissingMoves)

	_, _, err = warehouse.Parse("#.#\n\n<")
	assert.ErrorIs(t, err, warehouse.ErrRobot)

	_, _, err = warehouse.Parse("#@@\n\n<")
	assert.ErrorIs(t, err, warehouse.ErrRobot)

	_, _, err = warehouse.Parse("#@x\n\n<")
	assert.ErrorIs(t, err, warehouse.ErrUnknownTile)

	_, _, err = warehouse.Parse("#@#\n##\n\n<")
	assert.ErrorIs(t, err, warehouse.ErrNonRectangular)

	_, _, err = warehouse.Parse("#@#\n\n<?")
	assert.ErrorIs(t, err, direction.ErrUnknownArrow)
}

// TestMove_Chain pushes a row of boxes until it meets the wall.
func TestMove_Chain(t *testing.T) {
	w, _, err := warehouse.Parse("#@OO.#\n\n>")
	require.NoError(t, err)

	assert.True(t, w.Move(direction.East))
	assert.Equal(t, "#.@OO#", w.String())
	assert.False(t, w.Move(direction.East), "boxes are against the wall")
	assert.False(t, w.Move(direction.North), "north is off the map")
	assert.True(t, w.Move(direction.West))
	assert.Equal(t, "#@.OO#", w.String())
}

// TestMove_WideStack lifts two staggered wide boxes at once.
func TestMove_WideStack(t *testing.T) {
	w, _, err := warehouse.Parse(`######
#....#
#.[].#
#..[]#
#..@.#
######

^`)
	require.NoError(t, err)

	assert.True(t, w.Move(direction.North))
	assert.Equal(t, `######
#.[].#
#..[]#
#..@.#
#....#
######`, w.String())
	assert.False(t, w.Move(direction.North), "top box is against the wall")
	assert.Equal(t, 100*1+2+100*2+3, w.GPS())
}

func TestString_RowsOnly(t *testing.T) {
	w, _, err := warehouse.Parse("####\n#@O#\n####\n\n>")
	require.NoError(t, err)
	assert.Equal(t, "####\n#@O#\n####", w.String())
}

func TestWiden(t *testing.T) {
	w, _, err := warehouse.Parse("#.O@#\n\n<")
	require.NoError(t, err)

	wide := w.Widen()
	assert.Equal(t, "##..[]@.##", wide.String())
	assert.Equal(t, "#.O@#", w.String(), "original is untouched")
	assert.Equal(t, 2, wide.Run([]direction.Ortho{direction.West, direction.West, direction.West}))
	assert.Equal(t, "##[]@...##", wide.String())
}
