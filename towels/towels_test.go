package towels_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wrightdylan/advent-of-code-2024/towels"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sample(t *testing.T) (*towels.Catalogue, []string) {
	t.Helper()
	b, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	c, designs, err := towels.Parse(string(b))
	require.NoError(t, err)
	return c, designs
}

func TestParse(t *testing.T) {
	c, designs := sample(t)
	assert.Equal(t, 8, c.Len())
	assert.Len(t, designs, 8)
	assert.Equal(t, "brwrr", designs[0])

	_, _, err := towels.Parse("r, wr")
	assert.ErrorIs(t, err, towels.ErrMissingDesigns)

	_, _, err = towels.Parse(" , \n\nrr")
	assert.ErrorIs(t, err, towels.ErrNoTowels)
}

func TestArrangements(t *testing.T) {
	c, _ := sample(t)
	tests := map[string]int{
		"brwrr":  2,
		"bggr":   1,
		"gbbr":   4,
		"rrbgbr": 6,
		"ubwu":   0,
		"bwurrg": 1,
		"brgr":   2,
		"bbrgwb": 0,
	}
	cache := make(towels.Cache)
	for design, want := range tests {
		assert.Equal(t, want, c.Arrangements(design, cache), design)
	}
	assert.Equal(t, 1, c.Arrangements("", cache))
}

func TestCountArrangements(t *testing.T) {
	c, designs := sample(t)
	for _, workers := range []int{1, 3, 8, 100} {
		got, err := towels.CountArrangements(context.Background(), c, designs, workers)
		require.NoError(t, err)
		assert.Equal(t, towels.Tally{Possible: 6, Total: 16}, got, "workers=%d", workers)
	}

	got, err := towels.CountArrangements(context.Background(), c, nil, 4)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = towels.CountArrangements(context.Background(), c, designs, 0)
	assert.ErrorIs(t, err, towels.ErrBadWorkers)
}

func TestCountArrangements_Cancelled(t *testing.T) {
	c, designs := sample(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := towels.CountArrangements(ctx, c, designs, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
