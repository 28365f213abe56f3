package racetrack_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wrightdylan/advent-of-code-2024/maze"
	"github.com/wrightdylan/advent-of-code-2024/racetrack"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sample(t *testing.T) *racetrack.Course {
	t.Helper()
	b, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	c, err := racetrack.Parse(context.Background(), string(b))
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	c := sample(t)
	assert.Equal(t, 84, c.Best)

	_, err := racetrack.Parse(context.Background(), "#S#E#")
	assert.ErrorIs(t, err, racetrack.ErrNoRoute)

	_, err = racetrack.Parse(context.Background(), "#S.#")
	assert.ErrorIs(t, err, maze.ErrMissingEnd)
}

func TestSavings(t *testing.T) {
	c := sample(t)

	got, err := c.Savings(racetrack.ShortRadius)
	require.NoError(t, err)
	want := map[int]int{2: 14, 4: 14, 6: 2, 8: 4, 10: 2, 12: 3, 20: 1, 36: 1, 38: 1, 40: 1, 64: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("savings mismatch (-want +got):\n%s", diff)
	}

	long, err := c.Savings(racetrack.LongRadius)
	require.NoError(t, err)
	assert.Equal(t, 32, long[50])
	assert.Equal(t, 22, long[72])
	assert.Equal(t, 3, long[76])
	assert.Zero(t, long[78])

	_, err = c.Savings(0)
	assert.ErrorIs(t, err, racetrack.ErrBadRadius)
}

func TestCountCheats(t *testing.T) {
	c := sample(t)
	tests := []struct {
		name              string
		radius, minSaving int
		workers           int
		want              int
	}{
		{"short any", racetrack.ShortRadius, 1, 1, 44},
		{"short 20", racetrack.ShortRadius, 20, 3, 5},
		{"short default", racetrack.ShortRadius, racetrack.DefaultSaving, 4, 0},
		{"long 50", racetrack.LongRadius, 50, 4, 285},
		{"long 74", racetrack.LongRadius, 74, 2, 7},
		{"long 76 many workers", racetrack.LongRadius, 76, 1000, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := racetrack.CountCheats(context.Background(), c, tc.radius, tc.minSaving, tc.workers)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountCheats_Errors(t *testing.T) {
	c := sample(t)
	ctx := context.Background()

	_, err := racetrack.CountCheats(ctx, c, 0, 1, 1)
	assert.ErrorIs(t, err, racetrack.ErrBadRadius)

	_, err = racetrack.CountCheats(ctx, c, 2, 0, 1)
	assert.ErrorIs(t, err, racetrack.ErrBadSaving)

	_, err = racetrack.CountCheats(ctx, c, 2, 1, 0)
	assert.ErrorIs(t, err, racetrack.ErrBadWorkers)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = racetrack.CountCheats(cancelled, c, racetrack.LongRadius, 1, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
