// Package towels counts the ways a striped design can be assembled from a
// catalogue of towel patterns.
//
// Counting is a memoised recursion over design suffixes. The memo is a Cache
// owned by the caller and passed in explicitly, so independent workers each
// keep their own and nothing is shared between goroutines.
package towels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrMissingDesigns indicates no blank line separates towels from designs.
	ErrMissingDesigns = errors.New("towels: no blank line before the design list")

	// ErrNoTowels indicates an empty catalogue.
	ErrNoTowels = errors.New("towels: catalogue is empty")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("towels: workers must be positive")
)

// Catalogue is an immutable set of towel patterns.
type Catalogue struct {
	towels map[string]struct{}
	maxLen int
}

// NewCatalogue builds a catalogue; blank entries are dropped.
func NewCatalogue(towels []string) (*Catalogue, error) {
	c := &Catalogue{towels: make(map[string]struct{}, len(towels))}
	for _, t := range towels {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		c.towels[t] = struct{}{}
		c.maxLen = max(c.maxLen, len(t))
	}
	if len(c.towels) == 0 {
		return nil, ErrNoTowels
	}
	return c, nil
}

// Len returns the number of distinct towels.
func (c *Catalogue) Len() int { return len(c.towels) }

// Parse reads a comma-separated towel line, a blank line, then one design
// per line.
func Parse(input string) (*Catalogue, []string, error) {
	input = strings.ReplaceAll(input, "\r", "")
	head, body, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, nil, ErrMissingDesigns
	}
	c, err := NewCatalogue(strings.Split(head, ","))
	if err != nil {
		return nil, nil, err
	}
	var designs []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			designs = append(designs, line)
		}
	}
	return c, designs, nil
}

// Cache memoises arrangement counts by design suffix. It is only valid for
// the catalogue it was filled against.
type Cache map[string]int

// Arrangements returns how many towel sequences spell design exactly.
func (c *Catalogue) Arrangements(design string, cache Cache) int {
	if design == "" {
		return 1
	}
	if n, ok := cache[design]; ok {
		return n
	}
	n := 0
	for i := 1; i <= min(c.maxLen, len(design)); i++ {
		if _, ok := c.towels[design[:i]]; ok {
			n += c.Arrangements(design[i:], cache)
		}
	}
	cache[design] = n
	return n
}

// Tally aggregates arrangement counts over many designs.
type Tally struct {
	Possible int // designs with at least one arrangement
	Total    int // arrangements summed over all designs
}

// CountArrangements counts every design using up to workers goroutines,
// each with its own Cache. Cancelling ctx stops the workers between designs.
func CountArrangements(ctx context.Context, c *Catalogue, designs []string, workers int) (Tally, error) {
	if workers < 1 {
		return Tally{}, fmt.Errorf("%w: %d", ErrBadWorkers, workers)
	}
	workers = min(workers, max(len(designs), 1))

	counts := make([]int, len(designs))
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			cache := make(Cache)
			for i := w; i < len(designs); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				counts[i] = c.Arrangements(designs[i], cache)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tally{}, err
	}

	var t Tally
	for _, n := range counts {
		if n > 0 {
			t.Possible++
		}
		t.Total += n
	}
	return t, nil
}
