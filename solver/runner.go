package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrBadWorkers indicates a non-positive worker count.
var ErrBadWorkers = errors.New("solver: workers must be positive")

// Job is one puzzle part to solve against an input.
type Job struct {
	Day    int
	Part   int
	Input  string
	Source string // where Input came from, for logs
}

// Outcome is the result of running a Job. Err is set instead of Answer
// when the puzzle is unknown or its solution failed.
type Outcome struct {
	Job     Job
	Answer  string
	Elapsed time.Duration
	Err     error
}

// Runner solves jobs. The zero value is not usable; call NewRunner.
type Runner struct {
	log     *zap.Logger
	workers int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Default zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithWorkers bounds how many jobs a batch runs at once. Default GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{log: zap.NewNop(), workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, r.workers)
	}
	return r, nil
}

// Solve runs a single job.
func (r *Runner) Solve(ctx context.Context, job Job) Outcome {
	return r.solve(ctx, r.log, job)
}

func (r *Runner) solve(ctx context.Context, log *zap.Logger, job Job) Outcome {
	log = log.With(zap.Int("day", job.Day), zap.Int("part", job.Part), zap.String("source", job.Source))
	out := Outcome{Job: job}

	p, err := Lookup(job.Day, job.Part)
	if err != nil {
		out.Err = err
		log.Warn("puzzle not registered", zap.Error(err))
		return out
	}

	log.Debug("solving", zap.String("title", p.Title), zap.Int("bytes", len(job.Input)))
	start := time.Now()
	answer, err := p.Solve(ctx, job.Input)
	out.Elapsed = time.Since(start)
	if err != nil {
		out.Err = fmt.Errorf("%s: %w", p, err)
		log.Warn("solve failed", zap.Duration("elapsed", out.Elapsed), zap.Error(err))
		return out
	}
	out.Answer = answer
	log.Info("solved", zap.String("answer", answer), zap.Duration("elapsed", out.Elapsed))

	return out
}

// Batch runs jobs with at most the configured number in flight and returns
// the batch id and one Outcome per job, in job order. A failing job does not
// stop the others; only cancellation of ctx is returned as an error.
func (r *Runner) Batch(ctx context.Context, jobs []Job) (string, []Outcome, error) {
	id := uuid.New().String()
	log := r.log.With(zap.String("batch", id))
	log.Info("batch started", zap.Int("jobs", len(jobs)), zap.Int("workers", r.workers))

	outcomes := make([]Outcome, len(jobs))
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Job: job, Err: err}
				return nil
			}
			outcomes[i] = r.solve(ctx, log, job)
			return nil
		})
	}
	// jobs report failures in their Outcome; Wait only joins
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn("batch cancelled", zap.Error(err))
		return id, nil, err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	log.Info("batch finished", zap.Int("failed", failed))

	return id, outcomes, nil
}
