// Package runner loads puzzle inputs, runs the registered solvers and times
// them.
package runner

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"aoc2024/internal/config"
	"aoc2024/internal/input"
	"aoc2024/internal/logging"
	"aoc2024/internal/puzzle"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one solved day.
type Result struct {
	Day     int
	Title   string
	Input   string
	Answers puzzle.Answers
	Elapsed time.Duration
}

// Runner executes solvers according to the configuration.
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a Runner. A nil logger discards logs.
func New(cfg *config.Config, logger *zap.Logger) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Runner{cfg: cfg, logger: logging.For(logger, logging.CategoryRunner)}
}

// Run solves days concurrently, at most Execution.Parallelism at a time, and
// returns the results in the order requested. No days means every registered
// day. The first failure cancels the days not yet started.
func (r *Runner) Run(ctx context.Context, days []int, sample bool) ([]Result, error) {
	if len(days) == 0 {
		days = puzzle.Days()
	}
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID))
	log.Debug("run started", zap.Ints("days", days), zap.Bool("sample", sample))

	results := make([]Result, len(days))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, r.cfg.Execution.Parallelism))
	for i, day := range days {
		eg.Go(func() error {
			res, err := r.runDay(egCtx, log, day, sample)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))
		return nil, err
	}
	log.Debug("run finished")
	return results, nil
}

// RunDay loads the input of one day and solves it.
func (r *Runner) RunDay(ctx context.Context, day int, sample bool) (Result, error) {
	return r.runDay(ctx, r.logger, day, sample)
}

func (r *Runner) runDay(ctx context.Context, log *zap.Logger, day int, sample bool) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	p, err := puzzle.Get(day)
	if err != nil {
		return Result{}, err
	}
	if sample {
		p = p.ForSample()
	}
	path := r.cfg.InputPath(day, sample)
	in, err := input.Load(path)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", day, err)
	}

	res, err := r.Solve(ctx, p, in)
	if err != nil {
		return Result{}, err
	}
	res.Input = path
	if res.Answers.Debug != "" {
		logging.For(r.logger, logging.CategoryPuzzle).Debug("solver output",
			zap.Int("day", day),
			zap.String("debug", res.Answers.Debug))
	}
	log.Info("solved",
		zap.Int("day", day),
		zap.String("title", p.Title),
		zap.Duration("elapsed", res.Elapsed.Round(time.Microsecond)))
	return res, nil
}

// Solve runs p on text. A solver panic is returned as an error naming the
// day. If ctx ends first Solve returns its error; the solver keeps running
// in the background until it finishes.
func (r *Runner) Solve(ctx context.Context, p puzzle.Puzzle, text string) (Result, error) {
	type outcome struct {
		answers puzzle.Answers
		err     error
		elapsed time.Duration
	}
	done := make(chan outcome, 1)
	go func() {
		var o outcome
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Debug("solver panicked", zap.Int("day", p.Day), zap.ByteString("stack", debug.Stack()))
				o.err = fmt.Errorf("day %d: solver panicked: %v", p.Day, rec)
			}
			o.elapsed = time.Since(start)
			done <- o
		}()
		o.answers, o.err = p.Solve(text)
		if o.err != nil {
			o.err = fmt.Errorf("day %d: %w", p.Day, o.err)
		}
	}()

	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("day %d: %w", p.Day, ctx.Err())
	case o := <-done:
		if o.err != nil {
			return Result{}, o.err
		}
		return Result{Day: p.Day, Title: p.Title, Answers: o.answers, Elapsed: o.elapsed}, nil
	}
}
