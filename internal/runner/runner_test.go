package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aoc2024/internal/config"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const (
	dayLength = 1
	dayFails  = 2
	dayPanics = 3
	dayEmpty  = 4
	dayWords  = 5
	daySized  = 6
)

var errBadInput = errors.New("bad input")

func init() {
	puzzle.Register(dayLength, "Length", func(in string) (puzzle.Answers, error) {
		return puzzle.Answers{Part1: len(in), Part2: len(input.Lines(in))}, nil
	})
	puzzle.Register(dayFails, "Fails", func(string) (puzzle.Answers, error) {
		return puzzle.Answers{}, errBadInput
	})
	puzzle.Register(dayPanics, "Panics", func(string) (puzzle.Answers, error) {
		panic("duplicate symbol")
	})
	puzzle.Register(dayEmpty, "Empty", func(string) (puzzle.Answers, error) {
		return puzzle.Answers{}, nil
	})
	puzzle.Register(dayWords, "Words", func(in string) (puzzle.Answers, error) {
		return puzzle.Answers{Part1: strings.Join(strings.Fields(in), "+")}, nil
	})
	puzzle.Register(daySized, "Sized", func(in string) (puzzle.Answers, error) {
		return puzzle.Answers{Part1: "full " + in}, nil
	})
	puzzle.RegisterSample(daySized, func(in string) (puzzle.Answers, error) {
		return puzzle.Answers{Part1: "small " + in}, nil
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(t *testing.T, inputs map[int]string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Inputs.Dir = t.TempDir()
	cfg.Inputs.Pattern = "day%02d.txt"
	cfg.Inputs.SamplePattern = "day%02d_sample.txt"
	for day, text := range inputs {
		require.NoError(t, os.WriteFile(cfg.InputPath(day, false), []byte(text), 0644))
	}
	return cfg
}

func TestRunOrdersResults(t *testing.T) {
	cfg := testConfig(t, map[int]string{
		dayLength: "ab\ncd\nef\n",
		dayWords:  "x y z\n",
	})
	r := New(cfg, zap.NewNop())

	results, err := r.Run(context.Background(), []int{dayWords, dayLength}, false)
	require.NoError(t, err)
	require.Len(t, results, 2)

	got := []puzzle.Answers{results[0].Answers, results[1].Answers}
	want := []puzzle.Answers{{Part1: "x+y+z"}, {Part1: 9, Part2: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Words", results[0].Title)
	assert.Equal(t, filepath.Join(cfg.Inputs.Dir, "day01.txt"), results[1].Input)
}

func TestRunSample(t *testing.T) {
	cfg := testConfig(t, nil)
	require.NoError(t, os.WriteFile(cfg.InputPath(dayWords, true), []byte("a b"), 0644))

	results, err := New(cfg, nil).Run(context.Background(), []int{dayWords}, true)
	require.NoError(t, err)
	assert.Equal(t, "a+b", results[0].Answers.Part1)
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t, map[int]string{
		dayFails:  "x",
		dayPanics: "x",
		dayEmpty:  "",
	})
	r := New(cfg, zap.NewNop())
	ctx := context.Background()

	_, err := r.Run(ctx, []int{dayFails}, false)
	assert.ErrorIs(t, err, errBadInput)
	assert.ErrorContains(t, err, "day 2")

	_, err = r.Run(ctx, []int{dayPanics}, false)
	assert.ErrorContains(t, err, "day 3: solver panicked: duplicate symbol")

	_, err = r.Run(ctx, []int{dayEmpty}, false)
	assert.ErrorIs(t, err, input.ErrEmptyInput)

	_, err = r.Run(ctx, []int{dayLength}, false)
	assert.ErrorContains(t, err, "failed to read input")

	_, err = r.Run(ctx, []int{25}, false)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestSolveTimeout(t *testing.T) {
	r := New(nil, zap.NewNop())
	release := make(chan struct{})
	p := puzzle.Puzzle{Day: 9, Title: "Blocks", Solve: func(string) (puzzle.Answers, error) {
		<-release
		return puzzle.Answers{}, nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Solve(ctx, p, "x")
	close(release)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorContains(t, err, fmt.Sprintf("day %d", p.Day))
}

func TestRunSampleSolver(t *testing.T) {
	cfg := testConfig(t, map[int]string{daySized: "in"})
	require.NoError(t, os.WriteFile(cfg.InputPath(daySized, true), []byte("ex"), 0644))
	r := New(cfg, zap.NewNop())

	results, err := r.Run(context.Background(), []int{daySized}, true)
	require.NoError(t, err)
	assert.Equal(t, "small ex", results[0].Answers.Part1)

	results, err = r.Run(context.Background(), []int{daySized}, false)
	require.NoError(t, err)
	assert.Equal(t, "full in", results[0].Answers.Part1)
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t, map[int]string{dayLength: "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, zap.NewNop()).Run(ctx, []int{dayLength}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunDay(t *testing.T) {
	cfg := testConfig(t, map[int]string{dayLength: "abc\n"})
	res, err := New(cfg, zap.NewNop()).RunDay(context.Background(), dayLength, false)
	require.NoError(t, err)
	assert.Equal(t, dayLength, res.Day)
	assert.Equal(t, 4, res.Answers.Part1)
	assert.Positive(t, res.Elapsed)
}
