package runner

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func next(t *testing.T, w *Watcher) WatchResult {
	t.Helper()
	select {
	case res, ok := <-w.Results():
		require.True(t, ok, "results closed")
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a run")
		return WatchResult{}
	}
}

func TestWatcherRerunsOnChange(t *testing.T) {
	cfg := testConfig(t, map[int]string{dayWords: "a b"})
	w, err := New(cfg, zap.NewNop()).NewWatcher(dayWords, false)
	require.NoError(t, err)
	w.debounceDur = 20 * time.Millisecond
	w.tick = 10 * time.Millisecond

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	first := next(t, w)
	require.NoError(t, first.Err)
	assert.Equal(t, "a+b", first.Result.Answers.Part1)

	require.NoError(t, os.WriteFile(w.Path(), []byte("c d e"), 0644))
	second := next(t, w)
	require.NoError(t, second.Err)
	assert.Equal(t, "c+d+e", second.Result.Answers.Part1)
}

func TestWatcherReportsErrors(t *testing.T) {
	cfg := testConfig(t, map[int]string{dayFails: "x"})
	w, err := New(cfg, zap.NewNop()).NewWatcher(dayFails, false)
	require.NoError(t, err)
	w.tick = 10 * time.Millisecond

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.ErrorIs(t, next(t, w).Err, errBadInput)
}

func TestWatcherStopsWithContext(t *testing.T) {
	cfg := testConfig(t, map[int]string{dayWords: "a"})
	w, err := New(cfg, zap.NewNop()).NewWatcher(dayWords, false)
	require.NoError(t, err)
	w.tick = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	_, ok := <-w.Results()
	assert.False(t, ok)
	w.Stop()
	w.Stop()
}

func TestWatcherMissingDir(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.Inputs.Pattern = "missing/day%02d.txt"
	w, err := New(cfg, zap.NewNop()).NewWatcher(dayWords, false)
	require.NoError(t, err)

	assert.Error(t, w.Start(context.Background()))
	w.Stop()
	assert.True(t, w.closed)
}

func TestWatcherStopWithoutStart(t *testing.T) {
	cfg := testConfig(t, map[int]string{dayWords: "a"})
	w, err := New(cfg, zap.NewNop()).NewWatcher(dayWords, false)
	require.NoError(t, err)

	w.Stop()
	assert.ErrorIs(t, w.Start(context.Background()), ErrWatcherStopped)
	w.Stop()
}
