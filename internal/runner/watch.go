package runner

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"aoc2024/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchResult is delivered each time a watched day is solved again.
type WatchResult struct {
	Result Result
	Err    error
}

// Watcher re-runs one day whenever its input file changes.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	runner      *Runner
	logger      *zap.Logger
	day         int
	sample      bool
	path        string
	pending     bool
	lastEvent   time.Time
	debounceDur time.Duration
	tick        time.Duration
	results     chan WatchResult
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	closed      bool
}

// NewWatcher creates a Watcher for day. The day is solved once as soon as
// the watcher starts.
func (r *Runner) NewWatcher(day int, sample bool) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fw,
		runner:      r,
		logger:      logging.For(r.logger, logging.CategoryWatch),
		day:         day,
		sample:      sample,
		path:        filepath.Clean(r.cfg.InputPath(day, sample)),
		pending:     true,
		debounceDur: 200 * time.Millisecond, // Editors write in bursts
		tick:        100 * time.Millisecond,
		results:     make(chan WatchResult),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Results delivers one entry per run. It is closed when the watcher stops.
func (w *Watcher) Results() <-chan WatchResult {
	return w.results
}

// Path is the watched input file.
func (w *Watcher) Path() string {
	return w.path
}

// ErrWatcherStopped is returned by Start after Stop.
var ErrWatcherStopped = errors.New("watcher stopped")

// Start begins watching the directory of the input file. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherStopped
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory; many editors replace files instead of writing them.
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("watching", zap.String("path", w.path), zap.Int("day", w.day))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for cleanup and releases the underlying
// fsnotify watcher. It is safe to call whether or not Start succeeded.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	running := w.running
	w.running = false
	w.closed = true
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("closing watcher", zap.Error(err))
	}
	w.logger.Debug("stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.results)

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))

		case <-ticker.C:
			if !w.due() {
				continue
			}
			res, err := w.runner.RunDay(ctx, w.day, w.sample)
			select {
			case w.results <- WatchResult{Result: res, Err: err}:
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("input changed", zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.pending = true
	w.lastEvent = time.Now()
	w.mu.Unlock()
}

// due reports whether a pending change has settled, and clears it.
func (w *Watcher) due() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending || time.Since(w.lastEvent) < w.debounceDur {
		return false
	}
	w.pending = false
	return true
}
