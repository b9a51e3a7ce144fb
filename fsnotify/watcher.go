// Package fsnotify turns changes of a saved page file into debounced
// re-extraction signals.
package fsnotify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultDebounce is the quiet period after the last change before a check runs.
const DefaultDebounce = 500 * time.Millisecond

// CheckFunc is called once per "check now" signal.
type CheckFunc func(ctx context.Context) error

// Watcher watches a single file and calls a CheckFunc after it changes.
//
// Bursts of change events within the debounce period collapse into one
// signal. Signals arriving while a check is pending collapse as well, and
// checks never run concurrently with each other.
type Watcher struct {
	path     string
	debounce time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Defaults to DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLimit caps how often checks run. Defaults to one check per second.
func WithLimit(limit rate.Limit, burst int) Option {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithLogger sets the logger. Defaults to discarding log output.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a Watcher for the file at path.
func NewWatcher(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run calls check once for the current file contents and again after every
// change until ctx is canceled. The parent directory is watched so files
// replaced by rename are still followed.
//
// Returns nil when ctx is canceled, or the first error returned by check.
func (w *Watcher) Run(ctx context.Context, check CheckFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	w.logger.Info("watching", "path", w.path, "debounce", w.debounce)

	trigger := make(chan struct{}, 1)
	trigger <- struct{}{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.pump(ctx, fw, trigger)
	})
	g.Go(func() error {
		return w.consume(ctx, trigger, check)
	})

	err = g.Wait()
	w.logger.Info("watcher stopped", "path", w.path, "err", err)
	return err
}

// pump debounces change events of the watched file into trigger.
func (w *Watcher) pump(ctx context.Context, fw *fsnotify.Watcher, trigger chan<- struct{}) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name || ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			select {
			case trigger <- struct{}{}:
			default:
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "path", w.path, "err", err)
		}
	}
}

// consume runs check for each signal, one at a time.
func (w *Watcher) consume(ctx context.Context, trigger <-chan struct{}, check CheckFunc) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-trigger:
			if err := w.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if err := check(ctx); err != nil {
				return err
			}
		}
	}
}
