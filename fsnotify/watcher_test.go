package fsnotify_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/xhsnote/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("checks once at start", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		writeFile(t, path, "<html></html>")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		w := fsnotify.NewWatcher(path, fsnotify.WithDebounce(10*time.Millisecond), fsnotify.WithLimit(rate.Inf, 1))
		done := make(chan error, 1)
		go func() {
			done <- w.Run(ctx, func(context.Context) error {
				calls.Add(1)
				return nil
			})
		}()

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("watcher did not stop")
		}
	})

	t.Run("checks again after the file changes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		writeFile(t, path, "<html></html>")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		w := fsnotify.NewWatcher(path, fsnotify.WithDebounce(10*time.Millisecond), fsnotify.WithLimit(rate.Inf, 1))
		go func() {
			_ = w.Run(ctx, func(context.Context) error {
				calls.Add(1)
				return nil
			})
		}()
		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

		writeFile(t, path, "<html><body>changed</body></html>")

		require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	})

	t.Run("collapses bursts of changes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		writeFile(t, path, "<html></html>")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		w := fsnotify.NewWatcher(path, fsnotify.WithDebounce(100*time.Millisecond), fsnotify.WithLimit(rate.Inf, 1))
		go func() {
			_ = w.Run(ctx, func(context.Context) error {
				calls.Add(1)
				return nil
			})
		}()
		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

		for i := 0; i < 20; i++ {
			writeFile(t, path, "<html>"+string(rune('a'+i))+"</html>")
		}

		require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
		time.Sleep(300 * time.Millisecond)
		assert.Less(t, calls.Load(), int32(5))
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "page.html")
		writeFile(t, path, "<html></html>")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		w := fsnotify.NewWatcher(path, fsnotify.WithDebounce(10*time.Millisecond), fsnotify.WithLimit(rate.Inf, 1))
		go func() {
			_ = w.Run(ctx, func(context.Context) error {
				calls.Add(1)
				return nil
			})
		}()
		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

		writeFile(t, filepath.Join(dir, "other.html"), "<html></html>")
		time.Sleep(200 * time.Millisecond)

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("stops with the check error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		writeFile(t, path, "<html></html>")

		w := fsnotify.NewWatcher(path, fsnotify.WithLimit(rate.Inf, 1))
		err := w.Run(context.Background(), func(context.Context) error {
			return errors.New("store unavailable")
		})

		assert.EqualError(t, err, "store unavailable")
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "page.html")

		err := fsnotify.NewWatcher(path).Run(context.Background(), func(context.Context) error {
			return nil
		})

		assert.Error(t, err)
	})
}
