package configfile

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/modelconf/model"
)

// pollInterval is the fallback poll cadence when fsnotify is unavailable.
const pollInterval = 500 * time.Millisecond

// Watch loads the config file at path and re-resolves it whenever the file
// changes, delivering each resolved ModelConfig on the returned channel. The
// initial configuration is delivered immediately; an error loading it is
// returned synchronously. Re-resolution failures during watching (e.g. a
// half-written file) are skipped, keeping the last good configuration.
//
// The channel is closed when the context is cancelled.
// Uses fsnotify for efficient file watching with polling fallback.
func Watch(ctx context.Context, path string) (<-chan model.ModelConfig, error) {
	initial, err := Load(path)
	if err != nil {
		return nil, err
	}

	ch := make(chan model.ModelConfig, 1)
	ch <- initial

	// Register the watch before returning so changes made immediately after
	// Watch returns are not missed.
	watcher, werr := fsnotify.NewWatcher()
	if watcher != nil && werr == nil {
		// Watch the directory (more reliable than watching the file directly)
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watcher.Close()
			watcher = nil
		}
	} else {
		watcher = nil
	}

	go func() {
		defer close(ch)

		if watcher == nil {
			watchPolling(ctx, path, ch)
			return
		}
		defer watcher.Close()

		watchEvents(ctx, path, ch, watcher)
	}()

	return ch, nil
}

// watchEvents re-resolves on fsnotify write/create events for our file.
func watchEvents(ctx context.Context, path string, ch chan<- model.ModelConfig, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !deliver(ctx, path, ch) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching
			_ = err
		}
	}
}

// watchPolling re-resolves on modification-time changes as a fallback when
// fsnotify isn't available.
func watchPolling(ctx context.Context, path string, ch chan<- model.ModelConfig) {
	var lastMod time.Time
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			if !deliver(ctx, path, ch) {
				return
			}
		}
	}
}

// deliver loads and sends the current configuration, reporting false when
// the context ended. Load failures are skipped.
func deliver(ctx context.Context, path string, ch chan<- model.ModelConfig) bool {
	cfg, err := Load(path)
	if err != nil {
		return true
	}
	select {
	case ch <- cfg:
		return true
	case <-ctx.Done():
		return false
	}
}
