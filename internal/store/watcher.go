package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/hubdeck/internal/column"
)

// reloadDebounce coalesces the burst of events an editor produces on save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a Store when its file changes on disk and reports the new
// columns through a callback.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	onReload func([]column.Column)
	stopCh    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewWatcher watches the directory holding the store file. The directory is
// watched rather than the file because editors and atomic saves replace it.
func NewWatcher(s *Store, onReload func([]column.Column)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(s.Path())); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		store:    s,
		watcher:  fw,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a new goroutine. Calls after the first, or after
// Stop, do nothing.
func (w *Watcher) Start() {
	w.startOnce.Do(func() {
		go w.watchLoop()
	})
}

// Stop stops the watcher and waits for the loop to exit. It is safe to call
// more than once, and without a prior Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
	// A loop that never ran cannot close done itself.
	w.startOnce.Do(func() {
		close(w.done)
	})
	<-w.done
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	target := filepath.Base(w.store.Path())
	debounce := time.NewTimer(0)
	<-debounce.C

	for {
		select {
		case <-w.stopCh:
			debounce.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			debounce.Reset(reloadDebounce)

		case <-debounce.C:
			if err := w.store.Reload(); err != nil {
				w.store.logger.Warn("reload failed, keeping previous columns", "error", err.Error())
				continue
			}
			if w.onReload != nil {
				w.onReload(w.store.Columns())
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.store.logger.Warn("file watcher error", "error", err.Error())
		}
	}
}
