// Package watcher monitors a theme file for edits so the host application
// can hot-reload it.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one theme file and triggers a callback after edits,
// debounced so editor write bursts collapse into a single reload.
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	debounceDelay time.Duration
	onChange      func()
	stopCh        chan struct{}
}

// New creates a watcher for the theme file at path.
func New(path string, debounceDelay time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:       fsWatcher,
		path:          filepath.Clean(path),
		debounceDelay: debounceDelay,
		onChange:      onChange,
		stopCh:        make(chan struct{}),
	}, nil
}

// Start begins watching. The containing directory is watched alongside the
// file itself: most editors save by writing a temp file and renaming it
// over the original, which unsubscribes a plain file watch.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch theme file: %w", err)
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch theme directory: %w", err)
	}

	go w.watchLoop()
	return nil
}

// Stop stops watching the file.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				// The file was recreated by a rename-replace save;
				// re-subscribe before the next edit.
				_ = w.watcher.Add(w.path)
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounceDelay, w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			_ = err

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}

// relevant filters directory noise down to writes, creates, and renames of
// the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
