// Package watch re-runs the formatter when watched robot files change.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor save bursts into one callback.
const debounceDelay = 500 * time.Millisecond

// Watcher watches a set of files and invokes a callback per changed file.
type Watcher struct {
	files    map[string]bool
	callback func(file string) error
	watcher  *fsnotify.Watcher
	done     chan bool
}

// NewWatcher creates a watcher over the given files. The parent directory of
// each file is watched, since editors commonly replace files on save.
func NewWatcher(files []string, callback func(file string) error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}
		watched[absPath] = true
		dirs[filepath.Dir(absPath)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	return &Watcher{
		files:    watched,
		callback: callback,
		watcher:  watcher,
		done:     make(chan bool),
	}, nil
}

// Start begins watching. Changed files are reported through the callback
// after a debounce interval; callback errors are printed, not fatal.
func (w *Watcher) Start() error {
	go func() {
		debounceTimer := time.NewTimer(debounceDelay)
		debounceTimer.Stop()
		var debounceCh <-chan time.Time
		pending := make(map[string]bool)

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				eventPath, err := filepath.Abs(event.Name)
				if err != nil || !w.files[eventPath] {
					continue
				}
				pending[eventPath] = true
				debounceTimer.Reset(debounceDelay)
				debounceCh = debounceTimer.C

			case <-debounceCh:
				for file := range pending {
					if err := w.callback(file); err != nil {
						fmt.Fprintf(os.Stderr, "Watch callback error: %v\n", err)
					}
				}
				pending = make(map[string]bool)
				debounceCh = nil

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops watching the files.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
