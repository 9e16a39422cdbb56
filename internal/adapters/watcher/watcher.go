package watcher

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DeleteWatcher reports when a starred folder disappears from disk.
// Creates and writes are ignored; only removals and renames away count.
type DeleteWatcher struct {
	watcher *fsnotify.Watcher
	logger  *log.Logger

	mu       sync.Mutex
	tracked  map[string]bool // Starred paths
	watching map[string]int  // Parent directory -> number of tracked children
	deleted  chan string
	done     chan struct{}
	once     sync.Once
}

// New creates a delete watcher. logger may be nil.
func New(logger *log.Logger) (*DeleteWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	dw := &DeleteWatcher{
		watcher:  w,
		logger:   logger,
		tracked:  make(map[string]bool),
		watching: make(map[string]int),
		deleted:  make(chan string, 16),
		done:     make(chan struct{}),
	}

	go dw.run()
	return dw, nil
}

func (dw *DeleteWatcher) run() {
	for {
		select {
		case <-dw.done:
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			path := filepath.Clean(event.Name)
			dw.mu.Lock()
			tracked := dw.tracked[path]
			dw.mu.Unlock()
			if !tracked {
				continue
			}

			select {
			case dw.deleted <- path:
			default:
				dw.logger.Printf("watcher: dropped delete event for %s", path)
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Printf("watcher: %v", err)
		}
	}
}

// Sync replaces the tracked set with paths. Parent directories that can
// not be watched (for example because they are gone) are skipped.
func (dw *DeleteWatcher) Sync(paths []string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	want := make(map[string]bool, len(paths))
	parents := make(map[string]int)
	for _, p := range paths {
		p = filepath.Clean(p)
		want[p] = true
		parents[filepath.Dir(p)]++
	}

	for dir := range dw.watching {
		if _, ok := parents[dir]; ok {
			continue
		}
		// Path may already be gone
		_ = dw.watcher.Remove(dir)
		delete(dw.watching, dir)
	}

	for dir, n := range parents {
		if _, ok := dw.watching[dir]; !ok {
			if err := dw.watcher.Add(dir); err != nil {
				dw.logger.Printf("watcher: cannot watch %s: %v", dir, err)
				continue
			}
		}
		dw.watching[dir] = n
	}

	dw.tracked = want
}

// watchingCount returns the number of directories under watch
func (dw *DeleteWatcher) watchingCount() int {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return len(dw.watching)
}

// Deleted returns the channel that receives paths of removed starred folders
func (dw *DeleteWatcher) Deleted() <-chan string {
	return dw.deleted
}

// Close shuts down the watcher
func (dw *DeleteWatcher) Close() error {
	var err error
	dw.once.Do(func() {
		close(dw.done)
		err = dw.watcher.Close()
	})
	return err
}
