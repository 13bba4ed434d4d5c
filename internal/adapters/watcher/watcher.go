package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports batches of changed documents under a wiki directory.
// Only files carrying the wiki extension are reported.
type Watcher struct {
	root     string
	ext      string
	debounce time.Duration
	log      *slog.Logger

	fs      *fsnotify.Watcher
	changes chan []string

	startOnce sync.Once
	closeOnce sync.Once
}

// New creates a watcher for documents with extension ext below root.
// Watching begins with Start.
func New(root, ext string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		root:     root,
		ext:      ext,
		debounce: DefaultDebounce,
		log:      log,
		fs:       w,
		changes:  make(chan []string, 1),
	}, nil
}

// SetDebounce overrides DefaultDebounce. Call it before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Changes delivers sorted batches of changed document paths.
// The channel is closed when watching stops.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Start watches root and every directory below it until ctx is done
// or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.startOnce.Do(func() {
		if err = w.addRecursive(w.root); err != nil {
			return
		}
		go w.run(ctx)
	})
	return err
}

// Close stops watching and releases the underlying watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && hidden(path) {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.changes)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) && !hidden(event.Name) {
				if err := w.addRecursive(event.Name); err != nil {
					w.log.Warn("cannot watch directory", "path", event.Name, "error", err)
				}
				continue
			}
			if !w.relevant(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := slices.Sorted(maps.Keys(pending))
			clear(pending)
			w.log.Debug("documents changed", "count", len(batch))
			select {
			case w.changes <- batch:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != w.ext {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
