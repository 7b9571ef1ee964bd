// Package watch reruns generation when any of its input files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher watches a set of files and invokes a callback on change.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func()
	debounce time.Duration
	logger   *slog.Logger
	mu       sync.Mutex
	running  bool
}

// NewFileWatcher creates a watcher for the given files.
func NewFileWatcher(paths []string, onChange func(), logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return nil, err
		}
		files[abs] = true
	}

	return &FileWatcher{
		watcher:  watcher,
		files:    files,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logger,
	}, nil
}

// SetDebounce sets the quiet period before the callback fires.
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.debounce = d
}

// Run watches until ctx is cancelled. It blocks.
func (fw *FileWatcher) Run(ctx context.Context) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	debounce := fw.debounce
	fw.mu.Unlock()

	defer func() { _ = fw.watcher.Close() }()

	// Watch the parent directories; editors often replace files on save
	dirs := make(map[string]bool)
	for file := range fw.files {
		dir := filepath.Dir(file)
		if dirs[dir] {
			continue
		}
		if err := fw.watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
		fw.logger.Debug("watching directory", "dir", dir)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("input changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			fw.onChange()
		}
	}
}

// relevant reports whether an event touches one of the watched files.
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return fw.files[abs]
}
