package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// reloadSettle gives editors that write in several steps time to finish.
const reloadSettle = 50 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk. Files that
// fail to parse or validate are logged and skipped; the last good
// configuration stays in effect.
type Watcher struct {
	path    string
	log     *logger.Logger
	updates chan *Config
	ready   chan struct{}

	readyOnce sync.Once
}

// NewWatcher creates a watcher for path. log may be nil.
func NewWatcher(path string, log *logger.Logger) *Watcher {
	return &Watcher{
		path:    filepath.Clean(path),
		log:     log.With("path", path),
		updates: make(chan *Config, 1),
		ready:   make(chan struct{}),
	}
}

// Updates delivers each successfully reloaded configuration.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Ready is closed once the first watch is registered. Run may be called again
// after it returns.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches the file until ctx is cancelled. The parent directory is
// watched so that atomic rename-over saves are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return lkerrors.NewWatchError(w.path, "create", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return lkerrors.NewWatchError(w.path, "add", err)
	}
	w.readyOnce.Do(func() { close(w.ready) })
	w.log.Debug("watching configuration")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if _, err := os.Stat(w.path); err != nil {
				continue
			}

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(reloadSettle):
			}

			cfg, err := ParseConfig(w.path)
			if err != nil {
				w.log.Error(err, "configuration reload failed")
				continue
			}
			w.log.Info("configuration reloaded")

			select {
			case <-ctx.Done():
				return nil
			case w.updates <- cfg:
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(lkerrors.NewWatchError(w.path, "watch", err), "configuration watcher error")
		}
	}
}
