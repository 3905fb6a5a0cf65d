// Package watch reloads a button document when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/zzbutton/internal/config"
	"github.com/alexisbeaulieu97/zzbutton/internal/logger"
)

// DefaultDebounce collapses bursts of editor writes into one reload.
const DefaultDebounce = 150 * time.Millisecond

// ReloadFunc receives the freshly parsed document, or the parse error.
type ReloadFunc func(cfg *config.Config, err error)

// ConfigWatcher watches a single config file. The parent directory is
// watched so that editors which replace files by rename are noticed.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	log      *logger.Logger
}

// New starts watching path. Call Run to deliver reloads and Close when done.
func New(path string, debounce time.Duration, log *logger.Logger) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &ConfigWatcher{path: abs, debounce: debounce, fs: fsw, log: log}, nil
}

// Run blocks until ctx ends, calling onReload after each debounced change.
func (w *ConfigWatcher) Run(ctx context.Context, onReload ReloadFunc) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugf("config event %s", event.Op)
			timer.Reset(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "config watcher error")
		case <-timer.C:
			cfg, err := config.ParseConfig(w.path)
			if err != nil {
				w.log.Error(err, "config reload failed")
			} else {
				w.log.Info("config reloaded")
			}
			onReload(cfg, err)
		}
	}
}

func (w *ConfigWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Close stops watching.
func (w *ConfigWatcher) Close() error {
	return w.fs.Close()
}
