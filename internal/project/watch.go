package project

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mytex-labs/mytex/internal/logging"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls onChange every time the project config at dir changes, until
// ctx is cancelled. Events within debounce of each other trigger one call.
// Errors from onChange are logged and watching continues.
func Watch(ctx context.Context, dir string, debounce time.Duration, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	configDir := filepath.Join(dir, ConfigDir)
	if err := w.Add(configDir); err != nil {
		return fmt.Errorf("watching %s: %w", configDir, err)
	}

	target := filepath.Clean(ConfigPath(dir))
	log := logging.L().With("component", "watch", "dir", dir)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("config changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				log.Warn("re-render failed", "error", err)
			}
		}
	}
}
