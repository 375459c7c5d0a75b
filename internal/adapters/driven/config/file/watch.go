package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// Watch reloads the store whenever config.toml is written by another
// process, until ctx is cancelled. A file that fails to parse leaves the
// previous values in place.
func (s *ConfigStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	// Atomic saves replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.filePath), err)
	}

	go s.watch(ctx, watcher)
	return nil
}

func (s *ConfigStore) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Load(); err != nil {
				logger.Warn("config: reload failed: %v", err)
				continue
			}
			logger.Debug("config: reloaded %s", s.filePath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config: watcher error: %v", err)
		}
	}
}
