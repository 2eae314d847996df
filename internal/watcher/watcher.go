package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arielfikru/NekkoSub/internal/logger"
)

type implWatcher struct {
	inputDir  string
	convert   ConvertFunc
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start blocks converting new .ass files until ctx is cancelled. A file
// that fails to convert is logged and does not stop the watch.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for new .ass files", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing conversions to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isSubtitleFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-subtitle file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New subtitle detected: %s", event.Name)

			// Small delay to ensure file is fully written
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.convert(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to convert %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ass")
}
