package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/arielfikru/NekkoSub/internal/logger"
)

// New creates a Watcher over inputDir with at most maxConcurrent
// conversions in flight.
func New(inputDir string, convert ConvertFunc, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputDir:  inputDir,
		convert:   convert,
		logger:    log,
		watcher:   fsw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
