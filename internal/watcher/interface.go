package watcher

import "context"

// Watcher monitors a directory for new subtitle files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConvertFunc converts one subtitle file
type ConvertFunc func(ctx context.Context, filePath string) error
