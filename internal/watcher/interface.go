package watcher

import "context"

// Watcher feeds inbox documents to an EventHandler.
type Watcher interface {
	// Start blocks until ctx is done, then waits for running handlers.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one document path.
type EventHandler func(ctx context.Context, filePath string) error
