package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/condense/internal/logger"
)

// Options configures an inbox watcher.
type Options struct {
	// Dir is the inbox directory.
	Dir string
	// MaxConcurrent caps simultaneous handler runs. Defaults to 2.
	MaxConcurrent int
	// Settle is how long to wait after a create event before the file is
	// handed off, giving the writer time to finish. Defaults to 500ms.
	Settle time.Duration
}

// New watches opts.Dir and hands every supported document to handler.
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Settle <= 0 {
		opts.Settle = 500 * time.Millisecond
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(opts.Dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", opts.Dir, err)
	}

	return &implWatcher{
		inputDir:      opts.Dir,
		handler:       handler,
		logger:        log,
		watcher:       fw,
		maxConcurrent: opts.MaxConcurrent,
		semaphore:     make(chan struct{}, opts.MaxConcurrent),
		settle:        opts.Settle,
	}, nil
}
