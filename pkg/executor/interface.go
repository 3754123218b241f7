package executor

import (
	"context"
	"io"
)

// Command describes one external process invocation.
type Command struct {
	Name  string
	Args  []string
	Stdin io.Reader
}

// Executor runs external commands and captures their stdout.
type Executor interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}
