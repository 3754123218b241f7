package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New returns an Executor backed by os/exec.
func New() Executor {
	return &implExecutor{}
}

// Run starts cmd, feeds it cmd.Stdin and returns everything it wrote to
// stdout. A non-zero exit carries the trimmed stderr in the error.
func (e *implExecutor) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", cmd.Name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return stdout.Bytes(), nil
}
