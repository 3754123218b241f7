package speech

import (
	"time"

	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/pkg/executor"
)

// Options configures the gTTS command line.
type Options struct {
	BinaryPath string
	MaxChars   int
	Timeout    time.Duration
}

type implSynthesizer struct {
	executor executor.Executor
	opts     Options
	logger   logger.Logger
}

// New creates a Synthesizer that shells out to gtts-cli.
func New(exec executor.Executor, opts Options, log logger.Logger) Synthesizer {
	if opts.BinaryPath == "" {
		opts.BinaryPath = "gtts-cli"
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = 4500
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Minute
	}
	return &implSynthesizer{
		executor: exec,
		opts:     opts,
		logger:   log,
	}
}
