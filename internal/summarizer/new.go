package summarizer

import (
	"github.com/nguyentantai21042004/condense/internal/logger"
)

// Options selects models and prompts.
type Options struct {
	Model         string
	FallbackModel string
	BiasModel     string
	SummaryPrompt string
	BiasPrompt    string
}

type implSummarizer struct {
	gen    Generator
	opts   Options
	logger logger.Logger
}

// New creates a Summarizer that retries once on the fallback model when the
// primary model runs out of quota.
func New(gen Generator, opts Options, log logger.Logger) Summarizer {
	return &implSummarizer{
		gen:    gen,
		opts:   opts,
		logger: log,
	}
}
