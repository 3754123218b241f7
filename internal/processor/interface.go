package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/condense/internal/language"
)

// ErrEmptyInput is returned when there is no text to work on.
var ErrEmptyInput = errors.New("no text to process")

// Processor ties ingestion, summarization and the output artifacts together.
type Processor interface {
	// Summarize produces the summary plus its PDF and audio renditions.
	// Only a summary failure is returned as an error; artifact failures are
	// recorded on the Result.
	Summarize(ctx context.Context, req Request) (*Result, error)
	DetectBias(ctx context.Context, text string) (string, error)
	// Process handles one file dropped into the inbox.
	Process(ctx context.Context, path string) error
}

// Request is a summary request.
type Request struct {
	Text     string
	Language language.Language
	// SkipAudio disables speech synthesis for this request.
	SkipAudio bool
}

// Result is the outcome of a summary request.
type Result struct {
	Summary  string
	Language language.Language
	PDF      []byte
	PDFErr   error
	Audio    []byte
	AudioErr error
}
