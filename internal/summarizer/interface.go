package summarizer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/condense/internal/language"
)

var (
	// ErrEmptyResponse is returned when the model call succeeds but yields no text.
	ErrEmptyResponse = errors.New("the model returned an empty response")
	// ErrPromptMissing is returned when no summary prompt is configured.
	ErrPromptMissing = errors.New("summary prompt is not configured")
)

// Summarizer produces summaries and bias analyses through a generative model.
type Summarizer interface {
	Summarize(ctx context.Context, text string, lang language.Language) (string, error)
	DetectBias(ctx context.Context, text string) (string, error)
}

// Generator sends a single prompt to a named model and returns its text.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}
