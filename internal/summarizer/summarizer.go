package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/condense/internal/language"
)

const defaultBiasPrompt = "Analyze this text for bias: %s"

// Summarize asks the primary model for a summary written in lang. On a
// quota or resource-exhaustion failure it retries once with the fallback model.
func (s *implSummarizer) Summarize(ctx context.Context, text string, lang language.Language) (string, error) {
	if strings.TrimSpace(s.opts.SummaryPrompt) == "" {
		return "", ErrPromptMissing
	}

	prompt := buildSummaryPrompt(s.opts.SummaryPrompt, lang.Name, text)

	s.logger.Info(ctx, "Summarizing %d characters in %s with %s", len(text), lang.Name, s.opts.Model)

	result, err := s.gen.Generate(ctx, s.opts.Model, prompt)
	if err != nil {
		if !isQuotaError(err) || s.opts.FallbackModel == "" {
			return "", fmt.Errorf("generate content: %w", err)
		}

		s.logger.Warn(ctx, "Model %s exhausted, retrying with %s: %v", s.opts.Model, s.opts.FallbackModel, err)

		result, err = s.gen.Generate(ctx, s.opts.FallbackModel, prompt)
		if err != nil {
			return "", fmt.Errorf("generate content with fallback %s: %w", s.opts.FallbackModel, err)
		}
	}

	if strings.TrimSpace(result) == "" {
		return "", ErrEmptyResponse
	}
	return result, nil
}

// DetectBias runs the bias prompt against text on the bias model. There is no fallback.
func (s *implSummarizer) DetectBias(ctx context.Context, text string) (string, error) {
	s.logger.Info(ctx, "Analyzing %d characters for bias with %s", len(text), s.opts.BiasModel)

	result, err := s.gen.Generate(ctx, s.opts.BiasModel, buildBiasPrompt(s.opts.BiasPrompt, text))
	if err != nil {
		return "", fmt.Errorf("bias detection: %w", err)
	}
	if strings.TrimSpace(result) == "" {
		return "", ErrEmptyResponse
	}
	return result, nil
}

func buildSummaryPrompt(base, languageName, text string) string {
	return fmt.Sprintf("%s\nIMPORTANT: Provide the entire response in %s.\n\nTEXT:\n%s", base, languageName, text)
}

func buildBiasPrompt(base, text string) string {
	if strings.TrimSpace(base) == "" {
		return fmt.Sprintf(defaultBiasPrompt, text)
	}
	return base + "\n\n" + text
}

// isQuotaError reports whether err describes quota or resource exhaustion.
func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "resource")
}
