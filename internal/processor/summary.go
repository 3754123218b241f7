package processor

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Summarize runs the summary call and then builds the PDF and audio
// concurrently. Either artifact may fail without failing the request.
func (p *implProcessor) Summarize(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	lang := req.Language
	if lang.Code == "" {
		lang = p.language
	}

	var summary string
	err := p.calls.do(ctx, func() (err error) {
		summary, err = p.summarizer.Summarize(ctx, text, lang)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	res := &Result{Summary: summary, Language: lang}

	var wg sync.WaitGroup
	if !req.SkipAudio {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Audio, res.AudioErr = p.synthesizer.Synthesize(ctx, summary, lang)
			if res.AudioErr != nil {
				p.logger.Warn(ctx, "Audio generation failed: %v", res.AudioErr)
			}
		}()
	}

	res.PDF, res.PDFErr = p.renderer.Render(summary)
	if res.PDFErr != nil {
		p.logger.Warn(ctx, "Summary created, but PDF failed: %v", res.PDFErr)
	}

	wg.Wait()
	return res, nil
}

// DetectBias runs the bias analysis on text.
func (p *implProcessor) DetectBias(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	var analysis string
	err := p.calls.do(ctx, func() (err error) {
		analysis, err = p.summarizer.DetectBias(ctx, text)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("detect bias: %w", err)
	}
	return analysis, nil
}
