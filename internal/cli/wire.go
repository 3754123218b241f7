package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/processor"
	"github.com/nguyentantai21042004/condense/internal/renderer"
	"github.com/nguyentantai21042004/condense/internal/speech"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
	"github.com/nguyentantai21042004/condense/pkg/executor"
)

// app is the set of wired services shared by serve and watch.
type app struct {
	cfg         *config.Config
	logger      logger.Logger
	renderer    renderer.Renderer
	synthesizer speech.Synthesizer
	processor   processor.Processor
}

func buildApp(ctx context.Context, cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	gen, err := summarizer.NewGeminiGenerator(ctx, cfg.Gemini.APIKey)
	if err != nil {
		return nil, fmt.Errorf("init gemini: %w", err)
	}

	sum := summarizer.New(gen, summarizer.Options{
		Model:         cfg.Gemini.Model,
		FallbackModel: cfg.Gemini.FallbackModel,
		BiasModel:     cfg.Gemini.BiasModel,
		SummaryPrompt: cfg.Gemini.SummaryPrompt,
		BiasPrompt:    cfg.Gemini.BiasPrompt,
	}, log)

	rend := renderer.New(rendererOptions(cfg.Document))

	synth := speech.New(executor.New(), speech.Options{
		BinaryPath: cfg.Speech.BinaryPath,
		MaxChars:   cfg.Speech.MaxChars,
		Timeout:    time.Duration(cfg.Speech.TimeoutSeconds) * time.Second,
	}, log)

	return &app{
		cfg:         cfg,
		logger:      log,
		renderer:    rend,
		synthesizer: synth,
		processor:   processor.New(cfg, sum, rend, synth, log),
	}, nil
}

func rendererOptions(d config.DocumentConfig) renderer.Options {
	opts := renderer.Options{
		Margin:          d.Margin,
		FontFamily:      d.FontFamily,
		FontSize:        d.FontSize,
		LineHeight:      d.LineHeight,
		BlankLineHeight: d.BlankLineHeight,
		PageSize:        d.PageSize,
		StripMarkdown:   true,
	}
	if d.StripMarkdown != nil {
		opts.StripMarkdown = *d.StripMarkdown
	}
	return opts
}
