package processor

import (
	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/language"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/renderer"
	"github.com/nguyentantai21042004/condense/internal/speech"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
)

type implProcessor struct {
	cfg         *config.Config
	summarizer  summarizer.Summarizer
	renderer    renderer.Renderer
	synthesizer speech.Synthesizer
	language    language.Language
	calls       *callLimiter
	logger      logger.Logger
}

// New creates a new Processor instance. An unknown default language in cfg
// falls back to language.Default.
func New(cfg *config.Config, sum summarizer.Summarizer, rend renderer.Renderer, synth speech.Synthesizer, log logger.Logger) Processor {
	lang, err := language.Lookup(cfg.Language.Default)
	if err != nil {
		lang = language.Default
	}
	return &implProcessor{
		cfg:         cfg,
		summarizer:  sum,
		renderer:    rend,
		synthesizer: synth,
		language:    lang,
		calls:       newCallLimiter(cfg.Performance.MaxConcurrent),
		logger:      log,
	}
}
