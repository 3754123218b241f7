package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/condense/internal/language"
	"github.com/nguyentantai21042004/condense/pkg/executor"
)

var markupReplacer = strings.NewReplacer("*", "", "#", "", "\n", " ")

// Synthesize speaks text in lang. Markdown markers are dropped, newlines
// become spaces and the text is cut to MaxChars runes.
func (s *implSynthesizer) Synthesize(ctx context.Context, text string, lang language.Language) ([]byte, error) {
	prepared := prepare(text, s.opts.MaxChars)
	if strings.TrimSpace(prepared) == "" {
		return nil, ErrEmptyText
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	s.logger.Debug(ctx, "Synthesizing %d characters (%s)", len([]rune(prepared)), lang.TTSCode)

	// "-" makes gtts-cli read the text from stdin; MP3 goes to stdout
	audio, err := s.executor.Run(ctx, executor.Command{
		Name:  s.opts.BinaryPath,
		Args:  []string{"--lang", lang.TTSCode, "-"},
		Stdin: strings.NewReader(prepared),
	})
	if err != nil {
		return nil, fmt.Errorf("gtts: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}

	s.logger.Info(ctx, "Generated audio: %d bytes", len(audio))
	return audio, nil
}

func prepare(text string, maxChars int) string {
	text = markupReplacer.Replace(text)
	runes := []rune(text)
	if len(runes) > maxChars {
		return string(runes[:maxChars])
	}
	return text
}
