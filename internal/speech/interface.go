package speech

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/condense/internal/language"
)

var (
	// ErrEmptyText is returned when nothing speakable remains after preparation.
	ErrEmptyText = errors.New("no text to synthesize")
	// ErrEmptyAudio is returned when the synthesizer produced no audio.
	ErrEmptyAudio = errors.New("synthesizer produced no audio")
)

// MIMEType is the content type of synthesized audio.
const MIMEType = "audio/mpeg"

// Synthesizer converts text into MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang language.Language) ([]byte, error)
}
