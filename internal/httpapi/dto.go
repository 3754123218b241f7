package httpapi

import "github.com/nguyentantai21042004/condense/internal/language"

type textRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type summaryRequest struct {
	Text      string `json:"text"`
	Language  string `json:"language"`
	SkipAudio bool   `json:"skip_audio"`
}

// summaryResponse carries the artifacts base64-encoded. An artifact that
// failed is omitted and its error is reported alongside.
type summaryResponse struct {
	Summary    string            `json:"summary"`
	Language   language.Language `json:"language"`
	PDF        []byte            `json:"pdf,omitempty"`
	PDFError   string            `json:"pdf_error,omitempty"`
	Audio      []byte            `json:"audio,omitempty"`
	AudioError string            `json:"audio_error,omitempty"`
}

type extractResponse struct {
	Text string `json:"text"`
}

type biasResponse struct {
	Analysis string `json:"analysis"`
}

type errorResponse struct {
	Error string `json:"error"`
}
