package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/condense/internal/ingest"
	"github.com/nguyentantai21042004/condense/internal/language"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/processor"
	"github.com/nguyentantai21042004/condense/internal/renderer"
	"github.com/nguyentantai21042004/condense/internal/speech"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
)

// Handler serves the summary API.
type Handler struct {
	processor      processor.Processor
	renderer       renderer.Renderer
	synthesizer    speech.Synthesizer
	logger         logger.Logger
	maxUploadBytes int64
}

// NewHandler creates a Handler. maxUploadBytes caps /extract uploads.
func NewHandler(proc processor.Processor, rend renderer.Renderer, synth speech.Synthesizer, log logger.Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		processor:      proc,
		renderer:       rend,
		synthesizer:    synth,
		logger:         log,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, language.All())
}

// Extract reads an uploaded PDF or text file and returns its text.
func (h *Handler) Extract(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.fail(c, http.StatusBadRequest, fmt.Errorf("missing file: %w", err))
		return
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		h.fail(c, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds %d bytes", h.maxUploadBytes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	text, err := ingest.Extract(fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ingest.ErrUnsupportedType) {
			status = http.StatusUnsupportedMediaType
		}
		h.fail(c, status, fmt.Errorf("could not read this file: %w", err))
		return
	}

	c.JSON(http.StatusOK, extractResponse{Text: text})
}

// Summarize returns the summary with its PDF and audio renditions.
func (h *Handler) Summarize(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	lang, err := language.Lookup(req.Language)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.processor.Summarize(c.Request.Context(), processor.Request{
		Text:      req.Text,
		Language:  lang,
		SkipAudio: req.SkipAudio,
	})
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}

	resp := summaryResponse{
		Summary:  res.Summary,
		Language: res.Language,
		PDF:      res.PDF,
		Audio:    res.Audio,
	}
	if res.PDFErr != nil {
		resp.PDFError = res.PDFErr.Error()
	}
	if res.AudioErr != nil {
		resp.AudioError = res.AudioErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DetectBias(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	analysis, err := h.processor.DetectBias(c.Request.Context(), req.Text)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, biasResponse{Analysis: analysis})
}

// Document renders text as a downloadable PDF.
func (h *Handler) Document(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	lang, err := language.Lookup(req.Language)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	pdf, err := h.renderer.Render(req.Text)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="summary_%s.pdf"`, lang.Code))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Speech returns text spoken as MP3.
func (h *Handler) Speech(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	lang, err := language.Lookup(req.Language)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	audio, err := h.synthesizer.Synthesize(c.Request.Context(), req.Text, lang)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	c.Data(http.StatusOK, speech.MIMEType, audio)
}

func (h *Handler) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "Request failed: %v", err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, processor.ErrEmptyInput), errors.Is(err, speech.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, renderer.ErrRenderInit), errors.Is(err, summarizer.ErrPromptMissing):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
