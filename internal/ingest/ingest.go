// Package ingest extracts plain text from uploaded documents.
//
// PDFs are read with ledongthuc/pdf, a pure Go reader, so no external tools
// are needed at runtime.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrUndecodable     = errors.New("file is not valid UTF-8 text")
	ErrEmptyExtraction = errors.New("no text could be extracted")
)

// Kind is the document format recognised by Extract.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindText
)

// Detect decides the document kind from the declared content type, falling
// back to the file extension.
func Detect(name, contentType string) Kind {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "application/pdf":
			return KindPDF
		case "text/plain", "text/markdown":
			return KindText
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".txt", ".md":
		return KindText
	}
	return KindUnknown
}

// Extract returns the text content of data. PDF pages with text are joined
// with a blank line between them.
func Extract(name, contentType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch Detect(name, contentType) {
	case KindPDF:
		text, err = extractPDF(data)
	case KindText:
		text, err = decodeText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyExtraction
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// image-only pages have no text layer
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}

func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", ErrUndecodable
	}
	return string(data), nil
}
