package ingest

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
		want        Kind
	}{
		{"pdf by type", "upload", "application/pdf", KindPDF},
		{"text by type with charset", "upload", "text/plain; charset=utf-8", KindText},
		{"pdf by extension", "Report.PDF", "application/octet-stream", KindPDF},
		{"markdown by extension", "notes.md", "", KindText},
		{"unknown", "image.png", "image/png", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.file, tt.contentType))
		})
	}
}

func TestExtractText(t *testing.T) {
	got, err := Extract("a.txt", "text/plain", []byte("\xef\xbb\xbfhello world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    []byte
		wantErr error
	}{
		{"undecodable", "a.txt", []byte{0xff, 0xfe, 0x00}, ErrUndecodable},
		{"empty text", "a.txt", []byte("  \n\t"), ErrEmptyExtraction},
		{"unsupported", "a.docx", []byte("PK"), ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.file, "", tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractBrokenPDF(t *testing.T) {
	_, err := Extract("a.pdf", "application/pdf", []byte("not a pdf"))
	require.Error(t, err)
}

func TestExtractPDFPages(t *testing.T) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(40, 10, "FirstPage")
	doc.AddPage()
	doc.Cell(40, 10, "SecondPage")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	got, err := Extract("two.pdf", "application/pdf", buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, got, "FirstPage")
	assert.Contains(t, got, "SecondPage")
	assert.Contains(t, got, "\n\n")
}
