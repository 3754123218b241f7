package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

type blockKind int

const (
	blockText blockKind = iota
	blockGap
)

// block is one unit of vertical layout: a wrapped paragraph or a blank-line gap.
type block struct {
	kind blockKind
	text string
}

// layout splits normalized text into blocks, one per line.
func layout(normalized string) []block {
	lines := strings.Split(normalized, "\n")
	blocks := make([]block, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blocks = append(blocks, block{kind: blockGap})
			continue
		}
		blocks = append(blocks, block{kind: blockText, text: line})
	}
	return blocks
}

// Render normalizes text and lays it out as a multi-page PDF.
// Output is all-or-nothing: either a complete document or an error.
func (r *implRenderer) Render(text string) ([]byte, error) {
	pdf, err := r.compose(text)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: output: %v", ErrRenderInit, err)
	}
	return buf.Bytes(), nil
}

// compose builds the laid-out document without serializing it.
func (r *implRenderer) compose(text string) (*fpdf.Fpdf, error) {
	pdf, err := r.newDocument()
	if err != nil {
		return nil, err
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, b := range layout(Normalize(text, r.opts.StripMarkdown)) {
		pdf.SetX(left)
		if b.kind == blockGap {
			pdf.Ln(r.opts.BlankLineHeight)
			continue
		}
		pdf.MultiCell(usable, r.opts.LineHeight, string(EncodeLatin1(b.text)), "", "L", false)
	}

	return pdf, nil
}

func (r *implRenderer) newDocument() (*fpdf.Fpdf, error) {
	m := r.opts.Margin

	pdf := fpdf.New("P", "mm", r.opts.PageSize, "")
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(true, m)
	pdf.AddPage()
	pdf.SetFont(r.opts.FontFamily, "", r.opts.FontSize)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderInit, err)
	}
	return pdf, nil
}
