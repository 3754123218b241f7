package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfMagic = []byte("%PDF-")

func TestRenderProducesPDF(t *testing.T) {
	inputs := map[string]string{
		"empty":      "",
		"whitespace": "   \n\t\n  ",
		"emoji":      "Great job 🎉🎉",
		"rtl":        "مرحبا بالعالم",
		"control":    "bell\x07 null\x00 esc\x1b",
		"invalid":    string([]byte{0xc3, 0x28, 0xa0, 0xa1}),
		"markdown":   "# Title\n\n**Bold** and • bullet",
	}

	r := New(DefaultOptions())
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(in)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.True(t, bytes.HasPrefix(out, pdfMagic))
		})
	}
}

func TestRenderLiteralScenario(t *testing.T) {
	text := "**Summary**\n\nThis is a test — with a “quote”."

	blocks := layout(Normalize(text, true))
	require.Len(t, blocks, 3)
	assert.Equal(t, block{kind: blockText, text: "Summary"}, blocks[0])
	assert.Equal(t, blockGap, blocks[1].kind)
	assert.Equal(t, block{kind: blockText, text: `This is a test - with a "quote".`}, blocks[2])

	pdf, err := New(DefaultOptions()).(*implRenderer).compose(text)
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())
}

func TestBlankLineBecomesGap(t *testing.T) {
	blocks := layout(Normalize("A\n\nB", true))
	require.Len(t, blocks, 3)
	assert.Equal(t, blockText, blocks[0].kind)
	assert.Equal(t, blockGap, blocks[1].kind)
	assert.Empty(t, blocks[1].text)
	assert.Equal(t, blockText, blocks[2].kind)

	opts := DefaultOptions()
	r := New(opts).(*implRenderer)

	tight, err := r.compose("A\nB")
	require.NoError(t, err)
	spaced, err := r.compose("A\n\nB")
	require.NoError(t, err)

	assert.InDelta(t, opts.BlankLineHeight, spaced.GetY()-tight.GetY(), 0.001)
}

func TestOversizedInputSpansPages(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("A line of body text that is long enough to matter for the layout engine.\n")
	}

	opts := DefaultOptions()
	pdf, err := New(opts).(*implRenderer).compose(sb.String())
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)

	left, top, right, bottom := pdf.GetMargins()
	assert.Equal(t, opts.Margin, left)
	assert.Equal(t, opts.Margin, top)
	assert.Equal(t, opts.Margin, right)
	assert.Equal(t, opts.Margin, bottom)

	out, err := New(opts).Render(sb.String())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pdfMagic))
}

func TestLongLineWraps(t *testing.T) {
	r := New(DefaultOptions()).(*implRenderer)

	short, err := r.compose("word")
	require.NoError(t, err)
	long, err := r.compose(strings.Repeat("word ", 200))
	require.NoError(t, err)

	assert.Greater(t, long.GetY(), short.GetY())
}

func TestUnsupportedCharacterStillRenders(t *testing.T) {
	out, err := New(DefaultOptions()).Render("Price: 100 円 total")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pdfMagic))
}

func TestRenderInitErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown font", Options{FontFamily: "NoSuchFont"}},
		{"unknown page size", Options{PageSize: "Z9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(tt.opts).Render("hello")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRenderInit))
			assert.Nil(t, out)
		})
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(Options{StripMarkdown: false}).(*implRenderer)
	def := DefaultOptions()
	assert.Equal(t, def.Margin, r.opts.Margin)
	assert.Equal(t, def.FontFamily, r.opts.FontFamily)
	assert.Equal(t, def.PageSize, r.opts.PageSize)
	assert.False(t, r.opts.StripMarkdown)
}
