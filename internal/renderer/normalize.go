package renderer

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// substitute is the byte substituted for runes outside ISO-8859-1.
const substitute = '?'

var (
	// '#' goes before '**' so that "*#*" cannot leave a fresh "**" behind.
	markdownReplacer = strings.NewReplacer("#", "")
	emphasisReplacer = strings.NewReplacer("**", "")

	punctuationReplacer = strings.NewReplacer(
		"•", "-",
		"—", "-",
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)

	newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Normalize converts arbitrary summary text into layout-ready text whose runes
// are all representable in ISO-8859-1. It is idempotent.
func Normalize(text string, stripMarkdown bool) string {
	if stripMarkdown {
		text = markdownReplacer.Replace(text)
		text = emphasisReplacer.Replace(text)
	}
	text = punctuationReplacer.Replace(text)

	lines := strings.Split(newlineReplacer.Replace(text), "\n")
	for i, line := range lines {
		lines[i] = toLatin1Repertoire(strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

// toLatin1Repertoire replaces each rune without an ISO-8859-1 code point by
// substitute, one for one.
func toLatin1Repertoire(s string) string {
	clean := true
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(substitute)
		}
	}
	return b.String()
}

// EncodeLatin1 returns the single-byte form of s. Runes outside ISO-8859-1
// become substitute.
func EncodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = substitute
		}
		out = append(out, b)
	}
	return out
}
