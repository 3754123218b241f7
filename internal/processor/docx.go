package processor

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont      = "Helvetica"
	docxBodySize  = 12
	docxTitleSize = 16
	docxColor     = "000000"
)

var (
	mdHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	mdBullet  = regexp.MustCompile(`^(?:[-*+]|•)\s+(.+)$`)
	mdStrong  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	mdInline  = strings.NewReplacer("**", "", "__", "", "`", "")
)

// span is a run of text with uniform emphasis.
type span struct {
	text string
	bold bool
}

// paragraph is one docx paragraph derived from a markdown line.
type paragraph struct {
	size  uint64
	spans []span
}

// parseSummary turns summary markdown into styled paragraphs. Headings become
// bold runs sized by level, bullets get a "• " prefix, blank lines and
// horizontal rules are dropped.
func parseSummary(title, markdown string) []paragraph {
	out := []paragraph{{size: docxTitleSize, spans: []span{{text: mdInline.Replace(title), bold: true}}}}

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || line == "---":
			continue
		case mdHeading.MatchString(line):
			m := mdHeading.FindStringSubmatch(line)
			out = append(out, paragraph{
				size:  headingSize(len(m[1])),
				spans: []span{{text: mdInline.Replace(m[2]), bold: true}},
			})
		case mdBullet.MatchString(line):
			m := mdBullet.FindStringSubmatch(line)
			out = append(out, paragraph{size: docxBodySize, spans: strongSpans("• " + m[1])})
		default:
			out = append(out, paragraph{size: docxBodySize, spans: strongSpans(line)})
		}
	}
	return out
}

// strongSpans splits text on **bold** markers.
func strongSpans(text string) []span {
	var spans []span
	last := 0
	for _, loc := range mdStrong.FindAllStringSubmatchIndex(text, -1) {
		if plain := mdInline.Replace(text[last:loc[0]]); plain != "" {
			spans = append(spans, span{text: plain})
		}
		spans = append(spans, span{text: mdInline.Replace(text[loc[2]:loc[3]]), bold: true})
		last = loc[1]
	}
	if rest := mdInline.Replace(text[last:]); rest != "" {
		spans = append(spans, span{text: rest})
	}
	return spans
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return docxBodySize
	}
}

// markdownToDocx writes the summary as a docx file at outputPath.
func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}
	for _, para := range parseSummary(title, markdown) {
		writeParagraph(doc.AddParagraph(""), para)
	}
	return doc.SaveTo(outputPath)
}

func writeParagraph(p *docx.Paragraph, para paragraph) {
	for _, s := range para.spans {
		run := p.AddText(s.text).Font(docxFont).Size(para.size).Color(docxColor)
		if s.bold {
			run.Bold(true)
		}
	}
}
