package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/condense/internal/ingest"
)

// Process summarizes one inbox file and writes the summary as markdown, PDF,
// DOCX and MP3 into the output folder. Only ingestion and summary failures
// abort; the source is archived once the summary is written.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting document processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract text
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text, err := ingest.Extract(filepath.Base(path), "", data)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	// Step 2: Summarize, render and synthesize
	res, err := p.Summarize(ctx, Request{Text: text, Language: p.language})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Step 3: Markdown is the one output that must succeed
	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		name,
		startTime.Format("2006-01-02 15:04"),
		strings.TrimSpace(res.Summary),
	)
	mdPath := p.outputPath(name, ".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	// Step 4: Artifacts
	if res.PDFErr == nil {
		p.writeArtifact(ctx, p.outputPath(name, ".pdf"), res.PDF)
	}
	if res.AudioErr == nil {
		p.writeArtifact(ctx, p.outputPath(name, ".mp3"), res.Audio)
	}
	docxPath := p.outputPath(name, ".docx")
	if err := markdownToDocx(name, res.Summary, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write DOCX %s: %v", docxPath, err)
	}

	// Step 5: Archive the source so it won't be re-processed
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed: %s -> %s", path, mdPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) outputPath(name, ext string) string {
	return filepath.Join(p.cfg.Paths.Output, name+"_"+p.language.Code+ext)
}
