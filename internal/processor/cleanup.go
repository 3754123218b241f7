package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed source file into the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Archiving: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

// writeArtifact writes an optional output, logs warning if it fails
func (p *implProcessor) writeArtifact(ctx context.Context, path string, data []byte) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", path, err)
		return
	}
	p.logger.Debug(ctx, "Wrote %s (%d bytes)", path, len(data))
}
