package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/condense/internal/config"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "summary.md")
	require.NoError(t, os.WriteFile(src, []byte("**Summary**\n\nThis is a test — with a “quote”."), 0644))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", src})
	require.NoError(t, cmd.Execute())

	pdf, err := os.ReadFile(filepath.Join(dir, "summary.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Contains(t, out.String(), "summary.pdf")
}

func TestRenderCommandOutputFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))

	dst := filepath.Join(dir, "custom.pdf")
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", src, "-o", dst, "--margin", "20"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, dst)
}

func TestRenderCommandRequiresFile(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"render"})
	assert.Error(t, cmd.Execute())
}

func TestRendererOptions(t *testing.T) {
	keep := false
	opts := rendererOptions(config.DocumentConfig{Margin: 10, StripMarkdown: &keep})
	assert.Equal(t, 10.0, opts.Margin)
	assert.False(t, opts.StripMarkdown)

	opts = rendererOptions(config.DocumentConfig{})
	assert.True(t, opts.StripMarkdown)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Paths: config.PathsConfig{
		Input:    filepath.Join(dir, "in"),
		Output:   filepath.Join(dir, "out"),
		Archived: filepath.Join(dir, "archived"),
	}}
	require.NoError(t, ensureDirectories(cfg))
	assert.DirExists(t, cfg.Paths.Output)
}
