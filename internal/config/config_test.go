package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Gemini: GeminiConfig{APIKey: "key"},
				Paths:  PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "negative concurrency",
			config: Config{
				Gemini:      GeminiConfig{APIKey: "key"},
				Performance: PerformanceConfig{MaxConcurrent: -1},
			},
			wantErr: true,
		},
		{
			name: "negative margin",
			config: Config{
				Gemini:   GeminiConfig{APIKey: "key"},
				Document: DocumentConfig{Margin: -3},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Gemini: GeminiConfig{APIKey: "key"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Gemini.Model != "gemini-flash-latest" {
		t.Errorf("Model = %v", cfg.Gemini.Model)
	}
	if cfg.Gemini.FallbackModel != "gemini-2.5-flash-lite" {
		t.Errorf("FallbackModel = %v", cfg.Gemini.FallbackModel)
	}
	if cfg.Gemini.BiasModel != "gemini-2.0-flash-lite" {
		t.Errorf("BiasModel = %v", cfg.Gemini.BiasModel)
	}
	if cfg.Speech.MaxChars != 4500 {
		t.Errorf("MaxChars = %v, want 4500", cfg.Speech.MaxChars)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	unsetEnv(t, EnvAPIKey, EnvSummaryPrompt, EnvBiasPrompt)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
gemini:
  api_key: "file-key"
  summary_prompt: "Summarize this."

document:
  margin: 20
  strip_markdown: false

paths:
  input: "data/input"
  output: "data/output"
  env_file: "` + filepath.Join(dir, "missing.env") + `"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.APIKey != "file-key" {
		t.Errorf("APIKey = %v, want %v", cfg.Gemini.APIKey, "file-key")
	}
	if cfg.Gemini.SummaryPrompt != "Summarize this." {
		t.Errorf("SummaryPrompt = %v", cfg.Gemini.SummaryPrompt)
	}
	if cfg.Document.Margin != 20 {
		t.Errorf("Margin = %v, want 20", cfg.Document.Margin)
	}
	if cfg.Document.StripMarkdown == nil || *cfg.Document.StripMarkdown {
		t.Errorf("StripMarkdown = %v, want false", cfg.Document.StripMarkdown)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
}

func TestLoadSecretsFromEnvFile(t *testing.T) {
	unsetEnv(t, EnvAPIKey, EnvSummaryPrompt)
	t.Setenv(EnvBiasPrompt, "from-process")

	dir := t.TempDir()
	envPath := filepath.Join(dir, "secrets.env")
	env := "GOOGLE_API_KEY=env-file-key\nBIAS_PROMPT=from-file\n"
	if err := os.WriteFile(envPath, []byte(env), 0600); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "config.yaml")
	content := "paths:\n  env_file: \"" + envPath + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.APIKey != "env-file-key" {
		t.Errorf("APIKey = %v, want env-file-key", cfg.Gemini.APIKey)
	}
	// the process environment wins over the env file
	if cfg.Gemini.BiasPrompt != "from-process" {
		t.Errorf("BiasPrompt = %v, want from-process", cfg.Gemini.BiasPrompt)
	}
}

// unsetEnv removes keys for the duration of the test; t.Setenv restores them.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
