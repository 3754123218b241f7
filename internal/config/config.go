package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets from the config file.
const (
	EnvAPIKey        = "GOOGLE_API_KEY"
	EnvSummaryPrompt = "SUMMARY_PROMPT"
	EnvBiasPrompt    = "BIAS_PROMPT"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Speech      SpeechConfig      `yaml:"speech"`
	Document    DocumentConfig    `yaml:"document"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Language    LanguageConfig    `yaml:"language"`
}

type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type GeminiConfig struct {
	APIKey        string `yaml:"api_key"`
	Model         string `yaml:"model"`
	FallbackModel string `yaml:"fallback_model"`
	BiasModel     string `yaml:"bias_model"`
	SummaryPrompt string `yaml:"summary_prompt"`
	BiasPrompt    string `yaml:"bias_prompt"`
}

type SpeechConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	MaxChars       int    `yaml:"max_chars"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DocumentConfig struct {
	Margin          float64 `yaml:"margin"`
	FontFamily      string  `yaml:"font_family"`
	FontSize        float64 `yaml:"font_size"`
	LineHeight      float64 `yaml:"line_height"`
	BlankLineHeight float64 `yaml:"blank_line_height"`
	PageSize        string  `yaml:"page_size"`
	StripMarkdown   *bool   `yaml:"strip_markdown"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	EnvFile  string `yaml:"env_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LanguageConfig struct {
	Default string `yaml:"default"`
}

// Load reads the YAML file at path, resolves secrets from the environment
// (falling back to a local .env file) and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.ResolveSecrets(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolveSecrets fills secrets from the process environment. Variables missing
// there are looked up in the env file, which never overrides the environment.
func (c *Config) ResolveSecrets() error {
	envFile := c.Paths.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(EnvSummaryPrompt); v != "" {
		c.Gemini.SummaryPrompt = v
	}
	if v := os.Getenv(EnvBiasPrompt); v != "" {
		c.Gemini.BiasPrompt = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (or set %s)", EnvAPIKey)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Document.Margin < 0 {
		return fmt.Errorf("document.margin must not be negative")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 20 << 20
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-flash-latest"
	}
	if c.Gemini.FallbackModel == "" {
		c.Gemini.FallbackModel = "gemini-2.5-flash-lite"
	}
	if c.Gemini.BiasModel == "" {
		c.Gemini.BiasModel = "gemini-2.0-flash-lite"
	}
	if c.Speech.BinaryPath == "" {
		c.Speech.BinaryPath = "gtts-cli"
	}
	if c.Speech.MaxChars == 0 {
		c.Speech.MaxChars = 4500
	}
	if c.Speech.TimeoutSeconds == 0 {
		c.Speech.TimeoutSeconds = 60
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Language.Default == "" {
		c.Language.Default = "en"
	}

	return nil
}
