package config

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "azure" {
		t.Errorf("Default provider = %q, want %q", cfg.Provider, "azure")
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Default temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.TopP != 0.95 {
		t.Errorf("Default topP = %v, want 0.95", cfg.TopP)
	}
	if cfg.MaxTokens != 500 {
		t.Errorf("Default maxTokens = %d, want 500", cfg.MaxTokens)
	}
	if cfg.CodeFile != "code_input.txt" {
		t.Errorf("Default codeFile = %q, want %q", cfg.CodeFile, "code_input.txt")
	}
	if cfg.Cache.Limit != 10 {
		t.Errorf("Default cache limit = %d, want 10", cfg.Cache.Limit)
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("SIDEKICK_PROVIDER", "openai")
	t.Setenv("SIDEKICK_MODEL", "gpt-4o")
	t.Setenv("SIDEKICK_LANGUAGE", "Rust")
	t.Setenv("SIDEKICK_FORMAT", "json")
	t.Setenv("SIDEKICK_CACHE_PATH", "/tmp/cache.json")
	t.Setenv("SIDEKICK_MAX_TOKENS", "800")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gpt-4o")
	}
	if cfg.Language != "Rust" {
		t.Errorf("Language = %q, want %q", cfg.Language, "Rust")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Cache.Path != "/tmp/cache.json" {
		t.Errorf("Cache.Path = %q, want %q", cfg.Cache.Path, "/tmp/cache.json")
	}
	if cfg.MaxTokens != 800 {
		t.Errorf("MaxTokens = %d, want 800", cfg.MaxTokens)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	overrides := map[string]string{
		"provider":  "ollama",
		"model":     "llama3.1",
		"language":  "Python",
		"format":    "markdown",
		"cachePath": "/tmp/c.json",
		"maxTokens": "256",
	}
	mergeOverrides(&cfg, overrides)

	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "ollama")
	}
	if cfg.Model != "llama3.1" {
		t.Errorf("Model = %q, want %q", cfg.Model, "llama3.1")
	}
	if cfg.Language != "Python" {
		t.Errorf("Language = %q, want %q", cfg.Language, "Python")
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want %q", cfg.Format, "markdown")
	}
	if cfg.Cache.Path != "/tmp/c.json" {
		t.Errorf("Cache.Path = %q, want %q", cfg.Cache.Path, "/tmp/c.json")
	}
	if cfg.MaxTokens != 256 {
		t.Errorf("MaxTokens = %d, want 256", cfg.MaxTokens)
	}
}

func TestMergeFile(t *testing.T) {
	cfg := Default()
	mergeFile(&cfg, Config{
		Provider: "openai",
		Cache:    CacheConfig{Limit: 25},
	})
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.Cache.Limit != 25 {
		t.Errorf("Cache.Limit = %d, want 25", cfg.Cache.Limit)
	}
	// Fields unset in the file keep defaults.
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want default", cfg.Model)
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("A zero privacy block must not disable redaction")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "model", "gpt-4o"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gpt-4o")
	}

	if err := SetField(&cfg, "cacheLimit", "20"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Cache.Limit != 20 {
		t.Errorf("Cache.Limit = %d, want 20", cfg.Cache.Limit)
	}

	if err := SetField(&cfg, "cacheLimit", "lots"); err == nil {
		t.Error("SetField should reject non-integer cacheLimit")
	}
	if err := SetField(&cfg, "temperature", "0.3"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", cfg.Temperature)
	}
	if err := SetField(&cfg, "nope", "x"); err == nil {
		t.Error("SetField should reject unknown keys")
	}
}
