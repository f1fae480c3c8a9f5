package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the sidekick configuration.
type Config struct {
	Provider    string        `json:"provider"`
	Model       string        `json:"model"`
	Endpoint    string        `json:"endpoint,omitempty"`
	Language    string        `json:"language,omitempty"`
	Format      string        `json:"format"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"topP"`
	MaxTokens   int           `json:"maxTokens"`
	CodeFile    string        `json:"codeFile"`
	Cache       CacheConfig   `json:"cache"`
	Privacy     PrivacyConfig `json:"privacy"`
}

// CacheConfig controls the prompt cache.
type CacheConfig struct {
	Path  string `json:"path,omitempty"`
	Limit int    `json:"limit"`
}

// PrivacyConfig controls secret redaction of outgoing code.
type PrivacyConfig struct {
	RedactSecrets bool `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:    "azure",
		Model:       "gpt-4o-mini",
		Format:      "text",
		Temperature: 0.7,
		TopP:        0.95,
		MaxTokens:   500,
		CodeFile:    "code_input.txt",
		Cache: CacheConfig{
			Limit: 10,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for sidekick.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sidekick"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "sidekick"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "sidekick"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "sidekick"), nil
	default:
		return filepath.Join(home, ".config", "sidekick"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Temperature > 0 {
		dst.Temperature = src.Temperature
	}
	if src.TopP > 0 {
		dst.TopP = src.TopP
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.CodeFile != "" {
		dst.CodeFile = src.CodeFile
	}
	if src.Cache.Path != "" {
		dst.Cache.Path = src.Cache.Path
	}
	if src.Cache.Limit > 0 {
		dst.Cache.Limit = src.Cache.Limit
	}
	// JSON zero value for bool can't distinguish unset from false, so a file
	// can only turn redaction on, never silently off.
	dst.Privacy.RedactSecrets = src.Privacy.RedactSecrets || dst.Privacy.RedactSecrets
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("SIDEKICK_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("SIDEKICK_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SIDEKICK_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SIDEKICK_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("SIDEKICK_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SIDEKICK_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("SIDEKICK_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["endpoint"]; ok && v != "" {
		cfg.Endpoint = v
	}
	if v, ok := overrides["language"]; ok && v != "" {
		cfg.Language = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["cachePath"]; ok && v != "" {
		cfg.Cache.Path = v
	}
	if v, ok := overrides["maxTokens"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "endpoint":
		cfg.Endpoint = value
	case "language":
		cfg.Language = value
	case "format":
		cfg.Format = value
	case "codeFile":
		cfg.CodeFile = value
	case "cachePath":
		cfg.Cache.Path = value
	case "cacheLimit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cacheLimit must be an integer: %w", err)
		}
		cfg.Cache.Limit = n
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "topP":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("topP must be a number: %w", err)
		}
		cfg.TopP = f
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
