package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// FileName is the default name of the persisted cache file.
const FileName = "api_cache.json"

// fileFormat is the current on-disk shape: an ordered entry list.
type fileFormat struct {
	Entries []Entry `json:"entries"`
}

// Load reads a cache from path.
//
// An absent file is not an error and yields an empty cache. An existing file
// must match one of two shapes: the current ordered-list format, or the
// legacy flat prompt->response object written by old releases. A top-level
// object that carries an "entries" key is treated as current-format no
// matter what: if the key does not decode as an entry list the file is
// malformed and Load fails rather than guessing. Legacy entries carry no
// order, so they are migrated sorted by prompt for determinism.
//
// Load never re-validates the stored length against limit; a pre-existing
// oversized file is returned unchanged and shrinks through later inserts.
func Load(path string, limit int) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(limit), nil
		}
		return nil, fmt.Errorf("reading cache file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing cache file %s: %w", path, err)
	}
	if raw == nil {
		// A bare JSON null decodes into a nil map without error.
		return nil, fmt.Errorf("parsing cache file %s: not a recognized cache format", path)
	}

	c := New(limit)

	if entriesRaw, ok := raw["entries"]; ok {
		if err := json.Unmarshal(entriesRaw, &c.entries); err != nil {
			return nil, fmt.Errorf("parsing cache file %s: %w", path, err)
		}
		return c, nil
	}

	// Legacy format: flat prompt -> response object.
	var legacy map[string]string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("parsing cache file %s: not a recognized cache format: %w", path, err)
	}
	prompts := make([]string, 0, len(legacy))
	for p := range legacy {
		prompts = append(prompts, p)
	}
	sort.Strings(prompts)
	for _, p := range prompts {
		c.entries = append(c.entries, Entry{Prompt: p, Response: legacy[p]})
	}
	return c, nil
}

// Save writes the cache to path in the current format, replacing any
// existing file in full. Legacy-format files are upgraded on their first
// save this way. Write failures propagate; the caller decides whether
// losing the session's cache is fatal.
func (c *Cache) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(fileFormat{Entries: c.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// DefaultPath returns the platform-appropriate location for the cache file.
func DefaultPath() (string, error) {
	dir, err := defaultCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

func defaultCacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "sidekick"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "sidekick"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "sidekick", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "sidekick", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "sidekick"), nil
	}
}
