package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_AbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")
	c, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error on absent file: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")

	c := New(DefaultLimit)
	c.Insert("first prompt", "first response")
	c.Insert("second prompt", "second response")
	c.Insert("third prompt", "third response")

	if err := c.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := c.Entries()
	got := loaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("loaded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSave_OverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")

	c := New(DefaultLimit)
	c.Insert("a", "1")
	c.Insert("b", "2")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	c2 := New(DefaultLimit)
	c2.Insert("c", "3")
	if err := c2.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (save replaces, never merges)", loaded.Len())
	}
	if got, _ := loaded.Lookup("c"); got != "3" {
		t.Errorf("Lookup(c) = %q, want %q", got, "3")
	}
}

func TestLoad_LegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")
	if err := os.WriteFile(path, []byte(`{"a": "1", "b": "2"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error on legacy file: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if got, ok := c.Lookup("a"); !ok || got != "1" {
		t.Errorf("Lookup(a) = %q, %v, want %q, true", got, ok, "1")
	}
	if got, ok := c.Lookup("b"); !ok || got != "2" {
		t.Errorf("Lookup(b) = %q, %v, want %q, true", got, ok, "2")
	}
}

func TestLoad_LegacyUpgradedOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")
	if err := os.WriteFile(path, []byte(`{"old prompt": "old response"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := c.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// The rewritten file must be current-format.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"entries"`) {
		t.Errorf("saved file is not current format: %s", data)
	}

	again, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error after upgrade: %v", err)
	}
	if got, _ := again.Lookup("old prompt"); got != "old response" {
		t.Errorf("Lookup = %q, want %q", got, "old response")
	}
}

func TestLoad_MalformedFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"entries key with wrong type", `{"entries": "not-a-list"}`},
		{"entries key with object value", `{"entries": {"a": "1"}}`},
		{"top-level array", `[{"prompt": "a", "response": "1"}]`},
		{"not json at all", `garbage`},
		{"bare null", `null`},
		{"legacy with non-string value", `{"a": 1}`},
		{"entry with wrong field types", `{"entries": [{"prompt": 1, "response": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "api_cache.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, DefaultLimit); err == nil {
				t.Errorf("Load(%s) succeeded, want error", tt.content)
			}
		})
	}
}

func TestLoad_OversizedFileAcceptedUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")

	// Write a file holding more entries than the limit allows.
	big := New(100)
	for i := 0; i < 15; i++ {
		big.Insert(strings.Repeat("p", i+1), "r")
	}
	if err := big.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	c, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Len() != 15 {
		t.Errorf("Len = %d, want 15 (no re-trim on load)", c.Len())
	}

	// Inserting removes exactly one oldest entry per call.
	c.Insert("new", "entry")
	if c.Len() != 15 {
		t.Errorf("Len = %d after insert, want 15", c.Len())
	}
}

func TestLoad_EmptyObjectIsEmptyLegacyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path, DefaultLimit)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "api_cache.json")
	c := New(DefaultLimit)
	c.Insert("a", "1")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestSave_WriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the write fail.
	target := filepath.Join(dir, "api_cache.json")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	c := New(DefaultLimit)
	c.Insert("a", "1")
	if err := c.Save(target); err == nil {
		t.Error("Save to a directory path should fail")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", "sidekick", FileName)
	if path != want {
		t.Errorf("DefaultPath = %q, want %q", path, want)
	}
}
