package cache

// DefaultLimit is the number of entries a cache holds before inserts start
// evicting. Matches the bound the on-disk file has always been written with.
const DefaultLimit = 10

// Entry is a single cached prompt/response pair. The prompt is the full
// rendered request text and acts as the lookup key.
type Entry struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

// Cache is a bounded, insertion-ordered collection of prompt/response pairs.
// The oldest entry sits at the front and is the eviction candidate. Eviction
// is strict FIFO: lookups never refresh an entry's age.
//
// A Cache is not safe for concurrent use. The session owns it for the whole
// process lifetime: one Load at startup, in-place inserts, one Save at exit.
type Cache struct {
	entries []Entry
	limit   int
}

// New returns an empty cache. A limit <= 0 falls back to DefaultLimit.
func New(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Cache{limit: limit}
}

// Lookup scans entries oldest-first and returns the response of the first
// entry whose prompt is byte-equal to the argument. It has no side effects.
//
// Because Insert never deduplicates, a prompt inserted twice keeps serving
// the older response until that entry is evicted. Lookup deliberately does
// not prefer the newest match; existing cache files were written under that
// contract. The package tests assert it explicitly.
func (c *Cache) Lookup(prompt string) (string, bool) {
	for _, e := range c.entries {
		if e.Prompt == prompt {
			return e.Response, true
		}
	}
	return "", false
}

// Insert appends a prompt/response pair. If the cache already holds limit or
// more entries, exactly one entry (the oldest) is removed first, so a cache
// loaded oversized shrinks by at most one per insert.
func (c *Cache) Insert(prompt, response string) {
	if len(c.entries) >= c.limit {
		c.entries = c.entries[1:]
	}
	c.entries = append(c.entries, Entry{Prompt: prompt, Response: response})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Limit returns the configured capacity.
func (c *Cache) Limit() int {
	return c.limit
}

// Entries returns a copy of the entries, oldest first.
func (c *Cache) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Stats describes the cache contents.
type Stats struct {
	Entries     int `json:"entries"`
	Limit       int `json:"limit"`
	PromptBytes int `json:"promptBytes"`
	ResultBytes int `json:"resultBytes"`
}

// GetStats returns information about the in-memory cache.
func (c *Cache) GetStats() Stats {
	stats := Stats{Entries: len(c.entries), Limit: c.limit}
	for _, e := range c.entries {
		stats.PromptBytes += len(e.Prompt)
		stats.ResultBytes += len(e.Response)
	}
	return stats
}
