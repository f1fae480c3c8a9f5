// Package cache provides the bounded, persistent prompt cache that backs
// the assistant session.
//
// Entries are full rendered prompt strings paired with the model's verbatim
// reply, kept in insertion order. The cache holds at most a fixed number of
// entries (ten by default); inserting into a full cache evicts the oldest
// entry first. Eviction is FIFO, not LRU — reading an entry does not keep
// it alive.
//
// The cache persists as a single JSON file (api_cache.json). Load accepts
// both the current {"entries": [...]} shape and the legacy flat
// prompt->response object, which is upgraded in memory and rewritten in the
// current shape on the next save. A file matching neither shape is a load
// error: silently discarding a user's accumulated cache would be worse than
// failing loudly.
package cache
