// Package assist implements the interactive assistant session.
//
// A Session wires the pieces together: it renders one of four fixed task
// prompts, consults the prompt cache before calling the provider, and
// inserts fresh replies for reuse. The cache travels through the session by
// reference; persistence (one load at startup, one save at exit) belongs to
// the caller.
package assist
