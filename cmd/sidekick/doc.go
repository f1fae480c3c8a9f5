// Sidekick is an AI code assistant CLI.
//
// It forwards code to an LLM chat endpoint for one of four tasks and caches
// every reply by its exact prompt, so repeating a request costs nothing.
//
// Usage:
//
//	sidekick chat                     # interactive session (menu loop)
//	sidekick ask explain < main.py    # one-shot task, code from stdin
//	sidekick ask refactor --file x.rs # one-shot task, code from a file
//	sidekick cache show               # cache statistics
//	sidekick config init              # write a default config file
//
// The cache lives in a single JSON file (api_cache.json) in the per-user
// cache directory and holds the ten most recent prompt/response pairs.
package main
