// Package cli wires the cobra commands: the interactive chat session, the
// one-shot ask command, and the cache, config, and models management
// commands. Command handlers set an exit code instead of calling os.Exit so
// deferred cleanup (notably the cache save) always runs.
package cli
