// Package config handles loading, merging, and persisting sidekick
// configuration.
//
// Precedence, lowest to highest: built-in defaults, the JSON config file in
// the platform config directory, SIDEKICK_* environment variables, CLI flag
// overrides.
package config
