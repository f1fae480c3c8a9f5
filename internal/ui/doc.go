// Package ui provides the interactive prompts for the assistant session:
// a bubbletea list menu and spinner on real terminals, and a numbered
// line-oriented fallback everywhere else.
package ui
