// Package output renders assistant results as text, markdown, or JSON for
// the non-interactive ask command.
package output
