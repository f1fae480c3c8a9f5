package langdetect

import "strings"

// Unknown is returned when no language marker matches.
const Unknown = "Unknown"

// Supported returns the languages the assistant accepts.
func Supported() []string {
	return []string{"Python", "Rust", "JavaScript", "C++", "Java"}
}

// IsSupported reports whether lang names a supported language,
// ignoring ASCII case.
func IsSupported(lang string) bool {
	for _, l := range Supported() {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}

// Detect guesses the language of a code snippet from cheap syntactic
// markers. First match wins, checked in a fixed order, so mixed snippets
// resolve the same way every run.
func Detect(code string) string {
	switch {
	case strings.Contains(code, "#include"):
		return "C++"
	case strings.Contains(code, "fn main()"):
		return "Rust"
	case strings.Contains(code, "def "):
		return "Python"
	case strings.Contains(code, "function") || strings.Contains(code, "console.log"):
		return "JavaScript"
	case strings.Contains(code, "public static void main"):
		return "Java"
	default:
		return Unknown
	}
}

// Matches reports whether the detected language of code equals lang,
// ignoring ASCII case. Undetectable code never matches.
func Matches(code, lang string) bool {
	return strings.EqualFold(Detect(code), lang)
}
