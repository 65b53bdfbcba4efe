// Package slug turns display names into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
)

var (
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
	edgeDashes = regexp.MustCompile(`^-+|-+$`)
)

// Generate lowercases and trims s, strips everything but word characters,
// whitespace and hyphens, collapses runs of whitespace/underscores/hyphens
// into a single hyphen and trims hyphens from both ends.
//
// Generate(Generate(s)) == Generate(s) for every s.
func Generate(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return edgeDashes.ReplaceAllString(s, "")
}

// Normalize applies the light cleanup stored slugs receive on write:
// trimmed and lowercased, but otherwise untouched.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
