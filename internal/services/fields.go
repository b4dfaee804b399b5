package services

import "strings"

// Input fields are pointers so that a field absent from the request
// body (nil) can be told apart from one explicitly set to the empty
// string. Updates skip plain string fields unless non-empty, but write
// optional link/date fields whenever present, so an explicit "" clears
// them. This mirrors the contract the front end was built against.

// blank reports whether a required string field is missing or empty.
// Whitespace-only values pass; they are trimmed on the way to storage.
func blank(p *string) bool {
	return p == nil || *p == ""
}

// optional resolves an optional string field to its trimmed value,
// defaulting to empty when absent.
func optional(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// trimmed returns s with each element trimmed.
func trimmed(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// trimmedOrEmpty resolves an optional list field, defaulting to an
// empty list when absent.
func trimmedOrEmpty(p *[]string) []string {
	if p == nil {
		return []string{}
	}
	return trimmed(*p)
}
