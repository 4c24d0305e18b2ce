package middleware

// identity.go holds small helpers shared across middleware files.

import "strings"

// equalEmail compares two email addresses case-insensitively after
// trimming surrounding whitespace.
func equalEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
