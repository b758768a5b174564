package domain

import (
	"regexp"
	"strings"
)

// allowedTextPattern restricts sanitized free-text fields to word characters,
// spaces, accented Latin letters, hyphens, and periods. Whitespace runs have
// already been collapsed to single spaces by the time this is checked.
var allowedTextPattern = regexp.MustCompile(`^[\pL\pN_ .\-]+$`)

// Sanitize returns the canonical form of a free-text field: lowercased,
// leading/trailing whitespace trimmed, and internal whitespace runs collapsed
// to a single space. Sanitize is idempotent.
func Sanitize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// SanitizeText sanitizes a free-text field and validates the result.
// It returns a FieldError for the given field name if the sanitized text is
// empty or contains characters outside the allowed set.
func SanitizeText(field, raw string) (string, error) {
	s := Sanitize(raw)
	if s == "" {
		return "", NewFieldError(field, "must have at least 1 character")
	}
	if !allowedTextPattern.MatchString(s) {
		return "", NewFieldError(field, "contains invalid characters")
	}
	return s, nil
}
