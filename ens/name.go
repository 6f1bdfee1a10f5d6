// Package ens provides syntactic validation for name-service domains.
//
// Checks are format-only: a name passing IsValidName is well-formed, not
// necessarily registered or resolvable.
package ens

import "strings"

// IsValidName reports whether s is a syntactically valid, fully-qualified
// name-service domain: dot-separated labels, each non-empty, built from
// lowercase letters, digits and hyphens, with no leading or trailing hyphen.
// A bare label without a dot is not a fully-qualified name.
func IsValidName(s string) bool {
	if s == "" || !strings.Contains(s, ".") {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if !isValidLabel(label) {
			return false
		}
	}
	return true
}

// IsValidLabel reports whether s could serve as a single name label.
func IsValidLabel(s string) bool {
	return isValidLabel(s)
}

// Normalize lowercases a name for comparison and resolution.
// Full UTS-46 normalization is out of scope; dashboard names are ASCII.
func Normalize(s string) string {
	return strings.ToLower(s)
}

func isValidLabel(label string) bool {
	if label == "" {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, c := range label {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
