package util

import "strings"

// CleanText collapses runs of whitespace (including NBSP) to single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// IsBlank reports whether every value is empty after cleaning.
func IsBlank(values []string) bool {
	for _, v := range values {
		if CleanText(v) != "" {
			return false
		}
	}
	return true
}
