package utils

import "strings"

// HasPrefixFold checks if s starts with prefix, case-insensitively.
func HasPrefixFold(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold checks if s ends with suffix, case-insensitively.
// A suffix longer than s is never a match; the length guard matters
// because the comparison start index would otherwise go negative.
func HasSuffixFold(s, suffix string) bool {
	if len(suffix) > len(s) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// ContainsFold checks if substr occurs anywhere in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// IsValidRack checks if input holds at least one usable tile character
// (a letter or the '?' blank marker). Anything else on the rack is
// ignored by the solver, so a rack with no usable tiles can never
// produce results.
func IsValidRack(input string) bool {
	for i := 0; i < len(input); i++ {
		c := input[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '?' {
			return true
		}
	}
	return false
}
