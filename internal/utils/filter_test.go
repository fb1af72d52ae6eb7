package utils

import "testing"

func TestHasPrefixFold(t *testing.T) {
	testCases := []struct {
		s, prefix string
		want      bool
	}{
		{"CAT", "CA", true},
		{"CAT", "ca", true},
		{"cat", "CA", true},
		{"CAT", "AT", false},
		{"CAT", "", true},
		{"GO", "GONE", false},
	}
	for _, tc := range testCases {
		if got := HasPrefixFold(tc.s, tc.prefix); got != tc.want {
			t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tc.s, tc.prefix, got, tc.want)
		}
	}
}

func TestHasSuffixFold(t *testing.T) {
	testCases := []struct {
		s, suffix string
		want      bool
	}{
		{"CAT", "AT", true},
		{"CAT", "at", true},
		{"cat", "AT", true},
		{"CAT", "CA", false},
		{"CAT", "", true},
		// Longer suffix than the word must be a clean non-match.
		{"GO", "INGS", false},
		{"", "A", false},
	}
	for _, tc := range testCases {
		if got := HasSuffixFold(tc.s, tc.suffix); got != tc.want {
			t.Errorf("HasSuffixFold(%q, %q) = %v, want %v", tc.s, tc.suffix, got, tc.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	testCases := []struct {
		s, substr string
		want      bool
	}{
		{"CAT", "A", true},
		{"CAT", "at", true},
		{"CAT", "cat", true},
		{"CAT", "TAC", false},
		{"CAT", "", true},
	}
	for _, tc := range testCases {
		if got := ContainsFold(tc.s, tc.substr); got != tc.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tc.s, tc.substr, got, tc.want)
		}
	}
}

func TestIsValidRack(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"TAC", true},
		{"tac", true},
		{"???", true},
		{"T A-C", true},
		{"", false},
		{"123", false},
		{"- .,", false},
	}
	for _, tc := range testCases {
		if got := IsValidRack(tc.input); got != tc.want {
			t.Errorf("IsValidRack(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
