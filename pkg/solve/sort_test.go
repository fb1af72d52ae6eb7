package solve

import (
	"reflect"
	"testing"
)

func TestSortByScore(t *testing.T) {
	words := []Candidate{
		{"ZA", 11},
		{"CAT", 5},
		{"ACT", 5},
		{"AT", 2},
		{"TA", 2},
	}
	sortCandidates(words, ByScore)

	expected := []Candidate{
		{"AT", 2},
		{"TA", 2},
		{"ACT", 5},
		{"CAT", 5},
		{"ZA", 11},
	}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("ByScore order = %v, want %v", words, expected)
	}
}

func TestSortByScoreLengthTieBreak(t *testing.T) {
	// Same score, different lengths: shorter first.
	words := []Candidate{
		{"AAAA", 4},
		{"FA", 4},
	}
	sortCandidates(words, ByScore)
	if words[0].Word != "FA" {
		t.Errorf("equal scores should tie-break on length, got %v", words)
	}
}

func TestSortByLength(t *testing.T) {
	words := []Candidate{
		{"CAT", 5},
		{"ZA", 11},
		{"ACT", 5},
		{"AT", 2},
	}
	sortCandidates(words, ByLength)

	expected := []Candidate{
		{"AT", 2},
		{"ZA", 11},
		{"ACT", 5},
		{"CAT", 5},
	}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("ByLength order = %v, want %v", words, expected)
	}
}

// The comparator is a total order: for distinct candidates exactly one
// direction compares less.
func TestSortTotalOrder(t *testing.T) {
	candidates := []Candidate{
		{"AT", 2}, {"TA", 2}, {"ACT", 5}, {"CAT", 5}, {"ZA", 11}, {"QI", 11},
	}
	for _, mode := range []Mode{ByScore, ByLength} {
		less := func(a, b Candidate) bool {
			if mode == ByScore && a.Score != b.Score {
				return a.Score < b.Score
			}
			if len(a.Word) != len(b.Word) {
				return len(a.Word) < len(b.Word)
			}
			return a.Word < b.Word
		}
		for i, a := range candidates {
			for j, b := range candidates {
				if i == j {
					continue
				}
				if less(a, b) == less(b, a) {
					t.Errorf("mode %v: %v and %v do not order totally", mode, a, b)
				}
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		name string
		want Mode
	}{
		{"score", ByScore},
		{"length", ByLength},
		{"len", ByLength},
		{"", ByScore},
		{"garbage", ByScore},
	}
	for _, tc := range testCases {
		if got := ParseMode(tc.name); got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
