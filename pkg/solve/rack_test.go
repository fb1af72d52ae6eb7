package solve

import "testing"

func TestNewRack(t *testing.T) {
	r := NewRack("TAC?a- 9t")

	if got := r.Tiles(); got != 6 {
		t.Errorf("Tiles() = %d, want 6 (punctuation and digits ignored)", got)
	}
	if got := r.Blanks(); got != 1 {
		t.Errorf("Blanks() = %d, want 1", got)
	}
	if r.counts['A'-'A'] != 2 {
		t.Errorf("count of A = %d, want 2 (case folded)", r.counts[0])
	}
	if r.counts['T'-'A'] != 2 {
		t.Errorf("count of T = %d, want 2", r.counts['T'-'A'])
	}
}

func TestNewRackEmpty(t *testing.T) {
	r := NewRack("")
	if r.Tiles() != 0 {
		t.Errorf("empty rack has %d tiles, want 0", r.Tiles())
	}
	if ok, _ := r.Fit("A"); ok {
		t.Error("empty rack should not fit any word")
	}
}

func TestRackFit(t *testing.T) {
	testCases := []struct {
		rack  string
		word  string
		fits  bool
		score int
		desc  string
	}{
		{"TAC", "CAT", true, 5, "exact tiles, full score"},
		{"TAC", "ACT", true, 5, "anagram of the rack"},
		{"TAC", "DOG", false, 0, "no matching tiles"},
		{"TACX", "CAT", true, 5, "spare tiles stay unused"},
		{"CA?", "CAT", true, 4, "blank covers T, T's point lost"},
		{"??", "QI", true, 0, "all blanks score zero"},
		{"CA", "CAT", false, 0, "short one letter, no blanks"},
		{"C?", "CAT", false, 0, "one blank cannot cover two deficits"},
		{"A?", "AA", true, 1, "blank covers a repeated letter"},
		{"tac", "CAT", true, 5, "rack case folded"},
		{"ZZ?", "ZZZ", true, 20, "blank covers third Z, ten points lost"},
	}

	for _, tc := range testCases {
		r := NewRack(tc.rack)
		fits, score := r.Fit(tc.word)
		if fits != tc.fits {
			t.Errorf("%s: Fit(%q) on rack %q = %v, want %v", tc.desc, tc.word, tc.rack, fits, tc.fits)
			continue
		}
		if fits && score != tc.score {
			t.Errorf("%s: Fit(%q) on rack %q score = %d, want %d", tc.desc, tc.word, tc.rack, score, tc.score)
		}
	}
}

// A word needing no blanks always keeps its base score, and the blank
// budget decides feasibility by the total deficit alone.
func TestRackFitDeficitBudget(t *testing.T) {
	words := []string{"BANANA", "EFFETE", "PIZZAZZ", "LETTERS"}
	for _, word := range words {
		r := NewRack(word)
		fits, score := r.Fit(word)
		if !fits || score != WordScore(word) {
			t.Errorf("rack made of %q should fit it at base score %d, got (%v, %d)",
				word, WordScore(word), fits, score)
		}
	}

	// BANANA from "BNN" needs A+A+A = 3 blanks exactly.
	if ok, _ := NewRack("BNN???").Fit("BANANA"); !ok {
		t.Error("three blanks should cover a total deficit of three")
	}
	if ok, _ := NewRack("BNN??").Fit("BANANA"); ok {
		t.Error("two blanks must not cover a total deficit of three")
	}
}
