package solve

import "sort"

// Mode selects the total order applied to solve results.
type Mode uint8

const (
	// ByScore orders by adjusted score, then word length, then
	// lexicographically — all ascending. This is the default.
	ByScore Mode = iota
	// ByLength orders by word length, then lexicographically, ascending.
	ByLength
)

// ParseMode maps a user-facing mode name to a Mode. Unknown or empty
// names fall back to ByScore, mirroring the default radio selection of
// the desktop tool this replaces.
func ParseMode(name string) Mode {
	switch name {
	case "length", "len":
		return ByLength
	default:
		return ByScore
	}
}

func (m Mode) String() string {
	if m == ByLength {
		return "length"
	}
	return "score"
}

// sortCandidates orders results in place. The order is ascending on
// every key: the historical behavior surfaces the lowest-value matches
// first, and callers depending on output compatibility rely on it.
func sortCandidates(words []Candidate, mode Mode) {
	sort.Slice(words, func(i, j int) bool {
		a, b := words[i], words[j]
		if mode == ByScore && a.Score != b.Score {
			return a.Score < b.Score
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) < len(b.Word)
		}
		return a.Word < b.Word
	})
}
