package solve

import "github.com/rackserve/rackserve/internal/utils"

// Filters holds the optional positional constraints applied to
// candidate words before feasibility checking. An empty string means
// no constraint. All comparisons are case-insensitive.
type Filters struct {
	StartsWith string
	EndsWith   string
	Contains   string
}

// Enabled reports whether any constraint is set.
func (f Filters) Enabled() bool {
	return f.StartsWith != "" || f.EndsWith != "" || f.Contains != ""
}

// Match reports whether word satisfies every enabled constraint.
// A word shorter than a prefix or suffix filter fails that filter.
func (f Filters) Match(word string) bool {
	if f.StartsWith != "" && !utils.HasPrefixFold(word, f.StartsWith) {
		return false
	}
	if f.EndsWith != "" && !utils.HasSuffixFold(word, f.EndsWith) {
		return false
	}
	if f.Contains != "" && !utils.ContainsFold(word, f.Contains) {
		return false
	}
	return true
}
