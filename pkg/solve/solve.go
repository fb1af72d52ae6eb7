/*
Package solve implements the rack-matching engine: deciding which words
of a word list can be assembled from a set of letter tiles, scoring
them, and ordering the results.

A solve runs in three stages. Candidate words are screened by the
optional positional Filters, checked against the Rack for feasibility
(blanks covering any letters the rack is short on, at the cost of the
covered letters' points), and finally sorted under the selected Mode.
Every stage is a pure pass over in-memory data; a solve holds no state
between calls and is safe to run from any goroutine as long as the word
list is not mutated underneath it.
*/
package solve

import (
	"github.com/rackserve/rackserve/pkg/dictionary"
)

// Candidate is one playable result: a word the rack can assemble and
// its adjusted score after blank substitution.
type Candidate struct {
	Word  string
	Score int
}

// Solve runs the engine over an ordered word list. Words are kept with
// the multiplicity they have in the list — duplicates are evaluated and
// emitted independently. The returned slice is sorted under mode and is
// owned by the caller.
func Solve(words []string, rack string, f Filters, mode Mode) []Candidate {
	r := NewRack(rack)
	var out []Candidate
	for _, word := range words {
		if c, ok := evaluate(word, r, f); ok {
			out = append(out, c)
		}
	}
	sortCandidates(out, mode)
	return out
}

// evaluate applies the filters and the feasibility check to one word.
func evaluate(word string, r Rack, f Filters) (Candidate, bool) {
	if !f.Match(word) {
		return Candidate{}, false
	}
	ok, points := r.Fit(word)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{Word: word, Score: points}, true
}

// Solver binds the engine to a loaded Dictionary so repeated requests
// share one immutable word list. When a starts-with filter is present
// it walks the dictionary's prefix index instead of scanning the whole
// list; iteration order differs but the final sort makes the result
// identical.
type Solver struct {
	dict *dictionary.Dictionary
}

// NewSolver creates a Solver over dict.
func NewSolver(dict *dictionary.Dictionary) *Solver {
	return &Solver{dict: dict}
}

// Dictionary returns the word list this solver runs against.
func (s *Solver) Dictionary() *dictionary.Dictionary { return s.dict }

// Solve evaluates one request against the bound dictionary.
func (s *Solver) Solve(rack string, f Filters, mode Mode) []Candidate {
	if f.StartsWith == "" {
		return Solve(s.dict.Words(), rack, f, mode)
	}

	r := NewRack(rack)
	var out []Candidate
	// The visit callback never returns an error, so neither does the walk.
	_ = s.dict.VisitPrefix(f.StartsWith, func(word string) error {
		if c, ok := evaluate(word, r, f); ok {
			out = append(out, c)
		}
		return nil
	})
	sortCandidates(out, mode)
	return out
}
