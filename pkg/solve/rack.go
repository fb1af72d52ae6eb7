package solve

// Wildcard is the rack character that stands in for a blank tile.
// A blank can cover any letter but contributes zero points.
const Wildcard = '?'

// Rack is the frequency distribution of a tile rack: one count per
// letter plus the number of blanks. Build one with NewRack; the zero
// value is an empty rack.
type Rack struct {
	counts [26]int
	blanks int
}

// NewRack builds a Rack from raw user input. Letters are counted
// case-insensitively, the Wildcard marker counts as a blank, and every
// other character is ignored so stray spaces or punctuation never fail
// a solve.
func NewRack(input string) Rack {
	var r Rack
	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c >= 'A' && c <= 'Z':
			r.counts[c-'A']++
		case c >= 'a' && c <= 'z':
			r.counts[c-'a']++
		case c == Wildcard:
			r.blanks++
		}
	}
	return r
}

// Tiles reports the number of recognized tiles on the rack, blanks
// included.
func (r Rack) Tiles() int {
	n := r.blanks
	for _, c := range r.counts {
		n += c
	}
	return n
}

// Blanks reports the number of blank tiles on the rack.
func (r Rack) Blanks() int { return r.blanks }

// letterCounts is the 26-slot frequency distribution of a single word,
// counted case-insensitively. Non-letter characters are skipped.
func letterCounts(word string) [26]int {
	var freq [26]int
	for i := 0; i < len(word); i++ {
		switch c := word[i]; {
		case c >= 'A' && c <= 'Z':
			freq[c-'A']++
		case c >= 'a' && c <= 'z':
			freq[c-'a']++
		}
	}
	return freq
}

// Fit decides whether word can be assembled from the rack and, if so,
// returns its adjusted score. Each letter the rack is short on must be
// covered by a blank; blanks score zero, so the adjusted score drops by
// the value of every blank-covered tile. The scan runs in alphabetical
// order and bails on the first deficit the blank budget cannot fund —
// only the total deficit matters, so the order never changes the
// outcome.
func (r Rack) Fit(word string) (bool, int) {
	freq := letterCounts(word)
	blanks := r.blanks
	points := WordScore(word)
	for i := 0; i < 26; i++ {
		deficit := freq[i] - r.counts[i]
		if deficit <= 0 {
			continue
		}
		if blanks < deficit {
			return false, 0
		}
		blanks -= deficit
		points -= letterValues[i] * deficit
	}
	return true, points
}
