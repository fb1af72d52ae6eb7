package solve

// letterValues holds the standard Scrabble point value for each letter,
// indexed A=0 through Z=25.
var letterValues = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

// LetterValue returns the point value of a single letter.
// Lookup is case-insensitive; anything outside A-Z is worth 0.
func LetterValue(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return letterValues[c-'A']
	case c >= 'a' && c <= 'z':
		return letterValues[c-'a']
	default:
		return 0
	}
}

// WordScore sums the letter values of word. Unrecognized characters
// contribute nothing, so scoring never fails on odd input.
func WordScore(word string) int {
	points := 0
	for i := 0; i < len(word); i++ {
		points += LetterValue(word[i])
	}
	return points
}
