package solve

import (
	"fmt"
	"strings"
)

// NoResults is the sentinel rendered when a solve finds nothing.
const NoResults = "No results"

// Format renders sorted candidates as one display string: each entry
// as "WORD (score)", joined by CRLF with no trailing line ending. The
// CRLF separator and the NoResults sentinel match the desktop tool
// whose output callers already parse.
func Format(words []Candidate) string {
	if len(words) == 0 {
		return NoResults
	}
	var b strings.Builder
	for i, c := range words {
		if i > 0 {
			b.WriteString("\r\n")
		}
		fmt.Fprintf(&b, "%s (%d)", c.Word, c.Score)
	}
	return b.String()
}
