// Package dictionary loads and indexes the word list a solve request
// runs against. The list is loaded once and is read-only afterwards; a
// patricia trie keyed on the lowercased word gives prefix-constrained
// solves a way to skip most of the list.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is an ordered, immutable word list with a prefix index.
// Duplicate entries are kept: each occurrence is indexed separately so
// solves report them with the same multiplicity the list has.
type Dictionary struct {
	words []string
	trie  *patricia.Trie
}

// New builds a Dictionary over words. The slice is not copied; callers
// hand over ownership and must not mutate it afterwards.
func New(words []string) *Dictionary {
	d := &Dictionary{
		words: words,
		trie:  patricia.NewTrie(),
	}
	for i, word := range words {
		key := patricia.Prefix(strings.ToLower(word))
		if item := d.trie.Get(key); item != nil {
			d.trie.Set(key, append(item.([]int), i))
		} else {
			d.trie.Insert(key, []int{i})
		}
	}
	return d
}

// Load reads a plain-text word list, one word per line. Line endings
// may be LF or CRLF; blank lines are skipped. maxWords caps how many
// entries are kept, with 0 meaning no cap.
func Load(path string, maxWords int) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		words = append(words, word)
		if maxWords > 0 && len(words) >= maxWords {
			log.Debugf("Word cap reached, stopping at %d entries", maxWords)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s", len(words), path)
	return New(words), nil
}

// Words returns the ordered word list. Callers must treat it as
// read-only.
func (d *Dictionary) Words() []string { return d.words }

// Len reports the number of entries, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains checks literal membership, case-insensitively.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Get(patricia.Prefix(strings.ToLower(word))) != nil
}

// VisitPrefix calls fn for every stored occurrence of a word starting
// with prefix (case-insensitive), in its original casing. Visit order
// is the trie's, not list order.
func (d *Dictionary) VisitPrefix(prefix string, fn func(word string) error) error {
	key := patricia.Prefix(strings.ToLower(prefix))
	return d.trie.VisitSubtree(key, func(_ patricia.Prefix, item patricia.Item) error {
		for _, i := range item.([]int) {
			if err := fn(d.words[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
