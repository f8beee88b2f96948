// Package solver finds dictionary words that can be spelled from a rack of
// letters and shapes them into grouped or flat solve responses.
package solver

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/kedare/wordsmith/internal/logger"
)

//go:embed words.txt
var builtinWords string

// Dictionary is the set of playable words, stored in a patricia trie so that
// generation can prune any prefix no word starts with.
type Dictionary struct {
	trie *patricia.Trie
	size int
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{trie: patricia.NewTrie()}
}

// Add inserts word after lower-casing it. Words with characters outside a-z are skipped.
func (d *Dictionary) Add(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !isAlpha(word) {
		return false
	}

	if d.trie.Insert(patricia.Prefix(word), struct{}{}) {
		d.size++

		return true
	}

	return false
}

// Contains reports whether word is playable.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Match(patricia.Prefix(strings.ToLower(word)))
}

// HasPrefix reports whether any word starts with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.trie.MatchSubtree(patricia.Prefix(prefix))
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return d.size
}

// LoadDictionary reads one word per line from r. Blank lines and lines
// starting with '#' are ignored.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	skipped := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !d.Add(line) {
			skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	if skipped > 0 {
		logger.Log.Debugf("Skipped %d duplicate or non-alphabetic dictionary entries", skipped)
	}

	return d, nil
}

// LoadFile loads a dictionary from path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() { _ = f.Close() }()

	d, err := LoadDictionary(f)
	if err != nil {
		return nil, err
	}

	logger.Log.Debugf("Loaded %d words from %s", d.Len(), path)

	return d, nil
}

// Builtin returns the dictionary compiled into the binary.
func Builtin() (*Dictionary, error) {
	return LoadDictionary(strings.NewReader(builtinWords))
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}

	return true
}
