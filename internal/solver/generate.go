package solver

import (
	"sort"
	"strings"
)

// Letters lower-cases raw and drops everything outside a-z.
func Letters(raw string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Generate returns every distinct dictionary word that uses each letter of
// the rack at most as often as it appears, in lexical order.
func (d *Dictionary) Generate(letters string) []string {
	var counts [26]int
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c >= 'a' && c <= 'z' {
			counts[c-'a']++
		}
	}

	var words []string
	buf := make([]byte, 0, len(letters))

	var walk func()
	walk = func() {
		for i := range counts {
			if counts[i] == 0 {
				continue
			}

			buf = append(buf, byte('a'+i))
			prefix := string(buf)

			if d.HasPrefix(prefix) {
				if d.Contains(prefix) {
					words = append(words, prefix)
				}

				counts[i]--
				walk()
				counts[i]++
			}

			buf = buf[:len(buf)-1]
		}
	}
	walk()

	// Iterating letter counts rather than rack positions never yields the same word twice.
	sort.Strings(words)

	return words
}
