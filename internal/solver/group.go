package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kedare/wordsmith/internal/api"
)

// GroupWords clusters words by key. Groups come back in ascending key order and
// words keep their input order inside each group.
func GroupWords(words []api.WordResult, by api.GroupBy) []api.Group {
	index := make(map[string]int)
	var groups []api.Group

	for _, w := range words {
		if w.Word == "" {
			continue
		}

		name := groupName(w, by)

		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, api.Group{Name: name})
		}

		g := &groups[i]
		g.Words = append(g.Words, w)
		g.Count++
		g.TotalScore += w.Score
	}

	return SortGroups(groups, api.GroupOrderAsc)
}

func groupName(w api.WordResult, by api.GroupBy) string {
	switch by {
	case api.GroupByFirstLetter:
		return fmt.Sprintf("Starts with '%s'", strings.ToUpper(w.Word[:1]))
	case api.GroupByLastLetter:
		return fmt.Sprintf("Ends with '%s'", strings.ToUpper(w.Word[len(w.Word)-1:]))
	default:
		if w.Length == 1 {
			return "1 letter"
		}

		return fmt.Sprintf("%d letters", w.Length)
	}
}

// SortGroups orders groups by their key: word length for length groups, the
// letter for letter groups. Groups whose names carry neither sort by name.
func SortGroups(groups []api.Group, order api.GroupOrder) []api.Group {
	out := make([]api.Group, len(groups))
	copy(out, groups)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if order == api.GroupOrderDesc {
			a, b = b, a
		}

		return groupKeyLess(a.Name, b.Name)
	})

	return out
}

func groupKeyLess(a, b string) bool {
	an, aok := leadingNumber(a)
	bn, bok := leadingNumber(b)

	if aok && bok {
		return an < bn
	}

	al, aok := quotedLetter(a)
	bl, bok := quotedLetter(b)

	if aok && bok {
		return al < bl
	}

	return strings.ToLower(a) < strings.ToLower(b)
}

func leadingNumber(name string) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(name, "%d", &n); err != nil {
		return 0, false
	}

	return n, true
}

func quotedLetter(name string) (string, bool) {
	start := strings.IndexByte(name, '\'')
	if start < 0 || start+2 >= len(name) || name[start+2] != '\'' {
		return "", false
	}

	return strings.ToLower(name[start+1 : start+2]), true
}

// SortWords orders words by score (highest first) or alphabetically. Score
// ties fall back to alphabetical order so results are stable across runs.
func SortWords(words []api.WordResult, by api.WordOrder) []api.WordResult {
	out := make([]api.WordResult, len(words))
	copy(out, words)

	sort.SliceStable(out, func(i, j int) bool {
		if by != api.WordOrderAlphabetical && out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Word < out[j].Word
	})

	return out
}

// SortWithinGroups applies SortWords to every group.
func SortWithinGroups(groups []api.Group, by api.WordOrder) []api.Group {
	out := make([]api.Group, len(groups))
	for i, g := range groups {
		g.Words = SortWords(g.Words, by)
		out[i] = g
	}

	return out
}
