// Package api defines the solver wire format and an HTTP client for it.
package api

import (
	"errors"
	"fmt"
	"strings"
)

// NoFiltersApplied is the summary the solver reports when a request carried no filters.
const NoFiltersApplied = "No filters applied"

// MaxLetters bounds the letters a request may carry.
const MaxLetters = 15

// ViewType selects how the solver shapes the word list.
type ViewType string

const (
	ViewGrouped ViewType = "grouped"
	ViewFlat    ViewType = "flat"
)

// GroupBy is the key words are clustered by in a grouped response.
type GroupBy string

const (
	GroupByLength      GroupBy = "length"
	GroupByFirstLetter GroupBy = "first_letter"
	GroupByLastLetter  GroupBy = "last_letter"
)

// GroupOrder orders groups relative to each other.
type GroupOrder string

const (
	GroupOrderAsc  GroupOrder = "asc"
	GroupOrderDesc GroupOrder = "desc"
)

// WordOrder orders words inside a group, or the whole list in flat view.
type WordOrder string

const (
	WordOrderScore        WordOrder = "score"
	WordOrderAlphabetical WordOrder = "alphabetical"
)

// ErrInvalidResponse is wrapped by SolveResponse.Validate.
var ErrInvalidResponse = errors.New("invalid solve response")

// Filters narrows the solver output. Zero values are omitted from the payload.
type Filters struct {
	MinLength  *int   `json:"min_length,omitempty" msgpack:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength  *int   `json:"max_length,omitempty" msgpack:"max_length,omitempty" yaml:"max_length,omitempty"`
	StartsWith string `json:"starts_with,omitempty" msgpack:"starts_with,omitempty" yaml:"starts_with,omitempty"`
	EndsWith   string `json:"ends_with,omitempty" msgpack:"ends_with,omitempty" yaml:"ends_with,omitempty"`
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.MinLength == nil && f.MaxLength == nil && f.StartsWith == "" && f.EndsWith == ""
}

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Letters          string     `json:"letters" msgpack:"letters" yaml:"letters"`
	GroupBy          GroupBy    `json:"group_by" msgpack:"group_by" yaml:"group_by"`
	SortGroups       GroupOrder `json:"sort_groups" msgpack:"sort_groups" yaml:"sort_groups"`
	SortWithinGroups WordOrder  `json:"sort_within_groups" msgpack:"sort_within_groups" yaml:"sort_within_groups"`
	ViewType         ViewType   `json:"view_type" msgpack:"view_type" yaml:"view_type"`
	Filters          Filters    `json:"filters" msgpack:"filters" yaml:"filters"`
}

// WordResult is one playable word.
type WordResult struct {
	Word   string `json:"word" msgpack:"word" yaml:"word"`
	Score  int    `json:"score" msgpack:"score" yaml:"score"`
	Length int    `json:"length" msgpack:"length" yaml:"length"`
}

// Group is a named cluster of words sharing a grouping key.
type Group struct {
	Name       string       `json:"name" msgpack:"name" yaml:"name"`
	Count      int          `json:"count" msgpack:"count" yaml:"count"`
	TotalScore int          `json:"total_score" msgpack:"total_score" yaml:"total_score"`
	Words      []WordResult `json:"words" msgpack:"words" yaml:"words"`
}

// WordList returns the plain word strings of the group in order.
func (g Group) WordList() []string {
	words := make([]string, len(g.Words))
	for i, w := range g.Words {
		words[i] = w.Word
	}

	return words
}

// Grouping carries the groups of a grouped response.
type Grouping struct {
	Type      GroupBy    `json:"type,omitempty" msgpack:"type,omitempty" yaml:"type,omitempty"`
	SortOrder GroupOrder `json:"sort_order,omitempty" msgpack:"sort_order,omitempty" yaml:"sort_order,omitempty"`
	Groups    []Group    `json:"groups" msgpack:"groups" yaml:"groups"`
}

// SolveResponse is the successful body of POST /solve.
type SolveResponse struct {
	Letters        string       `json:"letters" msgpack:"letters" yaml:"letters"`
	TotalWords     int          `json:"total_words" msgpack:"total_words" yaml:"total_words"`
	ViewType       ViewType     `json:"view_type" msgpack:"view_type" yaml:"view_type"`
	FiltersApplied string       `json:"filters_applied,omitempty" msgpack:"filters_applied,omitempty" yaml:"filters_applied,omitempty"`
	Words          []WordResult `json:"words,omitempty" msgpack:"words,omitempty" yaml:"words,omitempty"`
	Grouping       *Grouping    `json:"grouping,omitempty" msgpack:"grouping,omitempty" yaml:"grouping,omitempty"`
}

// Groups returns the groups of a grouped response, or nil.
func (r *SolveResponse) Groups() []Group {
	if r == nil || r.Grouping == nil {
		return nil
	}

	return r.Grouping.Groups
}

// AllWords returns every word of the response in server order, flattening groups.
func (r *SolveResponse) AllWords() []WordResult {
	if r == nil {
		return nil
	}

	if r.ViewType != ViewGrouped {
		return r.Words
	}

	var words []WordResult
	for _, g := range r.Groups() {
		words = append(words, g.Words...)
	}

	return words
}

// HasFilterSummary reports whether the filter banner should be shown.
func (r *SolveResponse) HasFilterSummary() bool {
	return r != nil && r.FiltersApplied != "" && r.FiltersApplied != NoFiltersApplied
}

// Validate checks the structural invariants a well-behaved solver guarantees.
func (r *SolveResponse) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}

	switch r.ViewType {
	case ViewFlat:
		if r.Grouping != nil && len(r.Grouping.Groups) > 0 {
			return fmt.Errorf("%w: flat response carries groups", ErrInvalidResponse)
		}

		if r.TotalWords != len(r.Words) {
			return fmt.Errorf("%w: total_words %d, got %d words", ErrInvalidResponse, r.TotalWords, len(r.Words))
		}
	case ViewGrouped:
		if len(r.Words) > 0 {
			return fmt.Errorf("%w: grouped response carries a flat word list", ErrInvalidResponse)
		}

		sum := 0
		for i, g := range r.Groups() {
			if g.Count != len(g.Words) {
				return fmt.Errorf("%w: group %d count %d, got %d words", ErrInvalidResponse, i, g.Count, len(g.Words))
			}

			total := 0
			for _, w := range g.Words {
				total += w.Score
			}

			if total != g.TotalScore {
				return fmt.Errorf("%w: group %d total_score %d, words sum to %d", ErrInvalidResponse, i, g.TotalScore, total)
			}

			sum += g.Count
		}

		if sum != r.TotalWords {
			return fmt.Errorf("%w: total_words %d, groups hold %d", ErrInvalidResponse, r.TotalWords, sum)
		}
	default:
		return fmt.Errorf("%w: unknown view_type %q", ErrInvalidResponse, r.ViewType)
	}

	return nil
}

// ErrorResponse is the body returned with a non-2xx status.
type ErrorResponse struct {
	Error   string            `json:"error" msgpack:"error"`
	Details map[string]string `json:"details,omitempty" msgpack:"details,omitempty"`
}

// Option is a value/label pair advertised by the option endpoints.
type Option struct {
	Value string `json:"value" msgpack:"value"`
	Label string `json:"label" msgpack:"label"`
}

// GroupingOptions is the body of GET /api/groups.
type GroupingOptions struct {
	Options []Option `json:"options" msgpack:"options"`
}

// SortingOptions is the body of GET /api/sorting.
type SortingOptions struct {
	GroupSort       []Option `json:"group_sort" msgpack:"group_sort"`
	WithinGroupSort []Option `json:"within_group_sort" msgpack:"within_group_sort"`
}

// ParseViewType accepts "grouped" or "flat", case-insensitively.
func ParseViewType(s string) (ViewType, error) {
	switch ViewType(strings.ToLower(strings.TrimSpace(s))) {
	case ViewGrouped:
		return ViewGrouped, nil
	case ViewFlat:
		return ViewFlat, nil
	default:
		return "", fmt.Errorf("invalid view type %q (want grouped or flat)", s)
	}
}

// ParseGroupBy accepts length, first_letter or last_letter. Dashes are accepted for underscores.
func ParseGroupBy(s string) (GroupBy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch GroupBy(normalized) {
	case GroupByLength, GroupByFirstLetter, GroupByLastLetter:
		return GroupBy(normalized), nil
	default:
		return "", fmt.Errorf("invalid group key %q (want length, first_letter or last_letter)", s)
	}
}

// ParseGroupOrder accepts asc or desc.
func ParseGroupOrder(s string) (GroupOrder, error) {
	switch GroupOrder(strings.ToLower(strings.TrimSpace(s))) {
	case GroupOrderAsc:
		return GroupOrderAsc, nil
	case GroupOrderDesc:
		return GroupOrderDesc, nil
	default:
		return "", fmt.Errorf("invalid group order %q (want asc or desc)", s)
	}
}

// ParseWordOrder accepts score or alphabetical.
func ParseWordOrder(s string) (WordOrder, error) {
	switch WordOrder(strings.ToLower(strings.TrimSpace(s))) {
	case WordOrderScore:
		return WordOrderScore, nil
	case WordOrderAlphabetical:
		return WordOrderAlphabetical, nil
	default:
		return "", fmt.Errorf("invalid word order %q (want score or alphabetical)", s)
	}
}
