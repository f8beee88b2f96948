package solver

import (
	"context"
	"net/http"
	"strings"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/logger"
)

// Request rejection messages.
const (
	MsgNoLetters      = "No letters provided"
	MsgNoValidLetters = "No valid letters found"
	MsgInvalidFilters = "Invalid filters"
	MsgInvalidWord    = "Invalid word"
)

// Solver answers solve requests from a Dictionary. It is safe for concurrent
// use once built; the dictionary is never modified after loading.
type Solver struct {
	dict *Dictionary
}

// New returns a solver over dict.
func New(dict *Dictionary) *Solver {
	return &Solver{dict: dict}
}

// Dictionary returns the word list the solver searches.
func (s *Solver) Dictionary() *Dictionary {
	return s.dict
}

// Solve validates req and builds the response shaped by its view type. Invalid
// requests fail with an *api.APIError carrying status 400.
func (s *Solver) Solve(ctx context.Context, req api.SolveRequest) (*api.SolveResponse, error) {
	raw := strings.TrimSpace(strings.ToLower(req.Letters))
	if raw == "" {
		return nil, badRequest(MsgNoLetters, nil)
	}

	letters := Letters(raw)
	if letters == "" {
		return nil, badRequest(MsgNoValidLetters, nil)
	}

	if details := ValidateFilters(req.Filters); details != nil {
		return nil, badRequest(MsgInvalidFilters, details)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := s.dict.Generate(letters)
	words := make([]api.WordResult, len(found))
	for i, w := range found {
		words[i] = api.WordResult{Word: w, Score: Score(w), Length: len(w)}
	}

	words = Filter(words, req.Filters)
	summary := FilterSummary(req.Filters)

	logger.Log.Debugf("Solved %q: %d candidates, %d after filters", letters, len(found), len(words))

	if req.ViewType == api.ViewFlat {
		sorted := SortWords(words, orWordOrder(req.SortWithinGroups))

		return &api.SolveResponse{
			Letters:        letters,
			TotalWords:     len(sorted),
			ViewType:       api.ViewFlat,
			FiltersApplied: summary,
			Words:          sorted,
		}, nil
	}

	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = api.GroupByLength
	}

	order := req.SortGroups
	if order == "" {
		order = api.GroupOrderAsc
	}

	groups := SortGroups(SortWithinGroups(GroupWords(words, groupBy), orWordOrder(req.SortWithinGroups)), order)
	if groups == nil {
		groups = []api.Group{}
	}

	return &api.SolveResponse{
		Letters:        letters,
		TotalWords:     len(words),
		ViewType:       api.ViewGrouped,
		FiltersApplied: summary,
		Grouping: &api.Grouping{
			Type:      groupBy,
			SortOrder: order,
			Groups:    groups,
		},
	}, nil
}

// WordScore scores a single word.
func (s *Solver) WordScore(word string) (api.WordResult, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !isAlpha(word) {
		return api.WordResult{}, badRequest(MsgInvalidWord, nil)
	}

	return api.WordResult{Word: word, Score: Score(word), Length: len(word)}, nil
}

func orWordOrder(o api.WordOrder) api.WordOrder {
	if o == "" {
		return api.WordOrderScore
	}

	return o
}

func badRequest(msg string, details map[string]string) error {
	return &api.APIError{Status: http.StatusBadRequest, Message: msg, Details: details}
}
