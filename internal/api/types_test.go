package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupedFixture() *SolveResponse {
	return &SolveResponse{
		Letters:    "tacs",
		TotalWords: 3,
		ViewType:   ViewGrouped,
		Grouping: &Grouping{Groups: []Group{
			{Name: "3 letters", Count: 2, TotalScore: 6, Words: []WordResult{
				{Word: "cat", Score: 3, Length: 3},
				{Word: "act", Score: 3, Length: 3},
			}},
			{Name: "4 letters", Count: 1, TotalScore: 6, Words: []WordResult{
				{Word: "cats", Score: 6, Length: 4},
			}},
		}},
	}
}

func TestValidate(t *testing.T) {
	t.Run("grouped ok", func(t *testing.T) {
		assert.NoError(t, groupedFixture().Validate())
	})

	t.Run("flat ok", func(t *testing.T) {
		resp := &SolveResponse{ViewType: ViewFlat, TotalWords: 1, Words: []WordResult{{Word: "a", Score: 1, Length: 1}}}
		assert.NoError(t, resp.Validate())
	})

	tests := []struct {
		name   string
		mutate func(r *SolveResponse)
	}{
		{"total mismatch", func(r *SolveResponse) { r.TotalWords = 7 }},
		{"count mismatch", func(r *SolveResponse) { r.Grouping.Groups[0].Count = 5 }},
		{"score mismatch", func(r *SolveResponse) { r.Grouping.Groups[1].TotalScore = 1 }},
		{"both shapes", func(r *SolveResponse) { r.Words = []WordResult{{Word: "x"}} }},
		{"unknown view", func(r *SolveResponse) { r.ViewType = "cards" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := groupedFixture()
			tt.mutate(resp)
			assert.ErrorIs(t, resp.Validate(), ErrInvalidResponse)
		})
	}

	var nilResp *SolveResponse
	assert.ErrorIs(t, nilResp.Validate(), ErrInvalidResponse)
}

func TestAllWordsFlattensInServerOrder(t *testing.T) {
	words := groupedFixture().AllWords()
	require.Len(t, words, 3)
	assert.Equal(t, []string{"cat", "act", "cats"}, []string{words[0].Word, words[1].Word, words[2].Word})

	flat := &SolveResponse{ViewType: ViewFlat, Words: []WordResult{{Word: "zoo"}}}
	assert.Equal(t, flat.Words, flat.AllWords())
}

func TestHasFilterSummary(t *testing.T) {
	assert.False(t, (&SolveResponse{}).HasFilterSummary())
	assert.False(t, (&SolveResponse{FiltersApplied: NoFiltersApplied}).HasFilterSummary())
	assert.True(t, (&SolveResponse{FiltersApplied: "Filters: starts with: 'A'"}).HasFilterSummary())
}

func TestDecodeSolverPayload(t *testing.T) {
	raw := `{"letters":"quiz","total_words":1,"view_type":"grouped","filters_applied":"No filters applied",
		"grouping":{"type":"length","sort_order":"asc","groups":[{"name":"4 letters","count":1,"total_score":22,
		"words":[{"word":"quiz","score":22,"length":4}]}]}}`

	var resp SolveResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, GroupByLength, resp.Grouping.Type)
	assert.Equal(t, []string{"quiz"}, resp.Groups()[0].WordList())
	assert.NoError(t, resp.Validate())
}

func TestParseEnums(t *testing.T) {
	v, err := ParseViewType(" FLAT ")
	require.NoError(t, err)
	assert.Equal(t, ViewFlat, v)

	g, err := ParseGroupBy("first-letter")
	require.NoError(t, err)
	assert.Equal(t, GroupByFirstLetter, g)

	o, err := ParseGroupOrder("desc")
	require.NoError(t, err)
	assert.Equal(t, GroupOrderDesc, o)

	w, err := ParseWordOrder("Alphabetical")
	require.NoError(t, err)
	assert.Equal(t, WordOrderAlphabetical, w)

	for _, bad := range []func() error{
		func() error { _, err := ParseViewType("cards"); return err },
		func() error { _, err := ParseGroupBy("vowels"); return err },
		func() error { _, err := ParseGroupOrder("up"); return err },
		func() error { _, err := ParseWordOrder("random"); return err },
	} {
		assert.Error(t, bad())
	}
}
