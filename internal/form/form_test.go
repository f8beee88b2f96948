package form

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLetters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"ZZZQQQ", "zzzqqq"},
		{"a b-c1!", "abc"},
		{"éclair", "clair"},
		{"abcdefghijklmnopqrst", "abcdefghijklmno"},
		{"A1B2C3D4E5F6G7H8I9J0KLMNOPQ", "abcdefghijklmno"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeLetters(tt.in)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), api.MaxLetters)
		})
	}
}

func TestNormalizeAffix(t *testing.T) {
	assert.Equal(t, "A", NormalizeAffix("a"))
	assert.Equal(t, "QU", NormalizeAffix("q-u 1"))
	assert.Equal(t, "", NormalizeAffix("123"))
	assert.Equal(t, "E", NormalizeAffix("é e"))
}

func TestValidityOf(t *testing.T) {
	assert.Equal(t, ValidityNeutral, ValidityOf(""))
	assert.Equal(t, ValidityValid, ValidityOf("abc"))
}

func TestBuildRejectsBlankLetters(t *testing.T) {
	for _, letters := range []string{"", "   ", "\t\n"} {
		s := NewState(StandardDefaults())
		s.Letters = letters

		_, err := Build(s)
		require.ErrorIs(t, err, ErrNoLetters)
		assert.Equal(t, "Please enter some letters", err.Error())
		assert.False(t, s.HasLetters())
	}
}

func TestBuildOmitsEmptyFilters(t *testing.T) {
	s := NewState(StandardDefaults())
	s.Letters = "retains"

	req, err := Build(s)
	require.NoError(t, err)

	assert.Equal(t, "retains", req.Letters)
	assert.Equal(t, api.GroupByLength, req.GroupBy)
	assert.Equal(t, api.GroupOrderAsc, req.SortGroups)
	assert.Equal(t, api.WordOrderScore, req.SortWithinGroups)
	assert.Equal(t, api.ViewGrouped, req.ViewType)
	assert.True(t, req.Filters.IsZero())
}

func TestBuildIncludesFilledFilters(t *testing.T) {
	s := State{
		Letters:          "retains",
		GroupBy:          api.GroupByFirstLetter,
		SortGroups:       api.GroupOrderDesc,
		SortWithinGroups: api.WordOrderAlphabetical,
		ViewType:         api.ViewFlat,
		MinLength:        " 3 ",
		MaxLength:        "6",
		StartsWith:       "S",
		EndsWith:         "",
	}

	req, err := Build(s)
	require.NoError(t, err)

	require.NotNil(t, req.Filters.MinLength)
	require.NotNil(t, req.Filters.MaxLength)
	assert.Equal(t, 3, *req.Filters.MinLength)
	assert.Equal(t, 6, *req.Filters.MaxLength)
	assert.Equal(t, "s", req.Filters.StartsWith, "affixes are lower-cased for transmission")
	assert.Empty(t, req.Filters.EndsWith)
	assert.Equal(t, api.ViewFlat, req.ViewType)
	assert.Equal(t, api.GroupByFirstLetter, req.GroupBy)
}

func TestBuildReportsNonNumericLength(t *testing.T) {
	s := NewState(StandardDefaults())
	s.Letters = "abc"
	s.MaxLength = "four"

	_, err := Build(s)
	require.Error(t, err)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "max length", fieldErr.Field)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
