package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kedare/wordsmith/internal/api"
)

// ErrNoLetters is returned when the letters control is blank. Its text is shown as-is.
var ErrNoLetters = errors.New("Please enter some letters")

// FieldError reports a control whose value could not be turned into a request field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s must be a whole number (got %q)", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// State holds the raw values of every control feeding a query.
type State struct {
	Letters          string
	GroupBy          api.GroupBy
	SortGroups       api.GroupOrder
	SortWithinGroups api.WordOrder
	ViewType         api.ViewType
	MinLength        string
	MaxLength        string
	StartsWith       string
	EndsWith         string
}

// Defaults are the values the option controls start with.
type Defaults struct {
	GroupBy          api.GroupBy
	SortGroups       api.GroupOrder
	SortWithinGroups api.WordOrder
	ViewType         api.ViewType
}

// StandardDefaults mirrors the solver's own fallbacks.
func StandardDefaults() Defaults {
	return Defaults{
		GroupBy:          api.GroupByLength,
		SortGroups:       api.GroupOrderAsc,
		SortWithinGroups: api.WordOrderScore,
		ViewType:         api.ViewGrouped,
	}
}

// NewState returns an empty form with option controls set to d.
func NewState(d Defaults) State {
	return State{
		GroupBy:          d.GroupBy,
		SortGroups:       d.SortGroups,
		SortWithinGroups: d.SortWithinGroups,
		ViewType:         d.ViewType,
	}
}

// HasLetters reports whether a submit would reach the solver.
func (s State) HasLetters() bool {
	return strings.TrimSpace(s.Letters) != ""
}

// Build converts the form into a request. Filters with empty controls are left unset.
func Build(s State) (api.SolveRequest, error) {
	letters := strings.TrimSpace(s.Letters)
	if letters == "" {
		return api.SolveRequest{}, ErrNoLetters
	}

	d := StandardDefaults()
	req := api.SolveRequest{
		Letters:          letters,
		GroupBy:          orDefault(s.GroupBy, d.GroupBy),
		SortGroups:       orDefault(s.SortGroups, d.SortGroups),
		SortWithinGroups: orDefault(s.SortWithinGroups, d.SortWithinGroups),
		ViewType:         orDefault(s.ViewType, d.ViewType),
	}

	minLength, err := parseLength("min length", s.MinLength)
	if err != nil {
		return api.SolveRequest{}, err
	}

	maxLength, err := parseLength("max length", s.MaxLength)
	if err != nil {
		return api.SolveRequest{}, err
	}

	req.Filters = api.Filters{
		MinLength:  minLength,
		MaxLength:  maxLength,
		StartsWith: strings.ToLower(strings.TrimSpace(s.StartsWith)),
		EndsWith:   strings.ToLower(strings.TrimSpace(s.EndsWith)),
	}

	return req, nil
}

func parseLength(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &FieldError{Field: field, Value: raw, Err: err}
	}

	return &n, nil
}

func orDefault[T ~string](v, fallback T) T {
	if v == "" {
		return fallback
	}

	return v
}
