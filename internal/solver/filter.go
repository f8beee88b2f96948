package solver

import (
	"fmt"
	"strings"

	"github.com/kedare/wordsmith/internal/api"
)

// Filter keeps the words matching every set filter, preserving order.
func Filter(words []api.WordResult, f api.Filters) []api.WordResult {
	if f.IsZero() {
		return words
	}

	starts := strings.ToLower(f.StartsWith)
	ends := strings.ToLower(f.EndsWith)
	out := make([]api.WordResult, 0, len(words))

	for _, w := range words {
		if f.MinLength != nil && w.Length < *f.MinLength {
			continue
		}

		if f.MaxLength != nil && w.Length > *f.MaxLength {
			continue
		}

		if starts != "" && !strings.HasPrefix(w.Word, starts) {
			continue
		}

		if ends != "" && !strings.HasSuffix(w.Word, ends) {
			continue
		}

		out = append(out, w)
	}

	return out
}

// ValidateFilters returns one message per invalid filter, keyed by field. A nil map means valid.
func ValidateFilters(f api.Filters) map[string]string {
	errs := make(map[string]string)

	if f.MinLength != nil && *f.MinLength < 1 {
		errs["min_length"] = "Minimum length must be at least 1"
	}

	if f.MaxLength != nil && *f.MaxLength < 1 {
		errs["max_length"] = "Maximum length must be at least 1"
	}

	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		errs["length_range"] = "Minimum length cannot be greater than maximum length"
	}

	if f.StartsWith != "" && !singleLetter(f.StartsWith) {
		errs["starts_with"] = "Starts with must be a single letter"
	}

	if f.EndsWith != "" && !singleLetter(f.EndsWith) {
		errs["ends_with"] = "Ends with must be a single letter"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// FilterSummary describes f for display, or api.NoFiltersApplied.
func FilterSummary(f api.Filters) string {
	var parts []string

	if f.MinLength != nil {
		parts = append(parts, fmt.Sprintf("min length: %d", *f.MinLength))
	}

	if f.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length: %d", *f.MaxLength))
	}

	if f.StartsWith != "" {
		parts = append(parts, fmt.Sprintf("starts with: '%s'", strings.ToUpper(f.StartsWith)))
	}

	if f.EndsWith != "" {
		parts = append(parts, fmt.Sprintf("ends with: '%s'", strings.ToUpper(f.EndsWith)))
	}

	if len(parts) == 0 {
		return api.NoFiltersApplied
	}

	return "Filters: " + strings.Join(parts, ", ")
}

func singleLetter(s string) bool {
	s = strings.TrimSpace(s)

	return len(s) == 1 && isAlpha(strings.ToLower(s))
}
