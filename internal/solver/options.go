package solver

import "github.com/kedare/wordsmith/internal/api"

// GroupingOptions lists the supported group_by values.
func GroupingOptions() api.GroupingOptions {
	return api.GroupingOptions{Options: []api.Option{
		{Value: string(api.GroupByLength), Label: "By Word Length"},
		{Value: string(api.GroupByFirstLetter), Label: "By First Letter"},
		{Value: string(api.GroupByLastLetter), Label: "By Last Letter"},
	}}
}

// SortingOptions lists the supported sort_groups and sort_within_groups values.
func SortingOptions() api.SortingOptions {
	return api.SortingOptions{
		GroupSort: []api.Option{
			{Value: string(api.GroupOrderAsc), Label: "Ascending"},
			{Value: string(api.GroupOrderDesc), Label: "Descending"},
		},
		WithinGroupSort: []api.Option{
			{Value: string(api.WordOrderScore), Label: "By Score"},
			{Value: string(api.WordOrderAlphabetical), Label: "Alphabetically"},
		},
	}
}
