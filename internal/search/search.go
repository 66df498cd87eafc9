package search

import (
	"github.com/nikbrunner/todo/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Todo           model.Todo
	Index          int // position in the searched slice
	MatchedIndexes []int
	Score          int
}

// todoTexts implements fuzzy.Source for a todo slice.
type todoTexts []model.Todo

func (tt todoTexts) String(i int) string {
	return tt[i].Text
}

func (tt todoTexts) Len() int {
	return len(tt)
}

// FuzzySearchTodos searches todos by text using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchTodos(items []model.Todo, query string) []SearchResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, todoTexts(items))

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Todo:           items[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
