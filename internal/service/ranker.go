package service

import (
	"sort"

	"agenda/internal/model"
)

// Ranker orders scored results. It never re-scores: the only key is the
// relevance score, descending, and equal scores keep catalog input order.
type Ranker struct{}

// NewRanker creates a new ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank stable-sorts the results by relevance score descending, in place, and
// returns the same slice for chaining.
func (r *Ranker) Rank(results []model.EventSearchResult) []model.EventSearchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}
