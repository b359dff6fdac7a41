package service

import "agenda/internal/model"

// Presenter bounds a ranked result list for display. It performs no scoring,
// only truncation, and reports the total so the caller can tell the user how
// many results exist beyond the page.
type Presenter struct {
	defaultLimit int
}

// NewPresenter creates a presenter with the fallback limit used when the
// caller supplies none.
func NewPresenter(defaultLimit int) *Presenter {
	return &Presenter{defaultLimit: defaultLimit}
}

// Present truncates the ranked list to the given limit and returns the page
// together with the total count before truncation.
func (p *Presenter) Present(ranked []model.EventSearchResult, limit int) ([]model.EventSearchResult, int) {
	total := len(ranked)
	if limit <= 0 {
		limit = p.defaultLimit
	}
	if limit < total {
		return ranked[:limit], total
	}
	return ranked, total
}
