package service

import (
	"context"
	"time"

	"agenda/internal/model"
)

// SearchService exposes the filter/rank/present pipeline directly, without
// the conversational layer, for callers that already hold structured filters.
type SearchService struct {
	catalog   Catalog
	engine    *FilterEngine
	ranker    *Ranker
	presenter *Presenter
}

// NewSearchService creates a new search service.
func NewSearchService(catalog Catalog, engine *FilterEngine, ranker *Ranker, presenter *Presenter) *SearchService {
	return &SearchService{
		catalog:   catalog,
		engine:    engine,
		ranker:    ranker,
		presenter: presenter,
	}
}

// Search fetches the catalog, filters and ranks it against the request, and
// returns the bounded page with the total match count.
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	startTime := time.Now()

	events, err := s.catalog.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	filtered := s.engine.FilterEvents(events, req.Filters)
	ranked := s.ranker.Rank(filtered)

	limit := 0
	if req.Options != nil {
		limit = req.Options.Limit
	}
	page, total := s.presenter.Present(ranked, limit)

	return &model.SearchResponse{
		Results: page,
		Total:   total,
		Shown:   len(page),
		Took:    time.Since(startTime).Milliseconds(),
	}, nil
}
