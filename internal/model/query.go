package model

// SearchRequest represents a direct search request against the catalog,
// bypassing the conversational layer.
type SearchRequest struct {
	Filters *SearchFilters `json:"filters,omitempty"`
	Options *SearchOptions `json:"options,omitempty"`
}

// SearchOptions represents search options.
type SearchOptions struct {
	Limit int `json:"limit"`
}

// SearchResponse represents a search result response.
type SearchResponse struct {
	Results []EventSearchResult `json:"results"`
	Total   int                 `json:"total"`
	Shown   int                 `json:"shown"`
	Took    int64               `json:"took_ms"`
}
