package model

// Intent values produced by the extraction step.
const (
	IntentSearch = "search"
	IntentChat   = "chat"
)

// SearchFilters represents the structured criteria extracted from a natural
// language message. Every field is optional; dates are ISO "YYYY-MM-DD"
// strings and are parsed leniently by the filtering engine (an unparseable
// date is treated as absent, never as an error).
type SearchFilters struct {
	City        *string `json:"city,omitempty"`
	DateStart   *string `json:"date_start,omitempty"`
	DateEnd     *string `json:"date_end,omitempty"`
	Category    *string `json:"category,omitempty"`
	SearchQuery *string `json:"search_query,omitempty"`
	IsFree      *bool   `json:"is_free,omitempty"`
}

// IsEmpty reports whether no criterion is set at all.
func (f *SearchFilters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.City == nil && f.DateStart == nil && f.DateEnd == nil &&
		f.Category == nil && f.SearchQuery == nil && f.IsFree == nil
}

// IntentResult represents the parsed intent from a natural language message.
// Fallback is true when extraction failed and Reply carries a generic
// degraded answer instead of an AI-produced one, so callers can branch
// deterministically instead of guessing from field shapes.
type IntentResult struct {
	Intent   string         `json:"intent"`
	Filters  *SearchFilters `json:"filters"`
	Reply    string         `json:"ai_reply"`
	Fallback bool           `json:"-"`
}
