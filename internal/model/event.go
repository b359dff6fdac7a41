package model

import "time"

// Event represents a normalized event record from the events feed.
// All fields except the dates come straight from the feed; DateStart and
// DateEnd are extracted from either the simple dates list or the recurring
// date ranges of the raw payload.
type Event struct {
	ID          int64      `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	City        string     `json:"city,omitempty"`
	VenueName   string     `json:"venue_name,omitempty"`
	Link        string     `json:"link,omitempty"`
	Image       string     `json:"image,omitempty"`
	Category    *string    `json:"category,omitempty"`
	DateStart   *time.Time `json:"date_start,omitempty"`
	DateEnd     *time.Time `json:"date_end,omitempty"`
	Price       float64    `json:"price"`
	IsFree      bool       `json:"is_free"`
	Views       int        `json:"views,omitempty"`
	IsFeatured  bool       `json:"is_featured,omitempty"`
}

// EffectiveEnd returns the end date of the event window, falling back to the
// start date for single-day events.
func (e *Event) EffectiveEnd() *time.Time {
	if e.DateEnd != nil {
		return e.DateEnd
	}
	return e.DateStart
}

// EventSearchResult represents a scored search result. The relevance score is
// only meaningful within the filtering call that produced it; the original
// Event is copied, never annotated in place.
type EventSearchResult struct {
	Event
	RelevanceScore int      `json:"relevance_score"`
	MatchedReasons []string `json:"matched_reasons"`
}
