package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agenda/internal/model"
)

// Client fetches and normalizes the events feed. Upstream failures degrade to
// an empty catalog: the conversational layer answers with "no results" rather
// than surfacing transport errors to the user.
type Client struct {
	url        string
	httpClient *http.Client
	cache      *Cache
}

// NewClient creates a feed client. The cache may be nil to disable caching.
func NewClient(url string, timeout time.Duration, cache *Cache) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

// feedResponse mirrors the feed's paginated envelope.
type feedResponse struct {
	Results []rawEvent `json:"results"`
}

// rawEvent is the loosely-typed record the feed actually serves. Category and
// venue switch between object and plain string depending on the record, price
// arrives as string or number, and dates live in two alternative shapes.
type rawEvent struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	City           string          `json:"city"`
	Link           string          `json:"link"`
	Image          string          `json:"image"`
	Category       json.RawMessage `json:"category"`
	Venue          json.RawMessage `json:"venue"`
	Price          json.RawMessage `json:"price"`
	IsFree         bool            `json:"is_free"`
	Views          int             `json:"views"`
	IsFeatured     bool            `json:"is_featured"`
	Featured       bool            `json:"featured"`
	Dates          []rawDate       `json:"dates"`
	RecurringDates []rawRecurring  `json:"recurring_dates"`
}

type rawDate struct {
	Date string `json:"date"`
}

type rawRecurring struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// FetchEvents returns the normalized catalog, serving from cache while fresh.
func (c *Client) FetchEvents(ctx context.Context) ([]model.Event, error) {
	if c.cache != nil {
		if events, ok := c.cache.Get(); ok {
			log.Printf("Events served from cache (%d)", len(events))
			return events, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("events feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode events feed: %w", err)
	}

	log.Printf("Feed: %d events fetched", len(feed.Results))

	events := make([]model.Event, 0, len(feed.Results))
	for i := range feed.Results {
		events = append(events, normalizeEvent(&feed.Results[i]))
	}

	if c.cache != nil {
		c.cache.Put(events)
	}

	return events, nil
}

// normalizeEvent coerces one raw record into the catalog contract. A record
// with broken fields is kept with defaults, never dropped: one bad event must
// not shrink the catalog.
func normalizeEvent(raw *rawEvent) model.Event {
	ev := model.Event{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		City:        raw.City,
		Link:        raw.Link,
		Image:       raw.Image,
		Views:       raw.Views,
		IsFeatured:  raw.IsFeatured || raw.Featured,
	}

	ev.DateStart, ev.DateEnd = extractDates(raw)

	if cat := stringOrNamedObject(raw.Category); cat != "" {
		ev.Category = &cat
	}
	ev.VenueName = stringOrNamedObject(raw.Venue)

	ev.Price = coercePrice(raw.Price)
	ev.IsFree = raw.IsFree || ev.Price == 0 || freeByDescription(raw.Description)

	return ev
}

// extractDates reads the simple dates list first, then falls back to the
// recurring date ranges.
func extractDates(raw *rawEvent) (start, end *time.Time) {
	if len(raw.Dates) > 0 && raw.Dates[0].Date != "" {
		if t, err := time.Parse(time.RFC3339, raw.Dates[0].Date); err == nil {
			return &t, &t
		}
	}

	if len(raw.RecurringDates) > 0 {
		rec := raw.RecurringDates[0]
		if rec.StartDate != "" {
			if s, err := time.Parse("2006-01-02", rec.StartDate); err == nil {
				start = &s
				end = &s
				if rec.EndDate != "" {
					if e, err := time.Parse("2006-01-02", rec.EndDate); err == nil {
						end = &e
					}
				}
			}
		}
	}

	return start, end
}

// stringOrNamedObject handles fields served either as {"name": "..."} or as a
// bare string.
func stringOrNamedObject(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
		return obj.Name
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return ""
}

// coercePrice accepts numeric or string prices; anything unparseable is 0.
func coercePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}

	return 0
}

// freeByDescription sniffs the description for free-entry wording.
func freeByDescription(desc string) bool {
	lower := strings.ToLower(desc)
	return strings.Contains(lower, "gratuit") ||
		strings.Contains(lower, "entrée libre") ||
		strings.Contains(lower, "free")
}
