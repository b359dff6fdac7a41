package service

import (
	"strings"
	"time"

	"agenda/internal/config"
	"agenda/internal/model"
	"agenda/internal/utils"
)

// Match reason constants
const (
	ReasonCityMatch     = "City match"
	ReasonCityMentioned = "City mentioned"
	ReasonCityFuzzy     = "City fuzzy match"
	ReasonDateInRange   = "Date in range"
	ReasonTitleKeyword  = "Title keyword"
	ReasonDescKeyword   = "Description keyword"
	ReasonCategoryMatch = "Category match"
	ReasonFreeMatch     = "Price preference match"
	ReasonGeneralMatch  = "General match"
)

// FilterEngine applies the search criteria to a raw event catalog and scores
// the survivors. It is a pure computation: the input catalog and filters are
// borrowed read-only and every call is independent of previous ones.
type FilterEngine struct {
	weights config.ScoringConfig
}

// NewFilterEngine creates a filter engine with the given scoring weights.
func NewFilterEngine(weights config.ScoringConfig) *FilterEngine {
	return &FilterEngine{weights: weights}
}

// FilterEvents evaluates each event independently against the filters and
// returns the included events with their relevance score. City and date are
// semi-blocking: when requested and not matched, the event is dropped rather
// than down-scored. A query word that appears nowhere drops the event too.
// Scores land on derived results, never on the caller's events.
func (e *FilterEngine) FilterEvents(events []model.Event, filters *model.SearchFilters) []model.EventSearchResult {
	if filters == nil {
		filters = &model.SearchFilters{}
	}

	targetCity := ""
	if filters.City != nil {
		targetCity = utils.Normalize(*filters.City)
	}

	// Unparseable intent dates degrade to "no date criterion".
	intentStart, okStart := parseISODate(filters.DateStart)
	intentEnd, okEnd := parseISODate(filters.DateEnd)
	if !okEnd {
		intentEnd, okEnd = intentStart, okStart
	}

	var queryWords []string
	if filters.SearchQuery != nil {
		queryWords = utils.SignificantWords(*filters.SearchQuery)
	}

	var categoryTerms []string
	if filters.Category != nil {
		categoryTerms = GetSynonyms(*filters.Category)
	}

	results := make([]model.EventSearchResult, 0, len(events))

	for _, ev := range events {
		score := 0
		var reasons []string

		titleNorm := utils.Normalize(ev.Title)
		descNorm := utils.Normalize(ev.Description)
		cityNorm := utils.Normalize(ev.City)

		// City filter (semi-blocking, lenient about where the name appears)
		if targetCity != "" {
			switch {
			case strings.Contains(cityNorm, targetCity):
				score += e.weights.CityExact
				reasons = append(reasons, ReasonCityMatch)
			case descNorm != "" && strings.Contains(descNorm, targetCity):
				score += e.weights.CityMention
				reasons = append(reasons, ReasonCityMentioned)
			case utils.FuzzyMatch(targetCity, cityNorm, e.weights.FuzzyThreshold):
				score += e.weights.CityFuzzy
				reasons = append(reasons, ReasonCityFuzzy)
			default:
				continue
			}
		}

		// Date filter (semi-blocking). An event without a start date cannot
		// overlap a requested window and is excluded.
		if okStart {
			if ev.DateStart == nil {
				continue
			}
			evStart := dateOnly(*ev.DateStart)
			evEnd := evStart
			if end := ev.EffectiveEnd(); end != nil {
				evEnd = dateOnly(*end)
			}
			if !evStart.After(intentEnd) && !evEnd.Before(intentStart) {
				score += e.weights.DateOverlap
				reasons = append(reasons, ReasonDateInRange)
			} else {
				continue
			}
		}

		// Category preference (soft boost, never excludes: the catalog's
		// vocabulary is open and the extraction may fabricate labels)
		if len(categoryTerms) > 0 && e.matchesCategory(ev, titleNorm, descNorm, categoryTerms) {
			score += e.weights.CategoryMatch
			reasons = append(reasons, ReasonCategoryMatch)
		}

		// Free/paid preference (soft boost)
		if filters.IsFree != nil && *filters.IsFree == eventIsFree(&ev) {
			score += e.weights.FreeMatch
			reasons = append(reasons, ReasonFreeMatch)
		}

		// Free-text relevance
		if len(queryWords) > 0 {
			foundWord := false
			for _, word := range queryWords {
				inTitle, inDesc := matchWord(word, titleNorm, descNorm)
				if inTitle {
					score += e.weights.TitleWord
					foundWord = true
					reasons = appendUnique(reasons, ReasonTitleKeyword)
				}
				if inDesc {
					score += e.weights.DescWord
					foundWord = true
					reasons = appendUnique(reasons, ReasonDescKeyword)
				}
			}
			if !foundWord {
				continue
			}
		} else {
			score += e.weights.Baseline
		}

		if len(reasons) == 0 {
			reasons = append(reasons, ReasonGeneralMatch)
		}

		results = append(results, model.EventSearchResult{
			Event:          ev,
			RelevanceScore: score,
			MatchedReasons: reasons,
		})
	}

	return results
}

// matchWord checks a query word, widened through its synonym set, against the
// normalized title and description.
func matchWord(word, titleNorm, descNorm string) (inTitle, inDesc bool) {
	for _, term := range GetSynonyms(word) {
		// Tiny variants like "dj" false-match inside unrelated words.
		if len(term) <= 2 {
			continue
		}
		if !inTitle && titleNorm != "" && strings.Contains(titleNorm, term) {
			inTitle = true
		}
		if !inDesc && descNorm != "" && strings.Contains(descNorm, term) {
			inDesc = true
		}
		if inTitle && inDesc {
			break
		}
	}
	return inTitle, inDesc
}

// matchesCategory checks the requested category terms against the event's own
// label, falling back to the category detected from its text.
func (e *FilterEngine) matchesCategory(ev model.Event, titleNorm, descNorm string, terms []string) bool {
	if ev.Category != nil {
		catNorm := utils.Normalize(*ev.Category)
		for _, term := range terms {
			if strings.Contains(catNorm, term) {
				return true
			}
		}
	}

	detected := DetectCategory(titleNorm + " " + descNorm)
	if detected == "" {
		return false
	}
	for _, term := range terms {
		if detected == term || DetectCategory(term) == detected {
			return true
		}
	}
	return false
}

// eventIsFree reports whether the event is free to attend. A zero price is
// conventionally free even when the flag is missing.
func eventIsFree(ev *model.Event) bool {
	return ev.IsFree || ev.Price == 0
}

// parseISODate parses a "YYYY-MM-DD" intent date. Malformed or absent values
// report !ok so the caller can skip the criterion instead of failing.
func parseISODate(s *string) (time.Time, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOnly truncates a timestamp to its calendar date; time of day is
// irrelevant to window overlap.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
