package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agenda/internal/config"
	"agenda/internal/model"
)

// Catalog abstracts the events feed for the chat pipeline.
type Catalog interface {
	FetchEvents(ctx context.Context) ([]model.Event, error)
}

// showAllKeywords widen the display limit when the user asks for the full
// list ("liste-moi tout ce qui est disponible").
var showAllKeywords = []string{"tout", "tous", "liste", "énumère", "disponible", "complet", "entier"}

// ChatService orchestrates one conversational turn: intent extraction,
// catalog fetch, filtering, ranking, presentation and rendering.
type ChatService struct {
	catalog   Catalog
	intent    *IntentParser
	engine    *FilterEngine
	ranker    *Ranker
	presenter *Presenter
	search    config.SearchConfig
}

// NewChatService creates a new chat service.
func NewChatService(
	catalog Catalog,
	intentParser *IntentParser,
	engine *FilterEngine,
	ranker *Ranker,
	presenter *Presenter,
	search config.SearchConfig,
) *ChatService {
	return &ChatService{
		catalog:   catalog,
		intent:    intentParser,
		engine:    engine,
		ranker:    ranker,
		presenter: presenter,
		search:    search,
	}
}

// Chat handles one user message and returns the reply with the updated,
// trimmed history.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) *model.ChatResponse {
	intentResult := s.intent.Parse(ctx, req.Message, req.History)
	log.Printf("Intent: %s, filters: %+v", intentResult.Intent, intentResult.Filters)

	reply := intentResult.Reply

	if intentResult.Intent == model.IntentSearch {
		reply = s.runSearch(ctx, req.Message, intentResult, reply)
	}

	return &model.ChatResponse{
		Reply:   reply,
		History: model.TrimHistory(req.History, req.Message, reply),
	}
}

// runSearch executes the catalog search and appends the formatted results, or
// a contextual no-results note, to the AI reply.
func (s *ChatService) runSearch(ctx context.Context, message string, intentResult *model.IntentResult, reply string) string {
	events, err := s.catalog.FetchEvents(ctx)
	if err != nil {
		// Transport failures degrade to an empty catalog.
		log.Printf("Catalog fetch failed: %v", err)
		events = nil
	}

	filtered := s.engine.FilterEvents(events, intentResult.Filters)
	ranked := s.ranker.Rank(filtered)
	log.Printf("Events matched: %d of %d", len(ranked), len(events))

	if len(ranked) == 0 {
		return reply + "\n\n" + noResultsNote(intentResult.Filters)
	}

	limit := s.search.DefaultLimit
	if wantsAll(message) {
		limit = s.search.ShowAllLimit
	}

	page, total := s.presenter.Present(ranked, limit)
	formatted := FormatEvents(page)
	counter := fmt.Sprintf("_(%d affichés sur %d trouvés)_", len(page), total)

	return reply + "\n\n" + formatted + "\n\n" + counter
}

// wantsAll reports whether the message asks for an exhaustive listing.
func wantsAll(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range showAllKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// noResultsNote names the active criteria so the user knows what to relax.
func noResultsNote(filters *model.SearchFilters) string {
	var parts []string
	if filters != nil {
		if filters.City != nil {
			parts = append(parts, fmt.Sprintf("à **%s**", *filters.City))
		}
		if filters.Category != nil {
			parts = append(parts, fmt.Sprintf("dans la catégorie **%s**", *filters.Category))
		}
		if filters.SearchQuery != nil {
			parts = append(parts, fmt.Sprintf("pour **%s**", *filters.SearchQuery))
		}
		if filters.IsFree != nil && *filters.IsFree {
			parts = append(parts, "**gratuits**")
		}
	}

	context := "correspondant à vos critères"
	if len(parts) > 0 {
		context = strings.Join(parts, " ")
	}

	return fmt.Sprintf("📍 *Note :* Je n'ai trouvé aucun événement %s. Essayez d'élargir votre recherche !", context)
}
