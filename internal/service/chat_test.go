package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"agenda/internal/config"
	"agenda/internal/model"
)

// stubCatalog serves a fixed slice of events, optionally failing.
type stubCatalog struct {
	events []model.Event
	err    error
	calls  int
}

func (s *stubCatalog) FetchEvents(ctx context.Context) ([]model.Event, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func newTestChatService(catalog Catalog, ai AIClient) *ChatService {
	searchCfg := config.SearchConfig{DefaultLimit: 5, ShowAllLimit: 20, MaxLimit: 100}
	return NewChatService(
		catalog,
		NewIntentParser(ai),
		NewFilterEngine(testWeights()),
		NewRanker(),
		NewPresenter(searchCfg.DefaultLimit),
		searchCfg,
	)
}

func searchIntentStub(filters model.SearchFilters, reply string) *stubAIClient {
	return &stubAIClient{
		enabled: true,
		resp: &AIIntentResponse{
			Intent:  model.IntentSearch,
			Filters: filters,
			Reply:   reply,
		},
	}
}

func TestChatSearchFlow(t *testing.T) {
	catalog := &stubCatalog{events: sampleEvents()}
	city := "Cotonou"
	svc := newTestChatService(catalog, searchIntentStub(
		model.SearchFilters{City: &city},
		"Je cherche les événements à Cotonou...",
	))

	resp := svc.Chat(context.Background(), &model.ChatRequest{Message: "que faire à Cotonou ?"})

	if catalog.calls != 1 {
		t.Errorf("expected one catalog fetch, got %d", catalog.calls)
	}
	if !strings.Contains(resp.Reply, "Je cherche les événements à Cotonou...") {
		t.Error("reply must start with the AI acknowledgement")
	}
	if !strings.Contains(resp.Reply, "CONCERT DE JAZZ") {
		t.Errorf("reply must contain the matching event, got:\n%s", resp.Reply)
	}
	if !strings.Contains(resp.Reply, "_(1 affichés sur 1 trouvés)_") {
		t.Errorf("reply must end with the counter, got:\n%s", resp.Reply)
	}
}

func TestChatPureChatSkipsCatalog(t *testing.T) {
	catalog := &stubCatalog{events: sampleEvents()}
	svc := newTestChatService(catalog, &stubAIClient{
		enabled: true,
		resp:    &AIIntentResponse{Intent: model.IntentChat, Reply: "Bonjour ! Comment puis-je vous aider ?"},
	})

	resp := svc.Chat(context.Background(), &model.ChatRequest{Message: "bonjour"})

	if catalog.calls != 0 {
		t.Errorf("chat intent must not hit the catalog, got %d calls", catalog.calls)
	}
	if resp.Reply != "Bonjour ! Comment puis-je vous aider ?" {
		t.Errorf("got %q", resp.Reply)
	}
}

func TestChatNoResultsNote(t *testing.T) {
	city := "Paris"
	svc := newTestChatService(&stubCatalog{events: sampleEvents()}, searchIntentStub(
		model.SearchFilters{City: &city},
		"Je regarde...",
	))

	resp := svc.Chat(context.Background(), &model.ChatRequest{Message: "événements à Paris"})

	if !strings.Contains(resp.Reply, "aucun événement") {
		t.Errorf("expected the no-results note, got:\n%s", resp.Reply)
	}
	if !strings.Contains(resp.Reply, "à **Paris**") {
		t.Errorf("the note must name the active criteria, got:\n%s", resp.Reply)
	}
}

func TestChatCatalogFailureDegrades(t *testing.T) {
	svc := newTestChatService(&stubCatalog{err: fmt.Errorf("feed down")}, searchIntentStub(
		model.SearchFilters{},
		"Je regarde...",
	))

	resp := svc.Chat(context.Background(), &model.ChatRequest{Message: "quoi de neuf ?"})

	if !strings.Contains(resp.Reply, "aucun événement") {
		t.Errorf("a dead feed must degrade to the no-results note, got:\n%s", resp.Reply)
	}
}

func TestChatDefaultLimit(t *testing.T) {
	events := make([]model.Event, 8)
	for i := range events {
		events[i] = model.Event{
			ID:    int64(i + 1),
			Title: fmt.Sprintf("Événement %d", i+1),
			City:  "Cotonou",
		}
	}
	svc := newTestChatService(&stubCatalog{events: events}, searchIntentStub(
		model.SearchFilters{},
		"Voici ce que j'ai trouvé :",
	))

	resp := svc.Chat(context.Background(), &model.ChatRequest{Message: "quoi de neuf ?"})
	if !strings.Contains(resp.Reply, "_(5 affichés sur 8 trouvés)_") {
		t.Errorf("expected the default limit of 5, got:\n%s", resp.Reply)
	}

	resp = svc.Chat(context.Background(), &model.ChatRequest{Message: "liste-moi tout"})
	if !strings.Contains(resp.Reply, "_(8 affichés sur 8 trouvés)_") {
		t.Errorf("an exhaustive request must widen the limit, got:\n%s", resp.Reply)
	}
}

func TestWantsAll(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"liste-moi tout", true},
		{"tous les événements", true},
		{"énumère les concerts", true},
		{"le programme complet", true},
		{"que faire ce soir ?", false},
		{"un concert à Cotonou", false},
	}

	for _, tt := range tests {
		if got := wantsAll(tt.message); got != tt.want {
			t.Errorf("wantsAll(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestChatHistoryTrimming(t *testing.T) {
	history := make([]model.ChatTurn, 8)
	for i := range history {
		history[i] = model.ChatTurn{Role: "user", Content: fmt.Sprintf("message %d", i)}
	}
	svc := newTestChatService(&stubCatalog{}, &stubAIClient{
		enabled: true,
		resp:    &AIIntentResponse{Intent: model.IntentChat, Reply: "Bien noté !"},
	})

	resp := svc.Chat(context.Background(), &model.ChatRequest{Message: "dernier message", History: history})

	if len(resp.History) != model.HistoryLimit {
		t.Fatalf("history must be capped at %d turns, got %d", model.HistoryLimit, len(resp.History))
	}
	last := resp.History[len(resp.History)-1]
	if last.Role != "assistant" || last.Content != "Bien noté !" {
		t.Errorf("the last turn must be the assistant reply, got %+v", last)
	}
	prev := resp.History[len(resp.History)-2]
	if prev.Role != "user" || prev.Content != "dernier message" {
		t.Errorf("the penultimate turn must be the user message, got %+v", prev)
	}
}
