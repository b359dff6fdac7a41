package service

import (
	"context"

	"agenda/internal/model"
)

// AIClient is the interface for the intent extraction provider.
type AIClient interface {
	// ParseIntent extracts a structured search intent and a short reply from
	// the user's message and recent conversation history.
	ParseIntent(ctx context.Context, message string, history []model.ChatTurn) (*AIIntentResponse, error)

	// IsEnabled returns whether the client is configured and ready.
	IsEnabled() bool
}

// AIIntentResponse is the JSON contract the model is asked to honor. Filters
// arrive best-effort: any field may be missing or wrong and the engine
// degrades around it.
type AIIntentResponse struct {
	Intent  string              `json:"intent"`
	Filters model.SearchFilters `json:"filters"`
	Reply   string              `json:"ai_reply"`
}

// Ensure OpenAIClient implements AIClient
var _ AIClient = (*OpenAIClient)(nil)
