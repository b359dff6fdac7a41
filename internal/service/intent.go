package service

import (
	"context"
	"log"
	"strings"

	"agenda/internal/model"
)

// FallbackReply is returned when intent extraction is unavailable or fails.
const FallbackReply = "Je suis prêt à vous aider ! Que cherchez-vous au Bénin ?"

// IntentParser turns a natural language message into a structured intent
// using the AI client, degrading to an explicit chat fallback when the
// extraction cannot run. Callers branch on IntentResult.Fallback instead of
// guessing from field shapes.
type IntentParser struct {
	aiClient AIClient
}

// NewIntentParser creates a new intent parser.
func NewIntentParser(aiClient AIClient) *IntentParser {
	return &IntentParser{aiClient: aiClient}
}

// Parse extracts the search intent from a message and its recent history.
// It never returns an error: extraction failures produce the fallback result.
func (p *IntentParser) Parse(ctx context.Context, message string, history []model.ChatTurn) *model.IntentResult {
	message = strings.TrimSpace(message)
	if message == "" {
		return fallbackResult()
	}

	if p.aiClient == nil || !p.aiClient.IsEnabled() {
		log.Printf("Intent extraction disabled, set OPENAI_API_KEY to enable it")
		return fallbackResult()
	}

	aiResult, err := p.aiClient.ParseIntent(ctx, message, history)
	if err != nil {
		log.Printf("Intent extraction failed: %v", err)
		return fallbackResult()
	}

	filters := aiResult.Filters
	reply := aiResult.Reply
	if reply == "" {
		reply = FallbackReply
	}

	return &model.IntentResult{
		Intent:  aiResult.Intent,
		Filters: &filters,
		Reply:   reply,
	}
}

func fallbackResult() *model.IntentResult {
	return &model.IntentResult{
		Intent:   model.IntentChat,
		Filters:  &model.SearchFilters{},
		Reply:    FallbackReply,
		Fallback: true,
	}
}
