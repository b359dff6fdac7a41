package service

import (
	"context"
	"fmt"
	"testing"

	"agenda/internal/model"
)

// stubAIClient returns a canned intent response for pipeline tests.
type stubAIClient struct {
	resp    *AIIntentResponse
	err     error
	enabled bool
}

func (s *stubAIClient) ParseIntent(ctx context.Context, message string, history []model.ChatTurn) (*AIIntentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubAIClient) IsEnabled() bool { return s.enabled }

func TestIntentParserWithoutAI(t *testing.T) {
	parser := NewIntentParser(nil)

	tests := []struct {
		name    string
		message string
	}{
		{"Search-looking message", "concerts gratuits à Cotonou ce week-end"},
		{"Chat message", "bonjour"},
		{"Empty message", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(context.Background(), tt.message, nil)

			if result.Intent != model.IntentChat {
				t.Errorf("without AI the intent must degrade to chat, got %q", result.Intent)
			}
			if !result.Fallback {
				t.Error("expected the fallback flag to be set")
			}
			if result.Filters == nil {
				t.Fatal("expected filters to be non-nil")
			}
			if !result.Filters.IsEmpty() {
				t.Errorf("expected empty filters, got %+v", result.Filters)
			}
			if result.Reply == "" {
				t.Error("expected a generic reply")
			}
		})
	}
}

func TestIntentParserAIFailure(t *testing.T) {
	parser := NewIntentParser(&stubAIClient{enabled: true, err: fmt.Errorf("boom")})

	result := parser.Parse(context.Background(), "concerts à Cotonou", nil)
	if result.Intent != model.IntentChat || !result.Fallback {
		t.Errorf("AI failure must produce the chat fallback, got %+v", result)
	}
}

func TestIntentParserSearchIntent(t *testing.T) {
	city := "Cotonou"
	parser := NewIntentParser(&stubAIClient{
		enabled: true,
		resp: &AIIntentResponse{
			Intent:  model.IntentSearch,
			Filters: model.SearchFilters{City: &city},
			Reply:   "Je cherche les événements à Cotonou...",
		},
	})

	result := parser.Parse(context.Background(), "que faire à Cotonou ?", nil)
	if result.Intent != model.IntentSearch {
		t.Fatalf("expected search intent, got %q", result.Intent)
	}
	if result.Fallback {
		t.Error("successful extraction must not be flagged as fallback")
	}
	if result.Filters.City == nil || *result.Filters.City != "Cotonou" {
		t.Errorf("expected the extracted city, got %+v", result.Filters)
	}
}

func TestIntentParserEmptyReplyGetsDefault(t *testing.T) {
	parser := NewIntentParser(&stubAIClient{
		enabled: true,
		resp:    &AIIntentResponse{Intent: model.IntentChat},
	})

	result := parser.Parse(context.Background(), "salut", nil)
	if result.Reply != FallbackReply {
		t.Errorf("expected the default reply, got %q", result.Reply)
	}
}

func TestValidateIntentResponse(t *testing.T) {
	t.Run("Empty intent becomes chat", func(t *testing.T) {
		resp := &AIIntentResponse{}
		if err := validateIntentResponse(resp); err != nil {
			t.Fatal(err)
		}
		if resp.Intent != model.IntentChat {
			t.Errorf("got %q", resp.Intent)
		}
	})

	t.Run("Unknown intent rejected", func(t *testing.T) {
		resp := &AIIntentResponse{Intent: "browse"}
		if err := validateIntentResponse(resp); err == nil {
			t.Error("expected an error for an unknown intent")
		}
	})

	t.Run("Reversed date window drops the end", func(t *testing.T) {
		start, end := "2026-02-10", "2026-01-01"
		resp := &AIIntentResponse{
			Intent:  model.IntentSearch,
			Filters: model.SearchFilters{DateStart: &start, DateEnd: &end},
		}
		if err := validateIntentResponse(resp); err != nil {
			t.Fatal(err)
		}
		if resp.Filters.DateEnd != nil {
			t.Error("expected the reversed end date to be dropped")
		}
	})
}
