package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"agenda/internal/config"
	"agenda/internal/model"
	"agenda/internal/utils"
)

// OpenAIClient handles OpenAI-compatible chat-completions APIs (the Gemini
// OpenAI endpoint by default).
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready.
func (c *OpenAIClient) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// ParseIntent asks the model to classify the message (search vs. chat) and
// extract the search criteria as strict JSON.
func (c *OpenAIClient) ParseIntent(ctx context.Context, message string, history []model.ChatTurn) (*AIIntentResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled")
	}

	req := ChatCompletionRequest{
		Model: c.config.ChatModel,
		Messages: []ChatMessage{
			{Role: "system", Content: buildIntentPrompt(time.Now())},
			{Role: "user", Content: buildUserPrompt(message, history)},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	var result AIIntentResponse
	content := resp.Choices[0].Message.Content
	if err := utils.ParseAIJSON(content, &result); err != nil {
		log.Printf("Failed to parse AI response, content: %s", content)
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	if err := validateIntentResponse(&result); err != nil {
		return nil, fmt.Errorf("AI response validation failed: %w", err)
	}

	return &result, nil
}

// validateIntentResponse applies the business rules the model sometimes drops.
func validateIntentResponse(resp *AIIntentResponse) error {
	switch resp.Intent {
	case model.IntentSearch, model.IntentChat:
	case "":
		resp.Intent = model.IntentChat
	default:
		return fmt.Errorf("unknown intent %q", resp.Intent)
	}

	// Reversed windows confuse the engine silently; drop the end instead.
	if resp.Filters.DateStart != nil && resp.Filters.DateEnd != nil &&
		*resp.Filters.DateEnd < *resp.Filters.DateStart {
		resp.Filters.DateEnd = nil
	}

	return nil
}

// buildUserPrompt folds the trimmed history into the user turn so the model
// can resolve follow-ups like "et à Ouidah ?".
func buildUserPrompt(message string, history []model.ChatTurn) string {
	if len(history) == 0 {
		return "Utilisateur: " + message
	}

	var b strings.Builder
	b.WriteString("Historique récent:\n")
	for _, turn := range history {
		fmt.Fprintf(&b, "- %s: %s\n", turn.Role, turn.Content)
	}
	b.WriteString("Utilisateur: " + message)
	return b.String()
}

// buildIntentPrompt produces the French extraction prompt with the temporal
// context the relative-date rules need ("demain", "ce week-end"...).
func buildIntentPrompt(now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(`Tu es l'intelligence artificielle de l'Agenda.bj au Bénin. Aujourd'hui nous sommes le %s.

TON RÔLE :
Analyser la demande de l'utilisateur et extraire TOUS les critères de recherche pertinents.

RÈGLES D'EXTRACTION TEMPORELLE :
1. 'date_start' et 'date_end' doivent TOUJOURS être au format YYYY-MM-DD.
2. SI "aujourd'hui" ou "ce soir" : start et end = %s.
3. SI "demain" : start et end = %s.
4. SI "ce week-end" : du Vendredi au Dimanche de CETTE semaine.
5. SI "la semaine prochaine" : du Lundi au Dimanche de la semaine suivante.
6. SI "ce mois-ci" : du 1er au dernier jour du mois actuel.
7. SI "en [Mois]" (ex: en Mars) : du 01 au dernier jour de ce mois en %d.
8. SI aucune date mentionnée : date_start = null, date_end = null.

RÈGLES D'EXTRACTION DE CATÉGORIE :
Catégories reconnues : concert, musique, festival, spectacle, théâtre, danse, sport, football, conférence, formation, exposition, art, culture, cinéma, soirée, gastronomie, enfants, famille, business, religion, bien-être.
- Extrais la catégorie principale si mentionnée, la plus spécifique en cas de doute.
- Si aucune catégorie claire, mets null.

RÈGLES D'EXTRACTION DE VILLE :
Communes du Bénin : Cotonou, Abomey-Calavi, Ouidah, Porto-Novo, Sèmè-Kpodji, Grand-Popo, Lokossa, Abomey, Bohicon, Dassa-Zoumé, Savalou, Parakou, Djougou, Natitingou, Kandi, Malanville...
- Extrais la ville/commune si mentionnée.
- Gère les variantes (ex: "Calavi" = "Abomey-Calavi", "PK" = "Porto-Novo").

RÈGLES POUR search_query :
- Extrais les mots-clés thématiques spécifiques (ex: "jazz", "afrobeat", "startup", "yoga").
- NE PAS inclure les mots génériques comme "événement", "activité", "truc".
- Si question générale ("quoi de neuf", "que faire"), mets null.

RÈGLES POUR is_free :
- "gratuit", "free", "entrée libre" : is_free = true. "payant" : is_free = false. Sinon : null.

RÉPONDS UNIQUEMENT EN JSON VALIDE :
{
  "intent": "search" | "chat",
  "filters": {
    "city": string | null,
    "date_start": "YYYY-MM-DD" | null,
    "date_end": "YYYY-MM-DD" | null,
    "category": string | null,
    "search_query": string | null,
    "is_free": boolean | null
  },
  "ai_reply": "Message court et chaleureux en français (ex: Je cherche les concerts gratuits à Cotonou ce week-end...)"
}`,
		now.Format("2006-01-02"),
		now.Format("2006-01-02"),
		tomorrow.Format("2006-01-02"),
		now.Year(),
	)
}
