package model

// HistoryLimit caps the conversation history returned to the caller at the
// last 6 turns (3 user/assistant exchanges).
const HistoryLimit = 6

// ChatTurn is a single turn of the conversation history.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a chat message with its trimmed history.
type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history"`
}

// ChatResponse carries the assistant reply and the updated history.
type ChatResponse struct {
	Reply   string     `json:"reply"`
	History []ChatTurn `json:"history"`
}

// TrimHistory appends the latest user/assistant exchange and keeps only the
// most recent HistoryLimit turns.
func TrimHistory(history []ChatTurn, userMessage, reply string) []ChatTurn {
	updated := append(append([]ChatTurn{}, history...),
		ChatTurn{Role: "user", Content: userMessage},
		ChatTurn{Role: "assistant", Content: reply},
	)
	if len(updated) > HistoryLimit {
		updated = updated[len(updated)-HistoryLimit:]
	}
	return updated
}
