package handler

import (
	"log"
	"net/http"

	"agenda/internal/model"
	"agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// errorReply is the user-facing apology sent when a turn blows up. The
// history is returned unchanged so the conversation can resume.
const errorReply = "⚠️ Désolé, je rencontre une petite difficulté technique. Réessayez dans un instant."

// ChatHandler handles conversational HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in /chat: %v", r)
			c.JSON(http.StatusOK, model.ChatResponse{
				Reply:   errorReply,
				History: req.History,
			})
		}
	}()

	resp := h.chatService.Chat(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
