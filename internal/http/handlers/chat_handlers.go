package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// ChatHandlers handles the triage chat widget's HTTP requests
type ChatHandlers struct {
	chatSvc domain.ChatService
	log     zerolog.Logger
}

// NewChatHandlers creates new chat handlers
func NewChatHandlers(chatSvc domain.ChatService, log zerolog.Logger) *ChatHandlers {
	return &ChatHandlers{
		chatSvc: chatSvc,
		log:     log.With().Str("component", "chat_handlers").Logger(),
	}
}

// ChatRequest represents a chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask handles a triage chat message
func (h *ChatHandlers) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.chatSvc.Ask(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrChatUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: Missing API Key"})
			return
		}
		h.log.Error().Err(err).Msg("chat request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
