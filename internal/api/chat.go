// Package api holds the REST handlers.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/chat"
	"github.com/healthnest/healthnest-be/internal/profile"
)

// ChatHandler handles the REST chat endpoint
type ChatHandler struct {
	engine *chat.Engine
}

// NewChatHandler creates a new chat handler
func NewChatHandler(engine *chat.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// ChatRequest represents the chat request
type ChatRequest struct {
	Message string           `json:"message"`
	Profile *profile.Profile `json:"profile"`
}

// ChatResponse represents the chat response
type ChatResponse struct {
	Message    string  `json:"message"`
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// Chat answers a single chat message
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	result := h.engine.Process(c.Request.Context(), req.Message, req.Profile)

	c.JSON(http.StatusOK, ChatResponse{
		Message:    req.Message,
		Response:   result.Answer,
		Confidence: result.Confidence,
		Category:   result.Category,
	})
}
