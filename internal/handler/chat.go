package handler

import (
	"errors"
	"net/http"

	"churro/internal/model"
	"churro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Fixed user-facing replies for the two failure modes that surface as errors.
// Everything else the pipeline absorbs into a normal response.
const (
	msgNotConfigured     = "API key not configured."
	msgConnectionTrouble = "I'm having trouble connecting. Please try again."
)

// ChatHandler handles the conversational query endpoint.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.chat.Chat(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, model.ChatResponse{Message: msgNotConfigured})
			return
		}
		// Transport failure: log it, hand the user a fixed apology. No
		// automatic retry.
		logrus.WithError(err).Error("chat request failed")
		c.JSON(http.StatusInternalServerError, model.ChatResponse{Message: msgConnectionTrouble})
		return
	}

	c.JSON(http.StatusOK, resp)
}
