package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/chat"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Chat relays one user message to the AI coach. No retries, no streaming,
// no conversation memory across calls.
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Reject empty input before touching the upstream service.
	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	if h.chat == nil || !h.chat.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "AI coaching is not configured"})
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), message)
	if err != nil {
		if errors.Is(err, chat.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "AI coaching is not configured"})
			return
		}
		log.Errorf("Error getting chat reply (request_id=%s): %v", middleware.RequestIDFromContext(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get AI response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
