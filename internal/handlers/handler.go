package handlers

import (
	"context"
	"database/sql"
	"time"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/auth"

	"github.com/gin-gonic/gin"
)

// ChatReplier is the outbound chat-completion dependency.
type ChatReplier interface {
	Configured() bool
	Reply(ctx context.Context, message string) (string, error)
}

// Handler carries the explicitly constructed dependencies shared by all
// route handlers: no package-level database or API-client state.
type Handler struct {
	db        *sql.DB
	tokens    *auth.TokenManager
	chat      ChatReplier
	startedAt time.Time
}

func New(db *sql.DB, tokens *auth.TokenManager, chat ChatReplier) *Handler {
	return &Handler{
		db:        db,
		tokens:    tokens,
		chat:      chat,
		startedAt: time.Now(),
	}
}

// currentUserID reads the user id stored by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(int)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
