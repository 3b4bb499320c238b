package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Health reports service and database state.
func (h *Handler) Health(c *gin.Context) {
	status := "healthy"
	database := "connected"
	if err := h.db.Ping(); err != nil {
		log.Errorf("Health check database ping failed: %v", err)
		status = "degraded"
		database = "error"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": database,
	})
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "FitTrack API",
		"version": "0.1.0",
		"status":  "operational",
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
