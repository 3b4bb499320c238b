package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const cardioDateLayout = "2006-01-02"

type cardioInput struct {
	Date            string   `json:"date"`
	ActivityType    string   `json:"activity_type"`
	DurationMinutes *int     `json:"duration_minutes"`
	Distance        *float64 `json:"distance"`
	DistanceUnit    string   `json:"distance_unit"`
	CaloriesBurned  *int     `json:"calories_burned"`
	AvgHeartRate    *int     `json:"avg_heart_rate"`
	Notes           *string  `json:"notes"`
}

func cardioJSON(session models.CardioSession) gin.H {
	return gin.H{
		"id":               session.ID,
		"date":             session.Date.Format(cardioDateLayout),
		"activity_type":    session.ActivityType,
		"duration_minutes": session.DurationMinutes,
		"distance":         session.Distance,
		"distance_unit":    session.DistanceUnit,
		"calories_burned":  session.CaloriesBurned,
		"avg_heart_rate":   session.AvgHeartRate,
		"notes":            session.Notes,
		"created_at":       session.CreatedAt,
	}
}

// ListCardioSessions returns the user's sessions, most recent date first.
func (h *Handler) ListCardioSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	rows, err := h.db.Query(
		`SELECT id, user_id, date, activity_type, duration_minutes, distance, distance_unit, calories_burned, avg_heart_rate, notes, created_at FROM cardio_sessions WHERE user_id = $1 ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		log.Errorf("Error retrieving cardio sessions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving cardio sessions"})
		return
	}
	defer rows.Close()

	sessions := make([]gin.H, 0)
	for rows.Next() {
		var session models.CardioSession
		var distance sql.NullFloat64
		var calories, heartRate sql.NullInt64
		var notes sql.NullString

		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.Date,
			&session.ActivityType,
			&session.DurationMinutes,
			&distance,
			&session.DistanceUnit,
			&calories,
			&heartRate,
			&notes,
			&session.CreatedAt,
		)
		if err != nil {
			log.Errorf("Error scanning cardio session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving cardio sessions"})
			return
		}

		if distance.Valid {
			session.Distance = &distance.Float64
		}
		if calories.Valid {
			value := int(calories.Int64)
			session.CaloriesBurned = &value
		}
		if heartRate.Valid {
			value := int(heartRate.Int64)
			session.AvgHeartRate = &value
		}
		if notes.Valid {
			session.Notes = &notes.String
		}

		sessions = append(sessions, cardioJSON(session))
	}
	if err := rows.Err(); err != nil {
		log.Errorf("Error reading cardio sessions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving cardio sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateCardioSession validates and stores one session. The date must be a
// real ISO calendar date; a malformed one gets its own message.
func (h *Handler) CreateCardioSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req cardioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	activityType := strings.TrimSpace(req.ActivityType)
	if req.Date == "" || activityType == "" || req.DurationMinutes == nil || *req.DurationMinutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date, activity type, and duration are required"})
		return
	}

	date, err := time.Parse(cardioDateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	distanceUnit := strings.TrimSpace(req.DistanceUnit)
	if distanceUnit == "" {
		distanceUnit = "km"
	}

	session := models.CardioSession{
		UserID:          userID,
		Date:            date,
		ActivityType:    activityType,
		DurationMinutes: *req.DurationMinutes,
		Distance:        req.Distance,
		DistanceUnit:    distanceUnit,
		CaloriesBurned:  req.CaloriesBurned,
		AvgHeartRate:    req.AvgHeartRate,
		Notes:           req.Notes,
	}

	query := `INSERT INTO cardio_sessions (user_id, date, activity_type, duration_minutes, distance, distance_unit, calories_burned, avg_heart_rate, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	err = h.db.QueryRow(
		query,
		session.UserID,
		session.Date,
		session.ActivityType,
		session.DurationMinutes,
		session.Distance,
		session.DistanceUnit,
		session.CaloriesBurned,
		session.AvgHeartRate,
		session.Notes,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		log.Errorf("Error creating cardio session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating cardio session"})
		return
	}

	c.JSON(http.StatusCreated, cardioJSON(session))
}

// DeleteCardioSession deletes user's session by id. Ownership is folded
// into the lookup, so someone else's session reads as not found.
func (h *Handler) DeleteCardioSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	sessionID, err := strconv.Atoi(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session ID"})
		return
	}

	var existingID int
	err = h.db.QueryRow(`SELECT id FROM cardio_sessions WHERE id = $1 AND user_id = $2`, sessionID, userID).Scan(&existingID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cardio session not found"})
			return
		}
		log.Errorf("Error checking cardio session owner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting cardio session"})
		return
	}

	if _, err := h.db.Exec(`DELETE FROM cardio_sessions WHERE id = $1`, sessionID); err != nil {
		log.Errorf("Error deleting cardio session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting cardio session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cardio session deleted successfully"})
}
