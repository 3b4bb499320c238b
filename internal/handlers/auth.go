package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/auth"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

const uniqueViolationCode = "23505"

func userJSON(user models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

// Register handles user registration
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, email and password are required"})
		return
	}

	// Check for existing accounts first so the caller gets a precise
	// conflict message; the unique constraints still back this up.
	var existingID int
	err := h.db.QueryRow(`SELECT id FROM users WHERE email = $1`, email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}
	if err != sql.ErrNoRows {
		log.Errorf("Error checking existing email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	err = h.db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already taken"})
		return
	}
	if err != sql.ErrNoRows {
		log.Errorf("Error checking existing username: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Errorf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := models.User{Username: username, Email: email}
	query := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	err = h.db.QueryRow(query, username, email, hashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// A concurrent registration can still win the race past the checks above.
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "User with this email or username already exists"})
			return
		}
		log.Errorf("Error inserting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Errorf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User created successfully",
		"access_token": token,
		"user":         userJSON(user),
	})
}

// Login handles user login
func (h *Handler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var user models.User
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1`
	err := h.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		log.Errorf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	if !auth.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Errorf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         userJSON(user),
	})
}

// Me returns the authenticated user's public record. The token can outlive
// the account, so a deleted user reads as not found.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var user models.User
	query := `SELECT id, username, email, created_at FROM users WHERE id = $1`
	err := h.db.QueryRow(query, userID).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Errorf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving user"})
		return
	}

	c.JSON(http.StatusOK, userJSON(user))
}
