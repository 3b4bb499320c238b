package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID := c.GetInt("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("middleware_test_secret_1234567890", time.Hour)
	router := newProtectedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("middleware_test_secret_1234567890", time.Hour)
	router := newProtectedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireAuthTamperedToken(t *testing.T) {
	tokens := auth.NewTokenManager("middleware_test_secret_1234567890", time.Hour)
	other := auth.NewTokenManager("a_different_signing_secret_0987654321", time.Hour)
	router := newProtectedRouter(tokens)

	token, err := other.Generate(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("middleware_test_secret_1234567890", time.Hour)
	router := newProtectedRouter(tokens)

	token, err := tokens.Generate(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user_id":7`)
}
