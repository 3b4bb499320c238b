package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit_test_secret_key_1234567890_abcdef"

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Generate(101)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 101, claims.UserID)
	assert.Equal(t, "101", claims.Subject)
}

func TestTokenInvalidUserID(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	_, err := m.Generate(0)
	assert.Error(t, err)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("a_completely_different_secret_value", time.Hour)

	token, err := m.Generate(101)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenExpiredRejected(t *testing.T) {
	m := NewTokenManager(testSecret, -time.Minute)

	token, err := m.Generate(101)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestTokenEmptyRejected(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	_, err := m.Validate("  ")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123", hash)

	assert.True(t, CheckPasswordHash("Secret123", hash))
	assert.False(t, CheckPasswordHash("WrongPassword", hash))
}
