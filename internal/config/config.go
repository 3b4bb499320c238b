package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultJWTSecret is the insecure local-development fallback. Anything
// deployed must set JWT_SECRET explicitly.
const DefaultJWTSecret = "fittrack-dev-secret-change-in-production"

// Config captures runtime configuration for the API process.
type Config struct {
	Port string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxIdleTime time.Duration
	DBConnMaxLifetime time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	OpenAIAPIKey string
	ChatModel    string
}

// Load reads environment variables into Config, applying local-dev defaults.
func Load() Config {
	return Config{
		Port: getEnvOrDefault("PORT", "8080"),

		DBHost:            getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:            getEnvOrDefault("DB_PORT", "5432"),
		DBUser:            getEnvOrDefault("DB_USER", "postgres"),
		DBPassword:        getEnvOrDefault("DB_PASSWORD", "password"),
		DBName:            getEnvOrDefault("DB_NAME", "fittrack"),
		DBSSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxIdleTime: getDurationEnvOrDefault("DB_CONN_MAX_IDLE", 5*time.Minute),
		DBConnMaxLifetime: getDurationEnvOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		JWTSecret: getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:  getDurationEnvOrDefault("TOKEN_TTL", 7*24*time.Hour),

		OpenAIAPIKey: getEnvOrDefault("OPENAI_API_KEY", ""),
		ChatModel:    getEnvOrDefault("CHAT_MODEL", ""),
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s=%q, using default %s", key, raw, defaultValue)
		return defaultValue
	}

	return value
}
