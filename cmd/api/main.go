package main

import (
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/auth"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/chat"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/config"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/database"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/handlers"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/middleware"
	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET not set, using insecure development secret")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)
	database.CreateTables(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	chatClient := chat.New(cfg.OpenAIAPIKey, cfg.ChatModel)
	if !chatClient.Configured() {
		log.Warn("OPENAI_API_KEY not set, AI coaching disabled")
	}

	h := handlers.New(db, tokens, chatClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.RequestMetricsMiddleware())
	router.Use(cors.Default())

	router.GET("/api/health", h.Health)
	router.GET("/api/status", h.Status)
	router.GET("/metrics", monitoring.MetricsHandler())

	authRoutes := router.Group("/api/auth")
	authRoutes.POST("/register", h.Register)
	authRoutes.POST("/login", h.Login)
	authRoutes.GET("/me", middleware.RequireAuth(tokens), h.Me)

	api := router.Group("/api", middleware.RequireAuth(tokens))
	api.GET("/workouts", h.ListWorkouts)
	api.POST("/workouts", h.CreateWorkout)
	api.GET("/workouts/:workout_id", h.GetWorkout)
	api.PUT("/workouts/:workout_id", h.UpdateWorkout)
	api.DELETE("/workouts/:workout_id", h.DeleteWorkout)
	api.GET("/cardio", h.ListCardioSessions)
	api.POST("/cardio", h.CreateCardioSession)
	api.DELETE("/cardio/:session_id", h.DeleteCardioSession)
	api.POST("/chat", h.Chat)

	log.Printf("FitTrack API starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
