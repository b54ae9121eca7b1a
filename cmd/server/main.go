package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/api"
	"github.com/healthnest/healthnest-be/internal/api/middleware"
	"github.com/healthnest/healthnest-be/internal/chat"
	"github.com/healthnest/healthnest-be/internal/classifier"
	"github.com/healthnest/healthnest-be/internal/db"
	"github.com/healthnest/healthnest-be/internal/knowledge"
	"github.com/healthnest/healthnest-be/internal/predictor"
	"github.com/healthnest/healthnest-be/internal/retrieval"
	"github.com/healthnest/healthnest-be/internal/ws"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Get configuration from environment
	port := getEnv("PORT", "8080")
	knowledgePath := getEnv("HEALTH_KNOWLEDGE_PATH", "")
	modelPath := getEnv("CALORIE_MODEL_PATH", "models/calorie_model.json")
	databaseURL := getEnv("DATABASE_URL", "")
	adminKeyHash := getEnv("ADMIN_KEY_HASH", "")
	jwtSecret := getEnv("JWT_SECRET", "")
	threshold := getEnvFloat("RETRIEVAL_THRESHOLD", retrieval.DefaultThreshold)

	// Load the knowledge base. A missing overlay file is not fatal; the
	// built-in defaults cover every endpoint.
	store := knowledge.Defaults()
	if knowledgePath != "" {
		loaded, err := knowledge.Load(knowledgePath)
		if err != nil {
			log.Printf("Warning: failed to load knowledge file, using defaults: %v", err)
		} else {
			store = loaded
			log.Printf("✅ Knowledge base loaded from %s", knowledgePath)
		}
	}

	// Fit the retrieval engine against the corpus
	engine := retrieval.New(store.Corpus, retrieval.Options{Threshold: threshold})
	if engine.Available() {
		log.Printf("✅ Q&A model fitted: %d questions, %d terms", engine.CorpusSize(), engine.VocabularySize())
	} else {
		log.Printf("Warning: Q&A corpus is empty, retrieval disabled")
	}

	// Load the calorie predictor (optional)
	model, err := predictor.Load(modelPath)
	if err != nil {
		log.Printf("Warning: calorie predictor unavailable: %v", err)
		model = nil
	} else {
		log.Println("✅ Calorie predictor loaded")
	}

	// Connect the optional chat-log database
	var database *db.DB
	if databaseURL != "" {
		database, err = db.NewFromURL(databaseURL)
		if err != nil {
			log.Printf("Warning: database unavailable, chat logging disabled: %v", err)
		} else {
			defer database.Close()
			if err := database.EnsureSchema(context.Background()); err != nil {
				log.Printf("Warning: failed to ensure schema: %v", err)
			}
			log.Println("✅ Database connected")
		}
	}

	// Initialize the chat engine
	var logger chat.Logger
	if database != nil {
		logger = chatLogger{database}
	}
	chatEngine := chat.NewEngine(classifier.NewRouter(), engine, store, logger)

	// Initialize handlers
	chatHandler := api.NewChatHandler(chatEngine)
	healthHandler := api.NewHealthHandler(engine.Available, model != nil, database != nil)
	healthCheckHandler := api.NewHealthCheckHandler(store)
	caloriesHandler := api.NewCaloriesHandler(model)
	exerciseHandler := api.NewExerciseHandler()
	pregnancyHandler := api.NewPregnancyHandler(store)
	wsHandler := ws.NewChatHandler(chatEngine)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PerIP(100.0/60.0, 200)) // 100 req/min per IP

	router.GET("/", healthHandler.Home)
	router.GET("/health", healthHandler.Health)
	router.POST("/chat", chatHandler.Chat)
	router.POST("/health-check", healthCheckHandler.HealthCheck)
	router.POST("/predict-calories", caloriesHandler.PredictCalories)
	router.POST("/recommend-exercise", exerciseHandler.RecommendExercise)
	router.GET("/pregnancy-info", pregnancyHandler.PregnancyInfo)
	router.GET("/ws/chat", wsHandler.HandleChat)

	// Admin routes are only registered when both secrets are configured
	if adminKeyHash != "" && jwtSecret != "" {
		adminHandler := api.NewAdminHandler(engine, database, adminKeyHash, jwtSecret)
		adminGroup := router.Group("/api/admin")
		adminGroup.POST("/login", adminHandler.Login)
		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuth(jwtSecret))
		{
			protected.GET("/stats", adminHandler.Stats)
			protected.GET("/logs", adminHandler.RecentLogs)
		}
		log.Println("✅ Admin routes registered")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%s", port)
		log.Printf("📝 API endpoints:")
		log.Printf("   GET    /")
		log.Printf("   GET    /health")
		log.Printf("   POST   /chat")
		log.Printf("   POST   /health-check")
		log.Printf("   POST   /predict-calories")
		log.Printf("   POST   /recommend-exercise")
		log.Printf("   GET    /pregnancy-info?week=N")
		log.Printf("   WS     /ws/chat")
		log.Printf("")
		log.Printf("Press Ctrl+C to stop")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// chatLogger adapts the db wrapper to the chat engine's Logger interface.
type chatLogger struct {
	db *db.DB
}

func (l chatLogger) SaveChatLog(ctx context.Context, message, answer, category string, confidence float64) error {
	_, err := l.db.SaveChatLog(ctx, message, answer, category, confidence)
	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using default", key, value)
		return defaultValue
	}
	return f
}
