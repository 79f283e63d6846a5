package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/moodlens/moodlens-backend/internal/classifier"
	"github.com/moodlens/moodlens-backend/internal/config"
	"github.com/moodlens/moodlens-backend/internal/database"
	"github.com/moodlens/moodlens-backend/internal/handlers"
	"github.com/moodlens/moodlens-backend/internal/middleware"
	"github.com/moodlens/moodlens-backend/internal/routes"
	"github.com/moodlens/moodlens-backend/internal/services"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Initialize the classification backend. The model check is deliberately
	// fatal: a server that cannot classify must not accept traffic.
	embedder := classifier.NewEmbeddingClient(cfg.EmbeddingURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModel)
	model := classifier.NewInferenceClient(cfg.ModelURL)

	healthCtx, healthCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer healthCancel()
	if _, err := model.HealthCheck(healthCtx); err != nil {
		log.Fatal("Mood model is not available, refusing to start: ", err)
	}
	log.Println("✅ Mood model is loaded and healthy")

	moodClassifier := classifier.New(embedder, model)

	// Wire services and handlers
	journalStore := services.NewJournalStore(database.DB)
	userService := services.NewUserService(database.DB)
	ingestService := services.NewIngestService(moodClassifier, userService, journalStore)
	modeTracking := handlers.NewModeTracking(ingestService, journalStore, userService)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders → GlobalRateLimit → SubmitRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + submission rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, modeTracking)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/mode_tracking")
	log.Println("  GET  /api/mode_tracking/journal")
	log.Println("  GET  /api/mode_tracking/current")

	log.Printf("🚀 Moodlens backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
