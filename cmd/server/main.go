package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agenda/internal/config"
	"agenda/internal/feed"
	"agenda/internal/handler"
	"agenda/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Agenda Chat Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the events feed client with its expiring cache
	catalog := feed.NewClient(cfg.Feed.URL, cfg.Feed.Timeout, feed.NewCache(cfg.Feed.CacheTTL))
	log.Printf("✅ Events feed client initialized")
	log.Printf("   - Feed URL: %s", cfg.Feed.URL)
	log.Printf("   - Cache TTL: %s", cfg.Feed.CacheTTL)

	// Initialize AI client
	var aiClient service.AIClient
	if cfg.OpenAI.Enabled {
		aiClient = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ AI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
	} else {
		log.Println("⚠️  AI is disabled - intent extraction will fall back to generic replies")
		log.Println("   Set OPENAI_API_KEY environment variable to enable AI features")
	}

	// Initialize services
	intentParser := service.NewIntentParser(aiClient)
	engine := service.NewFilterEngine(cfg.Scoring)
	ranker := service.NewRanker()
	presenter := service.NewPresenter(cfg.Search.DefaultLimit)
	chatService := service.NewChatService(catalog, intentParser, engine, ranker, presenter, cfg.Search)
	searchService := service.NewSearchService(catalog, engine, ranker, presenter)

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	searchHandler := handler.NewSearchHandler(searchService, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	rateLimiter := handler.NewRateLimiter(cfg.Server.RatePerMinute)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "agenda-chat-assistant",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Conversational endpoint, rate limited per client
	router.POST("/chat", rateLimiter.Middleware(), chatHandler.Chat)

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", searchHandler.Search)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
