package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"churro/internal/config"
	"churro/internal/handler"
	"churro/internal/inventory"
	"churro/internal/repository"
	"churro/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.Logging)
	logrus.Infof("Churro rental assistant %s (built %s, commit %s)", Version, BuildTime, GitCommit)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the inventory once. A failed load is fatal at startup, never a
	// per-request error.
	store, err := loadInventory(cfg)
	if err != nil {
		logrus.Fatalf("Failed to load inventory: %v", err)
	}
	logrus.Infof("Inventory loaded: %d cars (source: %s)", store.Len(), cfg.Inventory.Source)

	// The model gateway is an optional dependency: without a key the chat
	// endpoint degrades to a fixed reply instead of crashing the process.
	var gateway service.ChatCompleter
	if cfg.Anthropic.Enabled {
		gateway = service.NewAnthropicClient(&cfg.Anthropic)
		logrus.Infof("Anthropic client initialized (model: %s)", cfg.Anthropic.Model)
	} else {
		logrus.Warn("ANTHROPIC_API_KEY not set - chat endpoint will reply 'not configured'")
	}

	// Initialize services
	searchService := service.NewSearchService(store)
	specResolver := service.NewSpecResolver(store)
	viewResolver := service.NewViewResolver(searchService, specResolver)
	composer := service.NewPromptComposer(store)
	chatService := service.NewChatService(gateway, composer, viewResolver)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	searchHandler := handler.NewSearchHandler(searchService, store)

	// Setup Gin router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "churro-rental-assistant",
			"version": Version,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.POST("/search", searchHandler.Search)
		apiV1.GET("/cars", searchHandler.ListCars)
		apiV1.GET("/cars/:id", searchHandler.GetCar)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logrus.Infof("Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
}

// loadInventory builds the immutable store from the configured fixed source.
func loadInventory(cfg *config.Config) (*inventory.Store, error) {
	if cfg.Inventory.Source == config.InventorySourcePostgres {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgresDSN(),
			cfg.Inventory.MaxConnections,
			cfg.Inventory.MaxIdleConnections,
		)
		if err != nil {
			return nil, err
		}
		defer repo.Close()

		cars, err := repo.LoadCars(context.Background())
		if err != nil {
			return nil, err
		}
		return inventory.NewStore(cars)
	}
	return inventory.NewSeedStore()
}

func setupLogging(cfg config.LoggingConfig) {
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
