package main

import (
	"context"
	"log"
	"os"

	"github.com/campus-voice/api-go/config"
	"github.com/campus-voice/api-go/notify"
	"github.com/campus-voice/api-go/realtime"
	"github.com/campus-voice/api-go/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database and redis
	db := config.InitDB()
	rdb := config.InitRedis()

	// Realtime change feed: one hub per instance, bridged over redis so every
	// instance sees every mutation.
	hub := realtime.NewHub(logger)
	go hub.Run()

	broker := realtime.NewBroker(rdb, logger)
	go broker.Listen(context.Background(), hub)

	notifier := notify.NewNotifier(db, broker, logger)

	// Create a new Gin router
	r := gin.Default()

	// Initialize routes
	routes.SetupRoutes(r, db, hub, broker, notifier, logger)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
