package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"blockbusted/internal/adapters/http/middleware"
	"blockbusted/internal/adapters/http/routes"
	"blockbusted/internal/adapters/persistence/blogstore"
	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/config"
	"blockbusted/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "blockbusted/docs" // Swagger docs
)

// @title Blockbusted API
// @version 1.0
// @description Retro video rental backend with the Bloggerish blog module

// @contact.name API Support
// @contact.email support@blockbusted.com

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open the JSON record store
	store, err := jsonstore.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("❌ Failed to open data dir: %v", err)
	}

	// Seed data files (movie catalog, bootstrap admin, rental ledger)
	if err := config.SeedData(store, cfg); err != nil {
		log.Fatalf("❌ Failed to seed data files: %v", err)
	}

	// In-memory blog store lives for the whole process
	blog := blogstore.New()

	// Start cron service for the daily overdue scan
	cronService := services.NewCronService(repositories.NewRentalRepository(store))
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Blockbusted API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass stores and cfg for dependency injection)
	routes.Setup(app, store, blog, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🎬 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
