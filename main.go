package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"fitness-api/config"
	"fitness-api/database"
	"fitness-api/middleware"
	"fitness-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load demo routes (the only creation path for routes)
	if cfg.SeedDemoData {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Create router
	router := gin.Default()

	// CORS and security headers
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes (installs the auth gateway)
	routes.SetupRoutes(router, db, cfg)

	// Start server
	log.Printf("Starting fitness API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
